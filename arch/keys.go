package arch

// Key identifies one of the 16 keys on the hexadecimal keypad,
// numbered 0x0 through 0xF.
type Key int

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// KeyFromChar maps a physical keyboard character to its keypad key.
// The left hand block of a qwerty keyboard covers the 4x4 pad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
//
// Returns false if the character is not part of the keypad.
func KeyFromChar(c rune) (Key, bool) {
	switch c {
	case '1':
		return 0x1, true
	case '2':
		return 0x2, true
	case '3':
		return 0x3, true
	case '4':
		return 0xc, true
	case 'q':
		return 0x4, true
	case 'w':
		return 0x5, true
	case 'e':
		return 0x6, true
	case 'r':
		return 0xd, true
	case 'a':
		return 0x7, true
	case 's':
		return 0x8, true
	case 'd':
		return 0x9, true
	case 'f':
		return 0xe, true
	case 'z':
		return 0xa, true
	case 'x':
		return 0x0, true
	case 'c':
		return 0xb, true
	case 'v':
		return 0xf, true
	}
	return 0, false
}
