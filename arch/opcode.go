// Package arch defines the chip-8 instruction set along with
// some related helper functions.
package arch

// Known opcodes.
const (
	CLS   = iota // 00E0: clear the display.
	RET          // 00EE: return from subroutine.
	SYS          // 0nnn: jump to machine routine at nnn.
	JMP          // 1nnn: jump to nnn.
	CALL         // 2nnn: call subroutine at nnn.
	SEB          // 3xkk: skip next instruction if Vx == kk.
	SNEB         // 4xkk: skip next instruction if Vx != kk.
	SER          // 5xy0: skip next instruction if Vx == Vy.
	MOVB         // 6xkk: Vx = kk.
	ADDB         // 7xkk: Vx += kk, no carry.
	MOVR         // 8xy0: Vx = Vy.
	OR           // 8xy1: Vx |= Vy.
	AND          // 8xy2: Vx &= Vy.
	XOR          // 8xy3: Vx ^= Vy.
	ADDR         // 8xy4: Vx += Vy, VF = carry.
	SUBR         // 8xy5: Vx -= Vy, VF = not borrow.
	SHR          // 8xy6: Vx >>= 1, VF = least significant bit.
	SUBN         // 8xy7: Vx = Vy - Vx, VF = not borrow.
	SHL          // 8xyE: Vx <<= 1, VF = most significant bit.
	SNER         // 9xy0: skip next instruction if Vx != Vy.
	MOVI         // Annn: I = nnn.
	JMPV         // Bnnn: jump to nnn + V0.
	RND          // Cxkk: Vx = random byte AND kk.
	DRW          // Dxyn: draw n-byte sprite from I at (Vx, Vy), VF = collision.
	SKP          // Ex9E: skip next instruction if key Vx is pressed.
	SKNP         // ExA1: skip next instruction if key Vx is not pressed.
	MOVDT        // Fx07: Vx = delay timer.
	WKEY         // Fx0A: wait for a key press, Vx = key.
	SETDT        // Fx15: delay timer = Vx.
	SETST        // Fx18: sound timer = Vx.
	ADDI         // Fx1E: I += Vx.
	FONT         // Fx29: I = font glyph address for digit Vx.
	BCD          // Fx33: memory[I..I+2] = hundreds, tens, ones of Vx.
	STORE        // Fx55: memory[I..I+x] = V0..Vx.
	LOAD         // Fx65: V0..Vx = memory[I..I+x].
)

// Decode classifies the given instruction word into one of the known
// opcodes. Returns false if the word matches no opcode pattern.
func Decode(word int) (int, bool) {
	switch word >> 12 & 0xf {
	case 0x0:
		switch word & 0xfff {
		case 0x0e0:
			return CLS, true
		case 0x0ee:
			return RET, true
		}
		return SYS, true
	case 0x1:
		return JMP, true
	case 0x2:
		return CALL, true
	case 0x3:
		return SEB, true
	case 0x4:
		return SNEB, true
	case 0x5:
		if word&0xf == 0 {
			return SER, true
		}
	case 0x6:
		return MOVB, true
	case 0x7:
		return ADDB, true
	case 0x8:
		switch word & 0xf {
		case 0x0:
			return MOVR, true
		case 0x1:
			return OR, true
		case 0x2:
			return AND, true
		case 0x3:
			return XOR, true
		case 0x4:
			return ADDR, true
		case 0x5:
			return SUBR, true
		case 0x6:
			return SHR, true
		case 0x7:
			return SUBN, true
		case 0xe:
			return SHL, true
		}
	case 0x9:
		if word&0xf == 0 {
			return SNER, true
		}
	case 0xa:
		return MOVI, true
	case 0xb:
		return JMPV, true
	case 0xc:
		return RND, true
	case 0xd:
		return DRW, true
	case 0xe:
		switch word & 0xff {
		case 0x9e:
			return SKP, true
		case 0xa1:
			return SKNP, true
		}
	case 0xf:
		switch word & 0xff {
		case 0x07:
			return MOVDT, true
		case 0x0a:
			return WKEY, true
		case 0x15:
			return SETDT, true
		case 0x18:
			return SETST, true
		case 0x1e:
			return ADDI, true
		case 0x29:
			return FONT, true
		case 0x33:
			return BCD, true
		case 0x55:
			return STORE, true
		case 0x65:
			return LOAD, true
		}
	}
	return 0, false
}

// Name returns the assembly mnemonic for the given opcode.
// Returns an empty string if the opcode is not recognized.
func Name(opcode int) string {
	switch opcode {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case SYS:
		return "SYS"
	case JMP, JMPV:
		return "JP"
	case CALL:
		return "CALL"
	case SEB, SER:
		return "SE"
	case SNEB, SNER:
		return "SNE"
	case MOVB, MOVR, MOVI, MOVDT, WKEY, SETDT, SETST, FONT, BCD, STORE, LOAD:
		return "LD"
	case ADDB, ADDR, ADDI:
		return "ADD"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case SUBR:
		return "SUB"
	case SHR:
		return "SHR"
	case SUBN:
		return "SUBN"
	case SHL:
		return "SHL"
	case RND:
		return "RND"
	case DRW:
		return "DRW"
	case SKP:
		return "SKP"
	case SKNP:
		return "SKNP"
	}
	return ""
}
