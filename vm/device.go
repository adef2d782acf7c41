package vm

import "github.com/hexaflex/chip8/arch"

// Display receives draw and clear requests from the interpreter.
// Implementations compose sprites into their own pixel buffer and must
// not block the engine indefinitely; when the buffer is shared with a
// render loop, the critical section is the single draw or clear call.
type Display interface {
	// Draw XOR-composites the given sprite rows at (x, y). Each row
	// is 8 pixels wide, one bit per pixel, composed at (x, y+i).
	// Pixels falling outside the display are dropped. Returns true if
	// any lit pixel was switched off.
	Draw(x, y int, rows []byte) (bool, error)

	// Clear switches off every pixel.
	Clear()
}

// Keyboard is a non-blocking source of key presses.
type Keyboard interface {
	// Poll returns the oldest pending key press, if any. It never
	// blocks.
	Poll() (arch.Key, bool)
}
