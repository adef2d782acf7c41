package vm

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

// Memory capacity and layout.
const (
	MemoryCapacity  = 0xFFF                         // Total memory size in bytes.
	ProgramStart    = 0x200                         // Address at which program code is loaded.
	ProgramCapacity = MemoryCapacity - ProgramStart // Maximum size of a program image.
)

// Memory defines the machine's memory bank. The region below
// ProgramStart is reserved for the interpreter and holds the built-in
// font glyphs. There is no protection between regions; programs may
// write anywhere in bounds, including over their own code.
type Memory []byte

// NewMemory creates a new memory bank, seeded with the font table.
func NewMemory() Memory {
	m := make(Memory, MemoryCapacity)
	copy(m, arch.Font[:])
	return m
}

// Load copies the font table into the reserved region, then streams
// the given program image into memory starting at ProgramStart.
// Returns an error if reading fails or the image exceeds capacity.
func (m Memory) Load(r io.Reader) error {
	copy(m, arch.Font[:])

	_, err := io.ReadFull(r, m[ProgramStart:])
	switch err {
	case io.EOF, io.ErrUnexpectedEOF:
		return nil
	case nil:
		// The program region is full. Any trailing byte means the
		// image does not fit.
		var b [1]byte
		if n, _ := r.Read(b[:]); n > 0 {
			return errors.Errorf("program image exceeds %d byte capacity", ProgramCapacity)
		}
		return nil
	default:
		return errors.Wrap(err, "loading program image")
	}
}

// U8 returns the byte value at the given address.
func (m Memory) U8(addr int) (int, error) {
	if addr < 0 || addr >= len(m) {
		return 0, &AddressFault{Addr: addr}
	}
	return int(m[addr]), nil
}

// SetU8 sets the byte value at the given address.
func (m Memory) SetU8(addr, value int) error {
	if addr < 0 || addr >= len(m) {
		return &AddressFault{Addr: addr}
	}
	m[addr] = byte(value)
	return nil
}

// U16 returns the big-endian 16-bit value at the given address.
func (m Memory) U16(addr int) (int, error) {
	if addr < 0 || addr+1 >= len(m) {
		return 0, &AddressFault{Addr: addr}
	}
	return int(m[addr])<<8 | int(m[addr+1]), nil
}

// Read returns a copy of n bytes of memory starting at the given
// address.
func (m Memory) Read(addr, n int) ([]byte, error) {
	if addr < 0 || n < 0 || addr+n > len(m) {
		return nil, &AddressFault{Addr: addr + n - 1}
	}
	p := make([]byte, n)
	copy(p, m[addr:])
	return p, nil
}
