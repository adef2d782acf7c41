package vm

import (
	"fmt"

	"github.com/hexaflex/chip8/arch"
)

// Instruction defines decoded instruction data. Every instruction is
// one 16-bit word, split into four nibbles for classification.
type Instruction struct {
	PC     int // Address the instruction was fetched from.
	Word   int // Raw instruction word.
	Opcode int // Decoded opcode.
	X      int // First register operand.
	Y      int // Second register operand.
	N      int // 4-bit immediate.
	KK     int // 8-bit immediate.
	NNN    int // 12-bit address.
}

// Decode decodes the instruction at the given address from the given
// memory bank.
func (i *Instruction) Decode(m Memory, pc int) error {
	word, err := m.U16(pc)
	if err != nil {
		return err
	}

	opcode, ok := arch.Decode(word)
	if !ok {
		return &OpcodeFault{PC: pc, Word: word}
	}

	i.PC = pc
	i.Word = word
	i.Opcode = opcode
	i.X = word >> 8 & 0xf
	i.Y = word >> 4 & 0xf
	i.N = word & 0xf
	i.KK = word & 0xff
	i.NNN = word & 0xfff
	return nil
}

func (i *Instruction) String() string {
	name := arch.Name(i.Opcode)

	switch i.Opcode {
	case arch.CLS, arch.RET:
		return fmt.Sprintf("%03x %04x  %s", i.PC, i.Word, name)
	case arch.SYS, arch.JMP, arch.CALL, arch.MOVI:
		return fmt.Sprintf("%03x %04x  %-4s %03x", i.PC, i.Word, name, i.NNN)
	case arch.JMPV:
		return fmt.Sprintf("%03x %04x  %-4s V0, %03x", i.PC, i.Word, name, i.NNN)
	case arch.SEB, arch.SNEB, arch.MOVB, arch.ADDB, arch.RND:
		return fmt.Sprintf("%03x %04x  %-4s V%X, %02x", i.PC, i.Word, name, i.X, i.KK)
	case arch.SER, arch.SNER, arch.MOVR, arch.OR, arch.AND, arch.XOR,
		arch.ADDR, arch.SUBR, arch.SHR, arch.SUBN, arch.SHL:
		return fmt.Sprintf("%03x %04x  %-4s V%X, V%X", i.PC, i.Word, name, i.X, i.Y)
	case arch.DRW:
		return fmt.Sprintf("%03x %04x  %-4s V%X, V%X, %x", i.PC, i.Word, name, i.X, i.Y, i.N)
	default:
		return fmt.Sprintf("%03x %04x  %-4s V%X", i.PC, i.Word, name, i.X)
	}
}
