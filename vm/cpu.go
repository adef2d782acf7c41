// Package vm implements the chip-8 instruction cycle engine: memory,
// registers, stack, delay timer and the fetch-decode-execute loop.
package vm

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// outcome describes how the program counter moves after an
// instruction: one instruction width, two widths (a skip), or a jump
// to an absolute address. Applying the outcome in Cycle is the single
// point where the program counter is mutated; no instruction handler
// touches it directly.
type outcome struct {
	kind   int
	target int
}

const (
	oNext = iota
	oSkip
	oJump
)

var (
	next = outcome{kind: oNext}
	skip = outcome{kind: oSkip}
)

func jumpTo(addr int) outcome {
	return outcome{kind: oJump, target: addr}
}

// CPU owns the register file, stack and program counter and drives
// one fetch-decode-execute cycle per Cycle call.
type CPU struct {
	v     [16]int     // General purpose registers V0-VF.
	i     int         // Index register.
	stack [16]int     // Subroutine return addresses.
	sp    int         // Stack pointer.
	pc    int         // Program counter.
	key   int         // Pending key press; -1 when none.
	rng   *rand.Rand  // Source for RND.
	trace TraceFunc   // Handler for debug trace output.
	instr Instruction // Decoded instruction data.
}

// NewCPU creates a new CPU with the program counter at ProgramStart.
// Optionally with the given debug trace handler.
func NewCPU(trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	return &CPU{
		pc:    ProgramStart,
		key:   -1,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		trace: trace,
	}
}

// PC returns the current program counter value.
func (c *CPU) PC() int {
	return c.pc
}

// Cycle performs a single fetch-decode-execute step against the given
// memory bank and collaborators. Any fault is terminal for the run.
func (c *CPU) Cycle(m Memory, t *Timer, d Display, k Keyboard) error {
	instr := &c.instr
	if err := instr.Decode(m, c.pc); err != nil {
		return err
	}

	c.trace(instr)

	res, err := c.execute(instr, m, t, d, k)
	if err != nil {
		return err
	}

	switch res.kind {
	case oNext:
		c.pc += 2
	case oSkip:
		c.pc += 4
	case oJump:
		c.pc = res.target
	}

	return nil
}

func (c *CPU) execute(instr *Instruction, m Memory, t *Timer, d Display, k Keyboard) (outcome, error) {
	v := c.v[:]
	x, y := instr.X, instr.Y

	switch instr.Opcode {
	case arch.CLS:
		d.Clear()
		return next, nil

	case arch.RET:
		if c.sp == 0 {
			return next, &StackFault{PC: instr.PC, Msg: "return with no call outstanding"}
		}
		c.sp--
		return jumpTo(c.stack[c.sp] + 2), nil

	case arch.SYS, arch.JMP:
		return jumpTo(instr.NNN), nil

	case arch.CALL:
		if c.sp == len(c.stack) {
			return next, &StackFault{PC: instr.PC, Msg: "call stack overflow"}
		}
		c.stack[c.sp] = c.pc
		c.sp++
		return jumpTo(instr.NNN), nil

	case arch.SEB:
		if v[x] == instr.KK {
			return skip, nil
		}
		return next, nil

	case arch.SNEB:
		if v[x] != instr.KK {
			return skip, nil
		}
		return next, nil

	case arch.SER:
		if v[x] == v[y] {
			return skip, nil
		}
		return next, nil

	case arch.SNER:
		if v[x] != v[y] {
			return skip, nil
		}
		return next, nil

	case arch.MOVB:
		v[x] = instr.KK
		return next, nil

	case arch.ADDB:
		// Wraps around without touching the carry flag.
		v[x] = (v[x] + instr.KK) & 0xff
		return next, nil

	case arch.MOVR:
		v[x] = v[y]
		return next, nil

	case arch.OR:
		v[x] |= v[y]
		return next, nil

	case arch.AND:
		v[x] &= v[y]
		return next, nil

	case arch.XOR:
		v[x] ^= v[y]
		return next, nil

	case arch.ADDR:
		sum := v[x] + v[y]
		v[0xf] = 0
		if sum > 0xff {
			v[0xf] = 1
		}
		v[x] = sum & 0xff
		return next, nil

	case arch.SUBR:
		// VF holds NOT borrow.
		diff := v[x] - v[y]
		v[0xf] = 1
		if diff < 0 {
			v[0xf] = 0
		}
		v[x] = diff & 0xff
		return next, nil

	case arch.SHR:
		v[0xf] = v[x] & 0x1
		v[x] >>= 1
		return next, nil

	case arch.SUBN:
		diff := v[y] - v[x]
		v[0xf] = 1
		if diff < 0 {
			v[0xf] = 0
		}
		v[x] = diff & 0xff
		return next, nil

	case arch.SHL:
		v[0xf] = v[x] >> 7
		v[x] = v[x] << 1 & 0xff
		return next, nil

	case arch.MOVI:
		c.i = instr.NNN
		return next, nil

	case arch.JMPV:
		return jumpTo(instr.NNN + v[0]), nil

	case arch.RND:
		v[x] = c.rng.Intn(0x100) & instr.KK
		return next, nil

	case arch.DRW:
		rows, err := m.Read(c.i, instr.N)
		if err != nil {
			return next, err
		}
		collision, err := d.Draw(v[x], v[y], rows)
		if err != nil {
			return next, errors.Wrap(err, "draw failed")
		}
		v[0xf] = 0
		if collision {
			v[0xf] = 1
		}
		return next, nil

	case arch.SKP:
		if key, ok := c.poll(k); ok && key == v[x] {
			c.key = -1
			return skip, nil
		}
		return next, nil

	case arch.SKNP:
		if key, ok := c.poll(k); ok && key == v[x] {
			c.key = -1
			return next, nil
		}
		return skip, nil

	case arch.MOVDT:
		v[x] = t.Value()
		return next, nil

	case arch.WKEY:
		// Re-issue the same instruction until a key arrives. The
		// caller keeps control of pacing and cancellation.
		if key, ok := c.poll(k); ok {
			v[x] = key
			c.key = -1
			return next, nil
		}
		return jumpTo(c.pc), nil

	case arch.SETDT:
		t.Set(v[x])
		return next, nil

	case arch.SETST:
		// Sound is not implemented. The pattern is recognized so
		// programs using it keep running.
		return next, nil

	case arch.ADDI:
		c.i = (c.i + v[x]) & 0xffff
		return next, nil

	case arch.FONT:
		c.i = arch.GlyphAddr(v[x])
		return next, nil

	case arch.BCD:
		if err := m.SetU8(c.i, v[x]/100%10); err != nil {
			return next, err
		}
		if err := m.SetU8(c.i+1, v[x]/10%10); err != nil {
			return next, err
		}
		if err := m.SetU8(c.i+2, v[x]%10); err != nil {
			return next, err
		}
		return next, nil

	case arch.STORE:
		for n := 0; n <= x; n++ {
			if err := m.SetU8(c.i+n, v[n]); err != nil {
				return next, err
			}
		}
		return next, nil

	case arch.LOAD:
		for n := 0; n <= x; n++ {
			b, err := m.U8(c.i + n)
			if err != nil {
				return next, err
			}
			v[n] = b
		}
		return next, nil
	}

	return next, &OpcodeFault{PC: instr.PC, Word: instr.Word}
}

// poll drains the keyboard collaborator and returns the pending key
// press, if any. The pending key is retained across cycles until an
// instruction consumes it.
func (c *CPU) poll(k Keyboard) (int, bool) {
	if k != nil {
		if key, ok := k.Poll(); ok {
			c.key = int(key)
		}
	}
	if c.key < 0 {
		return 0, false
	}
	return c.key, true
}
