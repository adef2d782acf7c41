package vm

import "fmt"

// AddressFault reports a memory access outside the valid address
// range. It is fatal for the run; no access is ever wrapped around.
type AddressFault struct {
	Addr int
}

func (e *AddressFault) Error() string {
	return fmt.Sprintf("address %#03x is outside valid memory", e.Addr)
}

// OpcodeFault reports an instruction word matching none of the known
// opcode patterns.
type OpcodeFault struct {
	PC   int
	Word int
}

func (e *OpcodeFault) Error() string {
	return fmt.Sprintf("%03x: unknown opcode %04x", e.PC, e.Word)
}

// StackFault reports a subroutine call beyond the stack capacity or a
// return with no call outstanding.
type StackFault struct {
	PC  int
	Msg string
}

func (e *StackFault) Error() string {
	return fmt.Sprintf("%03x: %s", e.PC, e.Msg)
}
