package arch

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		word   int
		opcode int
	}{
		{0x00e0, CLS},
		{0x00ee, RET},
		{0x0123, SYS},
		{0x1abc, JMP},
		{0x2abc, CALL},
		{0x3a12, SEB},
		{0x4a12, SNEB},
		{0x5ab0, SER},
		{0x6a12, MOVB},
		{0x7a12, ADDB},
		{0x8ab0, MOVR},
		{0x8ab1, OR},
		{0x8ab2, AND},
		{0x8ab3, XOR},
		{0x8ab4, ADDR},
		{0x8ab5, SUBR},
		{0x8ab6, SHR},
		{0x8ab7, SUBN},
		{0x8abe, SHL},
		{0x9ab0, SNER},
		{0xaabc, MOVI},
		{0xbabc, JMPV},
		{0xca12, RND},
		{0xdab5, DRW},
		{0xea9e, SKP},
		{0xeaa1, SKNP},
		{0xfa07, MOVDT},
		{0xfa0a, WKEY},
		{0xfa15, SETDT},
		{0xfa18, SETST},
		{0xfa1e, ADDI},
		{0xfa29, FONT},
		{0xfa33, BCD},
		{0xfa55, STORE},
		{0xfa65, LOAD},
	}

	for _, tc := range tests {
		opcode, ok := Decode(tc.word)
		if !ok {
			t.Fatalf("%04x: expected a valid opcode", tc.word)
		}
		if opcode != tc.opcode {
			t.Fatalf("%04x: expected opcode %s; have %s",
				tc.word, Name(tc.opcode), Name(opcode))
		}
		if Name(opcode) == "" {
			t.Fatalf("%04x: opcode %d has no name", tc.word, opcode)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	invalid := []int{
		0x5ab1, // 5xy? with non-zero low nibble.
		0x8ab8,
		0x8abf,
		0x9ab1,
		0xea00,
		0xeaff,
		0xfa00,
		0xfa66,
		0xfaff,
	}

	for _, word := range invalid {
		if _, ok := Decode(word); ok {
			t.Fatalf("%04x: expected decode to fail", word)
		}
	}
}
