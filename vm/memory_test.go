package vm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hexaflex/chip8/arch"
)

func TestLoadProgram(t *testing.T) {
	m := NewMemory()

	program := []byte{0x6a, 0x02, 0x3a, 0x02}
	if err := m.Load(bytes.NewReader(program)); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for n, b := range program {
		if m[ProgramStart+n] != b {
			t.Fatalf("expected memory[%#03x] = %#02x; have %#02x",
				ProgramStart+n, b, m[ProgramStart+n])
		}
	}

	// The font table occupies the reserved region.
	for n, b := range arch.Font {
		if m[n] != b {
			t.Fatalf("expected font byte %#02x at %#03x; have %#02x", b, n, m[n])
		}
	}
}

func TestLoadCapacity(t *testing.T) {
	m := NewMemory()

	exact := bytes.Repeat([]byte{0x01}, ProgramCapacity)
	if err := m.Load(bytes.NewReader(exact)); err != nil {
		t.Fatalf("expected an image of exactly %d bytes to load; have %v", ProgramCapacity, err)
	}

	oversized := bytes.Repeat([]byte{0x01}, ProgramCapacity+1)
	if err := m.Load(bytes.NewReader(oversized)); err == nil {
		t.Fatal("expected an oversized image to be rejected")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestLoadReadError(t *testing.T) {
	m := NewMemory()

	err := m.Load(errReader{})
	if err == nil {
		t.Fatal("expected a read failure to propagate")
	}
	if !strings.Contains(err.Error(), "loading program image") {
		t.Fatalf("expected a wrapped load error; have %v", err)
	}
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	if _, err := m.U8(MemoryCapacity - 1); err != nil {
		t.Fatalf("expected the last byte to be readable; have %v", err)
	}
	if err := m.SetU8(MemoryCapacity-1, 0xff); err != nil {
		t.Fatalf("expected the last byte to be writable; have %v", err)
	}

	invalid := []func() error{
		func() error { _, err := m.U8(-1); return err },
		func() error { _, err := m.U8(MemoryCapacity); return err },
		func() error { return m.SetU8(MemoryCapacity, 0) },
		func() error { _, err := m.U16(MemoryCapacity - 1); return err },
		func() error { _, err := m.Read(MemoryCapacity-2, 3); return err },
		func() error { _, err := m.Read(-1, 2); return err },
	}

	for n, access := range invalid {
		err := access()
		if _, ok := err.(*AddressFault); !ok {
			t.Fatalf("case %d: expected an address fault; have %v", n, err)
		}
	}
}

func TestMemoryRead(t *testing.T) {
	m := NewMemory()
	m[0x300] = 0xaa
	m[0x301] = 0xbb

	p, err := m.Read(0x300, 2)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if p[0] != 0xaa || p[1] != 0xbb {
		t.Fatalf("unexpected block contents: %#02x %#02x", p[0], p[1])
	}

	// The copy is detached from the memory bank.
	p[0] = 0x00
	if m[0x300] != 0xaa {
		t.Fatal("block read should not alias memory")
	}
}
