package devices

import (
	"testing"

	"github.com/hexaflex/chip8/arch"
)

func TestKeypadPressPoll(t *testing.T) {
	kp := NewKeypad()

	if _, ok := kp.Poll(); ok {
		t.Fatal("poll on an empty keypad should report no key")
	}

	kp.Press(arch.Key(0xa))
	kp.Press(arch.Key(0x1))

	if key, ok := kp.Poll(); !ok || key != 0xa {
		t.Fatalf("expected key a; have %x, %v", key, ok)
	}
	if key, ok := kp.Poll(); !ok || key != 0x1 {
		t.Fatalf("expected key 1; have %x, %v", key, ok)
	}
	if _, ok := kp.Poll(); ok {
		t.Fatal("expected the keypad to be drained")
	}
}

func TestKeypadDropsOverflow(t *testing.T) {
	kp := NewKeypad()

	for i := 0; i < KeypadBacklog+5; i++ {
		kp.Press(arch.Key(i % arch.NumKeys))
	}

	count := 0
	for {
		if _, ok := kp.Poll(); !ok {
			break
		}
		count++
	}

	if count != KeypadBacklog {
		t.Fatalf("expected %d buffered presses; have %d", KeypadBacklog, count)
	}
}
