package devices

import "github.com/hexaflex/chip8/arch"

// KeypadBacklog is the number of key presses buffered between the
// producer and the interpreter.
const KeypadBacklog = 16

// Keypad buffers key presses from an input backend for consumption by
// the interpreter. The producer side never blocks; presses beyond the
// backlog are dropped.
type Keypad struct {
	events chan arch.Key
}

// NewKeypad creates an empty keypad.
func NewKeypad() *Keypad {
	return &Keypad{
		events: make(chan arch.Key, KeypadBacklog),
	}
}

// Press records a key press.
func (k *Keypad) Press(key arch.Key) {
	select {
	case k.events <- key:
	default:
	}
}

// Poll returns the oldest pending key press, if any, without blocking.
func (k *Keypad) Poll() (arch.Key, bool) {
	select {
	case key := <-k.events:
		return key, true
	default:
		return 0, false
	}
}
