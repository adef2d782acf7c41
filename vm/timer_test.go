package vm

import (
	"testing"
	"time"
)

func TestTimerSetValue(t *testing.T) {
	tmr := NewTimer()

	tmr.Set(10)
	if tmr.Value() != 10 {
		t.Fatalf("expected value 10; have %d", tmr.Value())
	}

	// Values are truncated to 8 bits.
	tmr.Set(0x1ff)
	if tmr.Value() != 0xff {
		t.Fatalf("expected value 0xff; have %d", tmr.Value())
	}
}

func TestTimerDecaysToZero(t *testing.T) {
	tmr := NewTimer()
	tmr.Set(10)
	tmr.Start()
	defer tmr.Stop()

	deadline := time.Now().Add(20 * TickInterval)
	for time.Now().Before(deadline) {
		if v := tmr.Value(); v > 10 {
			t.Fatalf("timer value rose to %d", v)
		}
		time.Sleep(TickInterval)
	}

	if v := tmr.Value(); v != 0 {
		t.Fatalf("expected value 0 after decay; have %d", v)
	}
}

func TestTimerHoldsAtZero(t *testing.T) {
	tmr := NewTimer()
	tmr.Start()
	defer tmr.Stop()

	time.Sleep(3 * TickInterval)
	if v := tmr.Value(); v != 0 {
		t.Fatalf("expected value to stay 0; have %d", v)
	}
}

func TestTimerStartStop(t *testing.T) {
	tmr := NewTimer()

	// Start and Stop are idempotent.
	tmr.Start()
	tmr.Start()
	tmr.Stop()
	tmr.Stop()

	// A stopped timer holds its value.
	tmr.Set(5)
	time.Sleep(3 * TickInterval)
	if tmr.Value() != 5 {
		t.Fatalf("expected a stopped timer to hold 5; have %d", tmr.Value())
	}
}
