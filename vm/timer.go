package vm

import (
	"sync/atomic"
	"time"
)

// TickInterval is the real-time rate at which the delay timer decays.
const TickInterval = time.Second / 60

// Timer is the 8-bit delay timer. It decrements toward zero at a
// fixed real-time rate, independent of instruction execution. The
// engine and the ticking goroutine may touch the value concurrently,
// so all access goes through atomic operations; there is no lock
// shared with the execution path.
type Timer struct {
	value   uint32
	running uint32
	stop    chan struct{}
}

// NewTimer creates a stopped timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Start launches the background ticking goroutine.
// It does nothing if the timer is already running.
func (t *Timer) Start() {
	if !atomic.CompareAndSwapUint32(&t.running, 0, 1) {
		return
	}
	t.stop = make(chan struct{})
	go t.tick(t.stop)
}

// Stop ends the ticking goroutine. The stored value is retained.
func (t *Timer) Stop() {
	if !atomic.CompareAndSwapUint32(&t.running, 1, 0) {
		return
	}
	close(t.stop)
}

// Value returns the current timer value without blocking.
func (t *Timer) Value() int {
	return int(atomic.LoadUint32(&t.value))
}

// Set overwrites the timer value without blocking.
func (t *Timer) Set(v int) {
	atomic.StoreUint32(&t.value, uint32(v&0xff))
}

// tick decrements the value once per interval while it is above zero.
func (t *Timer) tick(stop <-chan struct{}) {
	tick := time.NewTicker(TickInterval)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			for {
				v := atomic.LoadUint32(&t.value)
				if v == 0 {
					break
				}
				if atomic.CompareAndSwapUint32(&t.value, v, v-1) {
					break
				}
			}
		}
	}
}
