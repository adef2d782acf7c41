package vm

import "io"

// Machine composes the memory bank, instruction engine and delay
// timer with borrowed display and keyboard collaborators. The machine
// owns the former three exclusively; the collaborators may be shared
// with a render loop or input producer.
type Machine struct {
	cpu      *CPU
	memory   Memory
	timer    *Timer
	display  Display
	keyboard Keyboard
}

// New creates a machine wired to the given collaborators.
// Optionally with the given debug trace handler.
func New(display Display, keyboard Keyboard, trace TraceFunc) *Machine {
	return &Machine{
		cpu:      NewCPU(trace),
		memory:   NewMemory(),
		timer:    NewTimer(),
		display:  display,
		keyboard: keyboard,
	}
}

// Load reads a program image into memory. It should be called before
// execution starts.
func (m *Machine) Load(r io.Reader) error {
	return m.memory.Load(r)
}

// Memory returns the machine's memory bank.
func (m *Machine) Memory() Memory {
	return m.memory
}

// Timer returns the machine's delay timer.
func (m *Machine) Timer() *Timer {
	return m.timer
}

// Start launches the delay timer's background ticker.
func (m *Machine) Start() {
	m.timer.Start()
}

// Stop ends the delay timer's background ticker.
func (m *Machine) Stop() {
	m.timer.Stop()
}

// Halted reports whether the program counter has run into the guard
// bound at the top of memory.
func (m *Machine) Halted() bool {
	return m.cpu.pc+1 >= MemoryCapacity
}

// Step executes a single instruction cycle.
func (m *Machine) Step() error {
	return m.cpu.Cycle(m.memory, m.timer, m.display, m.keyboard)
}

// Run executes instruction cycles until the machine halts or a cycle
// faults. Run does not throttle; pacing is the caller's concern.
func (m *Machine) Run() error {
	for !m.Halted() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
