package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/window"
	"github.com/hexaflex/chip8/vm"
)

// App defines application context.
type App struct {
	config  *Config              // Application configuration.
	machine *vm.Machine          // VM with program to be run.
	fb      *devices.Framebuffer // Display contents, shared with the window.
	keypad  *devices.Keypad      // Key press buffer, fed by the window.
	window  *window.Window       // OpenGL/GLFW frontend.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.fb = &devices.Framebuffer{}
	a.keypad = devices.NewKeypad()
	a.machine = vm.New(a.fb, a.keypad, a.printTrace)
	a.window = window.New(a.fb, a.keypad)
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.loadProgram(); err != nil {
		return err
	}

	err := a.window.Open(window.Options{
		Title:      fmt.Sprintf("%s %s", AppName, AppVersion),
		Scale:      a.config.ScaleFactor,
		Fullscreen: a.config.Fullscreen,
	})
	if err != nil {
		return err
	}

	defer a.window.Close()

	log.Println(Version())

	a.machine.Start()
	defer a.machine.Stop()

	frame := time.Second / time.Duration(a.config.FPS)

	for !a.window.ShouldClose() {
		start := time.Now()

		if err := a.step(); err != nil {
			log.Println(err)
			break
		}

		a.window.Render()
		a.window.PollEvents()

		if elapsed := time.Since(start); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}

	return nil
}

// step executes one frame's worth of instruction cycles.
func (a *App) step() error {
	for i := 0; i < a.config.CyclesPerFrame; i++ {
		if a.machine.Halted() {
			return nil
		}
		if err := a.machine.Step(); err != nil {
			return err
		}
	}
	return nil
}

// loadProgram loads the program image from disk into machine memory.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.ROM)

	fd, err := os.Open(a.config.ROM)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", a.config.ROM)
	}

	defer fd.Close()
	return a.machine.Load(fd)
}

// printTrace prints instruction trace data. This can be toggled
// on and off through a.config.PrintTrace.
func (a *App) printTrace(i *vm.Instruction) {
	if a.config.PrintTrace {
		fmt.Println(i)
	}
}
