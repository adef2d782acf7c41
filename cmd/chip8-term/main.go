package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/console"
	"github.com/hexaflex/chip8/vm"
)

func main() {
	if err := run(parseArgs()); err != nil {
		log.Fatal(err)
	}
}

func run(config *Config) error {
	fb := &devices.Framebuffer{}
	keypad := devices.NewKeypad()

	machine := vm.New(fb, keypad, func(i *vm.Instruction) {
		// Raw mode needs an explicit carriage return.
		if config.PrintTrace {
			fmt.Fprintf(os.Stderr, "%s\r\n", i)
		}
	})

	fd, err := os.Open(config.ROM)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", config.ROM)
	}

	err = machine.Load(fd)
	fd.Close()

	if err != nil {
		return err
	}

	term := console.New(fb, keypad)
	if err := term.Open(); err != nil {
		return errors.Wrapf(err, "failed to initialize terminal")
	}

	defer term.Close()

	machine.Start()
	defer machine.Stop()

	frame := time.Second / time.Duration(config.FPS)
	tick := time.NewTicker(frame)
	defer tick.Stop()

	for {
		select {
		case <-term.Quit():
			return nil
		case <-tick.C:
		}

		for i := 0; i < config.CyclesPerFrame && !machine.Halted(); i++ {
			if err := machine.Step(); err != nil {
				return err
			}
		}

		term.Render()

		if machine.Halted() {
			return nil
		}
	}
}
