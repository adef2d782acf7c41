// Package console implements a display and keyboard backed by a raw mode
// posix terminal. Each display pixel is rendered as two inverse-video
// spaces, making the output roughly square on common terminal fonts.
package console

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	homeCursor  = "\x1b[H"
	inverse     = "\x1b[7m"
	resetStyle  = "\x1b[0m"
)

// Console renders framebuffer contents to a terminal and forwards key
// presses to a keypad.
type Console struct {
	fb       *devices.Framebuffer
	keys     *devices.Keypad
	canAttr  unix.Termios
	quit     chan struct{}
	quitOnce sync.Once
	pixels   [devices.DisplayWidth * devices.DisplayHeight]byte
}

// New creates a console bound to the given framebuffer and keypad.
func New(fb *devices.Framebuffer, keys *devices.Keypad) *Console {
	return &Console{
		fb:   fb,
		keys: keys,
		quit: make(chan struct{}),
	}
}

// Open puts the terminal in raw mode and starts reading key presses.
func (c *Console) Open() error {
	fd := os.Stdin.Fd()

	if err := termios.Tcgetattr(fd, &c.canAttr); err != nil {
		return err
	}

	rawAttr := c.canAttr
	termios.Cfmakeraw(&rawAttr)

	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &rawAttr); err != nil {
		return err
	}

	os.Stdout.WriteString(hideCursor + clearScreen)

	go c.readLoop()
	return nil
}

// Close restores the terminal to canonical mode.
func (c *Console) Close() {
	c.quitOnce.Do(func() { close(c.quit) })
	os.Stdout.WriteString(resetStyle + clearScreen + homeCursor + showCursor)
	termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &c.canAttr)
}

// Quit returns a channel which is closed once the user asks to exit.
func (c *Console) Quit() <-chan struct{} {
	return c.quit
}

// Render draws the current framebuffer contents, provided they changed
// since the last call.
func (c *Console) Render() {
	if !c.fb.Snapshot(c.pixels[:]) {
		return
	}

	var sb strings.Builder
	sb.Grow(devices.DisplayWidth * devices.DisplayHeight * 4)
	sb.WriteString(homeCursor)

	for y := 0; y < devices.DisplayHeight; y++ {
		lit := false
		for x := 0; x < devices.DisplayWidth; x++ {
			on := c.pixels[y*devices.DisplayWidth+x] != 0
			if on != lit {
				if on {
					sb.WriteString(inverse)
				} else {
					sb.WriteString(resetStyle)
				}
				lit = on
			}
			sb.WriteString("  ")
		}
		if lit {
			sb.WriteString(resetStyle)
		}
		sb.WriteString("\r\n")
	}

	os.Stdout.WriteString(sb.String())
}

// readLoop forwards terminal input to the keypad until the quit channel
// is closed or the input stream fails. Escape asks for an exit.
func (c *Console) readLoop() {
	var buf [1]byte

	for {
		if _, err := os.Stdin.Read(buf[:]); err != nil {
			c.quitOnce.Do(func() { close(c.quit) })
			return
		}

		select {
		case <-c.quit:
			return
		default:
		}

		if buf[0] == 0x1b {
			c.quitOnce.Do(func() { close(c.quit) })
			return
		}

		if key, ok := arch.KeyFromChar(rune(buf[0])); ok {
			c.keys.Press(key)
		}
	}
}
