// Package devices provides building blocks for display and keyboard
// collaborators: a framebuffer with XOR sprite composition and a
// buffered keypad. Rendering and input backends live in sub-packages.
package devices

import "sync"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is a monochrome pixel buffer with XOR sprite
// composition. It satisfies the machine's display contract and can be
// used on its own as a headless display, or embedded in a rendering
// backend. The buffer may be shared between the engine and a render
// loop; the critical section of every method is a single buffer pass.
type Framebuffer struct {
	mu    sync.Mutex
	pix   [DisplayWidth * DisplayHeight]byte
	dirty bool
}

// Draw XOR-composites the given sprite rows at (x, y). Each row is 8
// pixels wide, one bit per pixel, composed at (x, y+i). Pixels falling
// outside the display are dropped. Returns true if any lit pixel was
// switched off.
func (f *Framebuffer) Draw(x, y int, rows []byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var collision bool
	for iy, row := range rows {
		py := y + iy
		if py < 0 || py >= DisplayHeight {
			continue
		}
		for ix := 0; ix < 8; ix++ {
			if row&(0x80>>uint(ix)) == 0 {
				continue
			}
			px := x + ix
			if px < 0 || px >= DisplayWidth {
				continue
			}
			n := py*DisplayWidth + px
			if f.pix[n] != 0 {
				f.pix[n] = 0
				collision = true
			} else {
				f.pix[n] = 1
			}
		}
	}

	f.dirty = true
	return collision, nil
}

// Clear switches off every pixel.
func (f *Framebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pix = [DisplayWidth * DisplayHeight]byte{}
	f.dirty = true
}

// Pixel reports whether the pixel at (x, y) is lit.
func (f *Framebuffer) Pixel(x, y int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f.pix[y*DisplayWidth+x] != 0
}

// Snapshot copies the pixel buffer into dst, which must hold
// DisplayWidth*DisplayHeight bytes, and reports whether the contents
// changed since the previous snapshot.
func (f *Framebuffer) Snapshot(dst []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	copy(dst, f.pix[:])
	dirty := f.dirty
	f.dirty = false
	return dirty
}
