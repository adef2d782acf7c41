package devices

import "testing"

func TestDrawCollision(t *testing.T) {
	var fb Framebuffer
	sprite := []byte{0xf0, 0x90, 0x90, 0x90, 0xf0}

	collision, err := fb.Draw(4, 2, sprite)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if collision {
		t.Fatal("first draw on an empty display should not collide")
	}
	if !fb.Pixel(4, 2) {
		t.Fatal("expected pixel (4, 2) to be lit")
	}

	// Drawing the same sprite again un-sets every pixel it lit.
	collision, err = fb.Draw(4, 2, sprite)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if !collision {
		t.Fatal("second draw at the same position should collide")
	}
	if fb.Pixel(4, 2) {
		t.Fatal("expected pixel (4, 2) to be switched off")
	}
}

func TestDrawXORComposition(t *testing.T) {
	var fb Framebuffer

	fb.Draw(0, 0, []byte{0xff})
	fb.Draw(0, 0, []byte{0x0f})

	// The overlapping half toggled off, the rest stayed lit.
	for x := 0; x < 4; x++ {
		if !fb.Pixel(x, 0) {
			t.Fatalf("expected pixel (%d, 0) to be lit", x)
		}
	}
	for x := 4; x < 8; x++ {
		if fb.Pixel(x, 0) {
			t.Fatalf("expected pixel (%d, 0) to be off", x)
		}
	}
}

func TestDrawClipsAtEdges(t *testing.T) {
	var fb Framebuffer

	// Only the first two columns and the first row fit.
	collision, err := fb.Draw(DisplayWidth-2, DisplayHeight-1, []byte{0xff, 0xff})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if collision {
		t.Fatal("clipped draw should not collide")
	}

	if !fb.Pixel(DisplayWidth-2, DisplayHeight-1) || !fb.Pixel(DisplayWidth-1, DisplayHeight-1) {
		t.Fatal("expected the in-bounds pixels to be lit")
	}

	// A sprite placed entirely off screen is dropped.
	if _, err := fb.Draw(200, 100, []byte{0xff}); err != nil {
		t.Fatalf("off-screen draw failed: %v", err)
	}
	var pix [DisplayWidth * DisplayHeight]byte
	fb.Snapshot(pix[:])
	lit := 0
	for _, p := range pix {
		if p != 0 {
			lit++
		}
	}
	if lit != 2 {
		t.Fatalf("expected 2 lit pixels; have %d", lit)
	}
}

func TestClear(t *testing.T) {
	var fb Framebuffer

	fb.Draw(10, 10, []byte{0xff})
	fb.Clear()

	if fb.Pixel(10, 10) {
		t.Fatal("expected the display to be blank after clear")
	}
}

func TestSnapshotDirty(t *testing.T) {
	var fb Framebuffer
	var pix [DisplayWidth * DisplayHeight]byte

	if fb.Snapshot(pix[:]) {
		t.Fatal("a fresh framebuffer should not be dirty")
	}

	fb.Draw(0, 0, []byte{0x80})
	if !fb.Snapshot(pix[:]) {
		t.Fatal("expected the framebuffer to be dirty after a draw")
	}
	if pix[0] != 1 {
		t.Fatal("expected pixel (0, 0) in the snapshot")
	}

	if fb.Snapshot(pix[:]) {
		t.Fatal("snapshot should reset the dirty flag")
	}

	fb.Clear()
	if !fb.Snapshot(pix[:]) {
		t.Fatal("expected the framebuffer to be dirty after a clear")
	}
}
