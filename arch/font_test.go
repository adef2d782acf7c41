package arch

import "testing"

func TestGlyphAddr(t *testing.T) {
	for d := 0; d <= 16; d++ {
		if have, want := GlyphAddr(d), d*5; have != want {
			t.Fatalf("glyph %x: expected address %#03x; have %#03x", d, want, have)
		}
	}
}

func TestFontSize(t *testing.T) {
	if len(Font) != 16*GlyphSize {
		t.Fatalf("expected %d font bytes; have %d", 16*GlyphSize, len(Font))
	}
}
