package tui

import (
	"testing"

	"github.com/lixenwraith/panes/terminal"
)

func TestRegionSubClipsToParent(t *testing.T) {
	cells := make([]terminal.Cell, 10*5)
	root := NewRegion(cells, 10, 0, 0, 10, 5)

	sub := root.Sub(8, 3, 5, 5)
	if sub.W != 2 || sub.H != 2 {
		t.Errorf("Expected clipped size 2x2, got %dx%d", sub.W, sub.H)
	}
	if sub.X != 8 || sub.Y != 3 {
		t.Errorf("Expected origin (8,3), got (%d,%d)", sub.X, sub.Y)
	}
}

func TestRegionAtUsesAbsoluteRect(t *testing.T) {
	cells := make([]terminal.Cell, 10*5)
	root := NewRegion(cells, 10, 0, 0, 10, 5)
	inner := root.Sub(2, 1, 6, 3)

	r := inner.At(Rect{X: 3, Y: 2, Width: 2, Height: 1})
	if r.Rect() != (Rect{X: 3, Y: 2, Width: 2, Height: 1}) {
		t.Errorf("Expected absolute rect preserved, got %+v", r.Rect())
	}

	r.Cell(0, 0, 'z', terminal.RGBWhite, terminal.RGBBlack, terminal.AttrNone)
	if cells[2*10+3].Rune != 'z' {
		t.Error("Expected write at absolute (3,2)")
	}
}

func TestRegionCellOutOfBoundsIgnored(t *testing.T) {
	cells := make([]terminal.Cell, 4)
	r := NewRegion(cells, 2, 0, 0, 2, 2)
	r.Cell(-1, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	r.Cell(2, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	r.Cell(0, 2, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	for i, c := range cells {
		if c.Rune != 0 {
			t.Errorf("Expected cell %d untouched, got %q", i, c.Rune)
		}
	}
	if got := r.Get(5, 5); got != (terminal.Cell{}) {
		t.Errorf("Expected zero cell outside region, got %+v", got)
	}
}

func TestRegionPaintKeepsTransparentColors(t *testing.T) {
	f := NewBlankFrame(3, 1, DefaultTheme)
	r := f.Region()

	r.Paint(0, 0, 'a', Style{Fg: terminal.RGBRed})
	c := r.Get(0, 0)
	if c.Rune != 'a' || c.Fg != terminal.RGBRed {
		t.Errorf("Expected red 'a', got %+v", c)
	}
	if c.Bg != DefaultTheme.Bg {
		t.Errorf("Expected background inherited from frame, got %+v", c.Bg)
	}
}

func TestRegionTextTruncates(t *testing.T) {
	f := NewBlankFrame(4, 1, DefaultTheme)
	n := f.Region().Text(1, 0, "hello", Style{})
	if n != 3 {
		t.Errorf("Expected 3 columns written, got %d", n)
	}
	want := " hel"
	for x, ch := range want {
		if got := f.Region().Get(x, 0).Rune; got != ch {
			t.Errorf("col %d: expected %q, got %q", x, ch, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Border", 4); got != "Bor…" {
		t.Errorf("Truncate = %q, want %q", got, "Bor…")
	}
	if got := Truncate("ok", 4); got != "ok" {
		t.Errorf("Truncate = %q, want %q", got, "ok")
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate = %q, want empty", got)
	}
	if got := Truncate("héllo", 3); got != "hé…" {
		t.Errorf("Truncate counted bytes, got %q", got)
	}
}
