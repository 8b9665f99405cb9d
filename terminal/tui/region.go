package tui

import "github.com/lixenwraith/panes/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// At returns the region covering an absolute rect, clipped to r
func (r Region) At(rect Rect) Region {
	return r.Sub(rect.X-r.X, rect.Y-r.Y, rect.Width, rect.Height)
}

// Rect returns the absolute bounds as a Rect
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// index returns the backing slice index for a relative position, -1 if outside
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return -1
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return -1
	}
	return idx
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Get returns the cell at a relative position, zero Cell when outside
func (r Region) Get(x, y int) terminal.Cell {
	if idx := r.index(x, y); idx >= 0 {
		return r.Cells[idx]
	}
	return terminal.Cell{}
}

// Paint sets a cell using style; zero colors keep the existing cell colors
func (r Region) Paint(x, y int, ch rune, s Style) {
	idx := r.index(x, y)
	if idx < 0 {
		return
	}
	c := r.Cells[idx]
	c.Rune = ch
	if !s.Fg.IsZero() {
		c.Fg = s.Fg
	}
	if !s.Bg.IsZero() {
		c.Bg = s.Bg
	}
	c.Attrs = s.Attr
	r.Cells[idx] = c
}

// FillStyle clears the region to spaces painted with s
func (r Region) FillStyle(s Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Paint(x, y, ' ', s)
		}
	}
}

// Text renders text at position, truncates at region edge, returns columns consumed
func (r Region) Text(x, y int, s string, style Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Paint(x+col, y, ch, style)
		}
		col++
	}
	return col
}
