package tui

import "github.com/lixenwraith/panes/terminal"

// Widget draws itself into the region it is given
type Widget interface {
	Render(r Region)
}

// Frame is the drawing surface handed to a render function for one draw call
type Frame struct {
	root Region
}

// NewFrame wraps a row-major cell buffer of w*h cells
func NewFrame(cells []terminal.Cell, w, h int) Frame {
	return Frame{root: NewRegion(cells, w, 0, 0, w, h)}
}

// NewBlankFrame allocates a buffer prefilled with theme colors
func NewBlankFrame(w, h int, theme Theme) Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]terminal.Cell, w*h)
	for i := range cells {
		cells[i] = terminal.Cell{Rune: ' ', Fg: theme.Fg, Bg: theme.Bg}
	}
	return NewFrame(cells, w, h)
}

// Size returns the full-screen rectangle
func (f Frame) Size() Rect {
	return f.root.Rect()
}

// Region returns the root region
func (f Frame) Region() Region {
	return f.root
}

// Cells returns the backing buffer
func (f Frame) Cells() []terminal.Cell {
	return f.root.Cells
}

// RenderWidget draws w clipped to area
func (f Frame) RenderWidget(w Widget, area Rect) {
	w.Render(f.root.At(area))
}
