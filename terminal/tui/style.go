package tui

import (
	"github.com/lixenwraith/panes/terminal"
)

// Style bundles foreground, background, and attributes for rendering
// Zero colors are transparent: painting keeps the color already in the cell
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Background returns a style that only sets the background
func Background(bg terminal.RGB) Style {
	return Style{Bg: bg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg.IsZero() && s.Bg.IsZero() && s.Attr == terminal.AttrNone
}

// Patch overlays the non-zero fields of o onto s
func (s Style) Patch(o Style) Style {
	if !o.Fg.IsZero() {
		s.Fg = o.Fg
	}
	if !o.Bg.IsZero() {
		s.Bg = o.Bg
	}
	s.Attr |= o.Attr
	return s
}
