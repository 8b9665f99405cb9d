// Package screens holds the render functions of the example programs.
package screens

import (
	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// panel is one colored block of the Panels screen
type panel struct {
	title string
	bg    terminal.RGB
}

var (
	topLeft     = panel{"1 Title", terminal.RGBGreen}
	bottomLeft  = panel{"2 Title", terminal.RGBYellow}
	topRight    = panel{"3 Title", terminal.RGBBlue}
	bottomRight = panel{"4 Title", terminal.RGBRed}
)

// PanelsLayout returns the four panel rects for area in draw order
func PanelsLayout(area tui.Rect) [4]tui.Rect {
	cols := tui.Split(area, tui.Horizontal, tui.Percentage(30), tui.Percentage(70))
	left := tui.Split(cols[0], tui.Vertical, tui.Percentage(50), tui.Percentage(50))
	right := tui.Split(cols[1], tui.Vertical, tui.Percentage(80), tui.Percentage(20))
	return [4]tui.Rect{left[0], left[1], right[0], right[1]}
}

// Panels draws a 30/70 column split, the left column halved and the right split 80/20
func Panels(f tui.Frame) {
	rects := PanelsLayout(f.Size())
	for i, p := range [4]panel{topLeft, bottomLeft, topRight, bottomRight} {
		f.RenderWidget(tui.Block{Title: p.title, Style: tui.Background(p.bg)}, rects[i])
	}
}
