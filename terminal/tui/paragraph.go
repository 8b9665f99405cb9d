package tui

import "strings"

// Paragraph renders lines of text, optionally inside a Block
// Lines split on '\n' and are clipped at the right edge, not wrapped
type Paragraph struct {
	Text  string
	Style Style
	Block *Block
}

// Render implements Widget
func (p Paragraph) Render(r Region) {
	if p.Block != nil {
		p.Block.Render(r)
		r = r.At(p.Block.Inner(r.Rect()))
	}
	if !p.Style.Bg.IsZero() {
		r.FillStyle(Style{Bg: p.Style.Bg})
	}
	for y, line := range strings.Split(p.Text, "\n") {
		if y >= r.H {
			break
		}
		r.Text(0, y, line, p.Style)
	}
}
