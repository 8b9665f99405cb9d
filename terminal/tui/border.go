package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Borders selects which edges of a block are drawn
type Borders uint8

const (
	BorderNone   Borders = 0
	BorderTop    Borders = 1 << 0
	BorderRight  Borders = 1 << 1
	BorderBottom Borders = 1 << 2
	BorderLeft   Borders = 1 << 3
	BorderAll            = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all edges in e are set
func (b Borders) Has(e Borders) bool {
	return b&e == e
}

// Border draws the selected edges around the region edge
// Corners are drawn only where both adjoining edges are selected
func (r Region) Border(edges Borders, line LineType, s Style) {
	if r.W < 1 || r.H < 1 || edges == BorderNone {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	if edges.Has(BorderTop) {
		for x := 0; x < r.W; x++ {
			r.Paint(x, 0, chars[boxH], s)
		}
	}
	if edges.Has(BorderBottom) {
		for x := 0; x < r.W; x++ {
			r.Paint(x, r.H-1, chars[boxH], s)
		}
	}
	if edges.Has(BorderLeft) {
		for y := 0; y < r.H; y++ {
			r.Paint(0, y, chars[boxV], s)
		}
	}
	if edges.Has(BorderRight) {
		for y := 0; y < r.H; y++ {
			r.Paint(r.W-1, y, chars[boxV], s)
		}
	}

	if edges.Has(BorderTop | BorderLeft) {
		r.Paint(0, 0, chars[boxTL], s)
	}
	if edges.Has(BorderTop | BorderRight) {
		r.Paint(r.W-1, 0, chars[boxTR], s)
	}
	if edges.Has(BorderBottom | BorderLeft) {
		r.Paint(0, r.H-1, chars[boxBL], s)
	}
	if edges.Has(BorderBottom | BorderRight) {
		r.Paint(r.W-1, r.H-1, chars[boxBR], s)
	}
}
