package tui

// Block is a panel: optional background, borders and a title on the top row
type Block struct {
	Title       string
	TitleStyle  Style
	Borders     Borders
	Line        LineType
	BorderStyle Style
	Style       Style // Applied to the whole area before borders and title
}

// Inner returns the content area left inside borders and title
func (b Block) Inner(area Rect) Rect {
	inner := area
	if b.Borders.Has(BorderLeft) && inner.Width > 0 {
		inner.X++
		inner.Width--
	}
	if b.Borders.Has(BorderRight) && inner.Width > 0 {
		inner.Width--
	}
	if (b.Borders.Has(BorderTop) || b.Title != "") && inner.Height > 0 {
		inner.Y++
		inner.Height--
	}
	if b.Borders.Has(BorderBottom) && inner.Height > 0 {
		inner.Height--
	}
	return inner
}

// Render implements Widget
func (b Block) Render(r Region) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if !b.Style.IsZero() {
		r.FillStyle(b.Style)
	}
	r.Border(b.Borders, b.Line, b.Style.Patch(b.BorderStyle))

	if b.Title == "" {
		return
	}
	x, w := 0, r.W
	if b.Borders.Has(BorderLeft) {
		x++
		w--
	}
	if b.Borders.Has(BorderRight) {
		w--
	}
	if w <= 0 {
		return
	}
	r.Text(x, 0, Truncate(b.Title, w), b.Style.Patch(b.TitleStyle))
}
