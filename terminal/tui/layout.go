package tui

// Rect is an axis-aligned rectangle in cell coordinates, origin top-left
// Width and Height are never negative
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rectangle covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks the rectangle by margin on all four edges
// Dimensions clamp to zero, the origin stays inside the original bounds
func (r Rect) Inner(margin int) Rect {
	if margin <= 0 {
		return r
	}
	w := r.Width - 2*margin
	h := r.Height - 2*margin
	dx, dy := margin, margin
	if w < 0 {
		w = 0
		dx = r.Width / 2
	}
	if h < 0 {
		h = 0
		dy = r.Height / 2
	}
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: w, Height: h}
}

// Direction is the axis a Layout splits along
type Direction uint8

const (
	Vertical   Direction = iota // stack top to bottom, split height
	Horizontal                  // place left to right, split width
)

// String returns the direction name
func (d Direction) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ConstraintKind tags a Constraint
type ConstraintKind uint8

const (
	KindPercentage ConstraintKind = iota
	KindLength
	KindMin
)

// Constraint sizes one segment along the split axis
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Percentage takes round(p% of the axis extent), p is clamped to 0..100
func Percentage(p int) Constraint {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return Constraint{Kind: KindPercentage, Value: p}
}

// Length takes exactly n cells, or what is left if less
func Length(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{Kind: KindLength, Value: n}
}

// Min takes at least n cells when available and absorbs leftover space
func Min(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{Kind: KindMin, Value: n}
}

// want returns the requested size for an axis of the given extent
func (c Constraint) want(extent int) int {
	if c.Kind == KindPercentage {
		// Round half up in integer arithmetic
		return (c.Value*extent*2 + 100) / 200
	}
	return c.Value
}

// Layout splits a rectangle into ordered segments along one axis
//
// Segments are allocated in order, each getting min(requested, remaining).
// Space left over after all constraints goes to the last Min constraint,
// or to the last constraint when there is no Min. The result always tiles
// the area (after margin) with no gaps or overlap.
type Layout struct {
	Direction   Direction
	Margin      int
	Constraints []Constraint
}

// NewLayout returns a layout along dir with the given constraints
func NewLayout(dir Direction, constraints ...Constraint) Layout {
	return Layout{Direction: dir, Constraints: constraints}
}

// WithMargin returns a copy with a uniform margin
func (l Layout) WithMargin(margin int) Layout {
	l.Margin = margin
	return l
}

// Split partitions area, returning one Rect per constraint in order
func (l Layout) Split(area Rect) []Rect {
	if len(l.Constraints) == 0 {
		return nil
	}

	inner := area.Inner(l.Margin)
	extent := inner.Height
	if l.Direction == Horizontal {
		extent = inner.Width
	}
	if extent < 0 {
		extent = 0
	}

	sizes := make([]int, len(l.Constraints))
	remaining := extent
	absorber := len(l.Constraints) - 1
	for i, c := range l.Constraints {
		n := c.want(extent)
		if n > remaining {
			n = remaining
		}
		sizes[i] = n
		remaining -= n
		if c.Kind == KindMin {
			absorber = i
		}
	}
	sizes[absorber] += remaining

	rects := make([]Rect, len(sizes))
	offset := 0
	for i, n := range sizes {
		if l.Direction == Horizontal {
			rects[i] = Rect{X: inner.X + offset, Y: inner.Y, Width: n, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + offset, Width: inner.Width, Height: n}
		}
		offset += n
	}
	return rects
}

// Split is shorthand for NewLayout(dir, constraints...).Split(area)
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	return NewLayout(dir, constraints...).Split(area)
}
