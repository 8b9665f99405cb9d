package terminal

import (
	"bufio"
	"io"
)

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Last emitted style, for coalescing SGR sequences
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 64*1024),
		colorMode: colorMode,
	}
}

// resize reallocates the front buffer and forces a full redraw
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.forceFullRedraw()
}

// cellEqual compares two cells; a zero rune is a cleared cell and ignores Fg
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes cells that differ from the front buffer and returns the write error
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return nil
	}

	w := o.writer
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			if cellEqual(c, o.front[row+x]) {
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				writeCursorPos(w, x, y)
				o.cursorX, o.cursorY = x, y
				o.cursorValid = true
			}

			o.writeStyle(w, c.Fg, c.Bg, c.Attrs)
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			w.WriteRune(ch)

			o.front[row+x] = c
			o.cursorX++
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false
	return w.Flush()
}

// writeStyle emits one combined SGR sequence when the style differs from the last one
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg RGB, attr Attr) {
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	for _, a := range sgrAttrs {
		if attr&a.attr != 0 {
			w.WriteByte(';')
			w.WriteByte(a.code)
		}
	}
	o.writeColor(w, 38, fg)
	o.writeColor(w, 48, bg)
	w.WriteByte('m')

	o.lastFg, o.lastBg, o.lastAttr = fg, bg, attr
	o.lastValid = true
}

// sgrAttrs pairs attribute bits with their SGR parameter
var sgrAttrs = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
}

// writeColor writes ";38;2;R;G;B" or ";38;5;N" (base 48 for background)
func (o *outputBuffer) writeColor(w *bufio.Writer, base int, c RGB) {
	w.WriteByte(';')
	writeInt(w, base)
	if o.colorMode == ColorModeTrueColor {
		w.WriteString(";2;")
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.WriteString(";5;")
	writeInt(w, int(RGBTo256(c)))
}

// forceFullRedraw invalidates the front buffer
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear paints the whole screen with bg
func (o *outputBuffer) clear(bg RGB) error {
	w := o.writer
	w.Write(csi)
	w.WriteByte('0')
	o.writeColor(w, 48, bg)
	w.WriteByte('m')
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
	return w.Flush()
}
