package terminal

import (
	"bufio"
	"strconv"
)

// Pre-allocated ANSI sequences
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM off keeps the bottom-right cell from scrolling the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative decimal without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	var buf [20]byte
	w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
