package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// ErrClosed is returned by Flush after Fini
var ErrClosed = errors.New("terminal closed")

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the color capability used for output
	ColorMode() ColorMode

	// Flush writes a row-major cell buffer (cells[y*width+x]) to the terminal
	Flush(cells []Cell, width, height int) error

	// Sync forces full redraw on next Flush
	Sync()

	// PollEventTimeout waits at most timeout for an event, ok is false on timeout
	PollEventTimeout(timeout time.Duration) (ev Event, ok bool)

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

type resizeEvent struct {
	width, height int
}

// termImpl implements Terminal on top of a Backend
type termImpl struct {
	backend Backend

	output      *outputBuffer
	input       *inputReader
	resizeCh    chan resizeEvent
	syntheticCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout, color mode is detected when omitted
func New(colorMode ...ColorMode) Terminal {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return newTerminal(newBackend(), c)
}

func newTerminal(b Backend, c ColorMode) *termImpl {
	return &termImpl{
		backend:     b,
		output:      newOutputBuffer(backendWriter{b}, c),
		input:       newInputReader(b),
		syntheticCh: make(chan Event, 16),
		resizeCh:    make(chan resizeEvent, 1),
	}
}

// backendWriter adapts Backend.Write to io.Writer
type backendWriter struct{ b Backend }

func (w backendWriter) Write(p []byte) (int, error) { return w.b.Write(p) }

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	t.output.resize(w, h)

	t.backend.SetResizeHandler(func(w, h int) {
		// Keep only the latest size pending
		select {
		case <-t.resizeCh:
		default:
		}
		select {
		case t.resizeCh <- resizeEvent{w, h}:
		default:
		}
	})

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	t.writeRaw(csiAutoWrapOff)
	if err := t.output.clear(RGBBlack); err != nil {
		t.restore()
		return err
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()
	t.restore()
	t.finalized = true
}

// restore leaves the alternate screen and raw mode
func (t *termImpl) restore() {
	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable wrap after leaving the alternate screen so the main buffer keeps it
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)
	t.backend.Fini()
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush holds the lock for the whole write to avoid racing Sync
func (t *termImpl) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return ErrClosed
	}

	// Drop frames rendered for a stale size, the next frame uses the new one
	currW, currH := t.backend.Size()
	if currW != width || currH != height {
		return nil
	}

	return t.output.flush(cells, width, height)
}

func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.output.forceFullRedraw()
}

func (t *termImpl) PollEventTimeout(timeout time.Duration) (Event, bool) {
	select {
	case ev := <-t.syntheticCh:
		return ev, true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.syntheticCh:
		return ev, true
	case ev := <-t.input.events():
		return ev, true
	case re := <-t.resizeCh:
		return Event{Type: EventResize, Width: re.width, Height: re.height}, true
	case <-timer.C:
		return Event{}, false
	}
}

func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
