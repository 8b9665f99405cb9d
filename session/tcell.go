package session

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// Tcell is a Session backed by a tcell.Screen
type Tcell struct {
	screen tcell.Screen
	theme  tui.Theme
	cells  []terminal.Cell

	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup

	entered bool
	exited  bool
}

// NewTcell wraps screen, which must not be initialized yet
func NewTcell(screen tcell.Screen, theme tui.Theme) *Tcell {
	return &Tcell{screen: screen, theme: theme}
}

// OpenTcell creates the platform tcell screen
func OpenTcell(theme tui.Theme) (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &IOError{Op: OpEnter, Err: err}
	}
	return NewTcell(screen, theme), nil
}

func (t *Tcell) Enter() error {
	if t.exited {
		return &IOError{Op: OpEnter, Err: terminal.ErrClosed}
	}
	if t.entered {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return &IOError{Op: OpEnter, Err: err}
	}
	t.screen.HideCursor()
	t.entered = true

	t.events = make(chan tcell.Event, 100)
	t.done = make(chan struct{})
	t.wg.Add(1)
	go t.pump()

	w, h := t.screen.Size()
	log.Printf("session: tcell entered %dx%d colors=%d", w, h, t.screen.Colors())
	return nil
}

// pump forwards screen events until the screen stops or Exit is called
func (t *Tcell) pump() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Tcell) Draw(render func(tui.Frame)) error {
	if !t.entered || t.exited {
		return &IOError{Op: OpDraw, Err: terminal.ErrClosed}
	}
	w, h := t.screen.Size()
	t.cells = fillBuffer(t.cells, w, h, t.theme)
	frame := tui.NewFrame(t.cells, w, h)
	render(frame)

	cells := frame.Cells()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			c := cells[row+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, cellStyle(c))
		}
	}
	t.screen.Show()
	return nil
}

func (t *Tcell) PollInput(timeout time.Duration) (terminal.Event, bool, error) {
	if !t.entered || t.exited {
		return terminal.Event{}, false, &IOError{Op: OpPoll, Err: terminal.ErrClosed}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-t.events:
			if out, ok := convertEvent(ev); ok {
				if out.Type == terminal.EventResize {
					t.screen.Sync()
				}
				return out, true, nil
			}
			// Mouse, paste and focus events are ignored within the same wait
		case <-timer.C:
			return terminal.Event{}, false, nil
		}
	}
}

func (t *Tcell) Exit() error {
	if !t.entered || t.exited {
		t.exited = true
		return nil
	}
	t.exited = true
	close(t.done)
	// Fini makes PollEvent return nil, releasing the pump
	t.screen.Fini()
	t.wg.Wait()
	log.Printf("session: tcell exited")
	return nil
}

// cellStyle converts a cell's colors and attributes to a tcell style
func cellStyle(c terminal.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgbColor(c.Fg)).
		Background(rgbColor(c.Bg)).
		Bold(c.Attrs&terminal.AttrBold != 0).
		Dim(c.Attrs&terminal.AttrDim != 0).
		Italic(c.Attrs&terminal.AttrItalic != 0).
		Underline(c.Attrs&terminal.AttrUnderline != 0).
		Blink(c.Attrs&terminal.AttrBlink != 0).
		Reverse(c.Attrs&terminal.AttrReverse != 0)
}

func rgbColor(c terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tcellKeys maps tcell special keys to terminal keys
var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:     terminal.KeyEnter,
	tcell.KeyTab:       terminal.KeyTab,
	tcell.KeyBacktab:   terminal.KeyBacktab,
	tcell.KeyBackspace: terminal.KeyBackspace,
	tcell.KeyEscape:    terminal.KeyEscape,
	tcell.KeyDelete:    terminal.KeyDelete,
	tcell.KeyUp:        terminal.KeyUp,
	tcell.KeyDown:      terminal.KeyDown,
	tcell.KeyLeft:      terminal.KeyLeft,
	tcell.KeyRight:     terminal.KeyRight,
	tcell.KeyHome:      terminal.KeyHome,
	tcell.KeyEnd:       terminal.KeyEnd,
	tcell.KeyPgUp:      terminal.KeyPageUp,
	tcell.KeyPgDn:      terminal.KeyPageDown,
	tcell.KeyInsert:    terminal.KeyInsert,
}

// convertEvent maps key and resize events, ok is false for anything else
func convertEvent(ev tcell.Event) (terminal.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		out := terminal.Event{Type: terminal.EventKey, Modifiers: convertMods(ev.Modifiers())}
		switch k := ev.Key(); {
		case k == tcell.KeyRune:
			out.Key = terminal.KeyRune
			out.Rune = ev.Rune()
		case tcellKeys[k] != terminal.KeyNone:
			out.Key = tcellKeys[k]
		case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
			// Named Ctrl keys sit at '@'..'_', offset 64 from their control byte
			out.Key = terminal.CtrlKey(byte(k - tcell.KeyCtrlSpace))
		case k >= 0 && k < 0x20:
			out.Key = terminal.CtrlKey(byte(k))
		default:
			out.Key = terminal.KeyNone
		}
		return out, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}, true
	}
	return terminal.Event{}, false
}

func convertMods(m tcell.ModMask) terminal.Modifier {
	var out terminal.Modifier
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		out |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	return out
}
