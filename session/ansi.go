package session

import (
	"log"
	"time"

	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// ANSI is a Session drawing through the direct ANSI terminal package
type ANSI struct {
	term  terminal.Terminal
	theme tui.Theme
	cells []terminal.Cell

	entered bool
	exited  bool
}

// NewANSI wraps t, frames start cleared to theme
func NewANSI(t terminal.Terminal, theme tui.Theme) *ANSI {
	return &ANSI{term: t, theme: theme}
}

func (a *ANSI) Enter() error {
	if a.exited {
		return &IOError{Op: OpEnter, Err: terminal.ErrClosed}
	}
	if a.entered {
		return nil
	}
	if err := a.term.Init(); err != nil {
		return &IOError{Op: OpEnter, Err: err}
	}
	a.entered = true
	w, h := a.term.Size()
	log.Printf("session: ansi entered %dx%d %s", w, h, a.term.ColorMode())
	return nil
}

func (a *ANSI) Draw(render func(tui.Frame)) error {
	if !a.entered || a.exited {
		return &IOError{Op: OpDraw, Err: terminal.ErrClosed}
	}
	w, h := a.term.Size()
	a.cells = fillBuffer(a.cells, w, h, a.theme)
	frame := tui.NewFrame(a.cells, w, h)
	render(frame)
	if err := a.term.Flush(frame.Cells(), w, h); err != nil {
		return &IOError{Op: OpDraw, Err: err}
	}
	return nil
}

func (a *ANSI) PollInput(timeout time.Duration) (terminal.Event, bool, error) {
	if !a.entered || a.exited {
		return terminal.Event{}, false, &IOError{Op: OpPoll, Err: terminal.ErrClosed}
	}
	ev, ok := a.term.PollEventTimeout(timeout)
	if !ok {
		return terminal.Event{}, false, nil
	}
	switch ev.Type {
	case terminal.EventError:
		return ev, true, &IOError{Op: OpPoll, Err: ev.Err}
	case terminal.EventClosed:
		return ev, true, &IOError{Op: OpPoll, Err: terminal.ErrClosed}
	case terminal.EventResize:
		log.Printf("session: resize %dx%d", ev.Width, ev.Height)
		a.term.Sync()
	}
	return ev, true, nil
}

func (a *ANSI) Exit() error {
	if !a.entered || a.exited {
		a.exited = true
		return nil
	}
	a.exited = true
	a.term.Fini()
	log.Printf("session: ansi exited")
	return nil
}
