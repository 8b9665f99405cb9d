// Package session owns the terminal for the lifetime of a program run.
//
// A Session enters raw mode and the alternate screen, draws frames, polls
// input with a bounded wait and restores the terminal on Exit. Scope ties
// Enter and Exit together so the terminal is released on every path out.
package session

import (
	"errors"
	"time"

	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// Operation names carried by IOError
const (
	OpEnter = "enter"
	OpDraw  = "draw"
	OpPoll  = "poll"
	OpExit  = "exit"
)

// Session is an exclusive handle on the terminal
type Session interface {
	// Enter switches the terminal to raw mode and the alternate screen
	Enter() error

	// Draw hands render a frame of the current terminal size, then presents it
	Draw(render func(tui.Frame)) error

	// PollInput waits at most timeout for one event, ok is false on timeout
	PollInput(timeout time.Duration) (ev terminal.Event, ok bool, err error)

	// Exit restores the terminal. Safe to call more than once
	Exit() error
}

// IOError reports a failed terminal operation
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "terminal " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsEnterFailure reports whether err came from acquiring the terminal
func IsEnterFailure(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && ioErr.Op == OpEnter
}

// Scope enters s, runs fn and exits s on every path, including a panic in fn
// When both fn and Exit fail the errors are joined, fn's first
func Scope(s Session, fn func() error) (err error) {
	if err := s.Enter(); err != nil {
		return err
	}
	defer func() {
		if exitErr := s.Exit(); exitErr != nil {
			err = errors.Join(err, exitErr)
		}
	}()
	return fn()
}

// fillBuffer resizes buf to w*h and clears it to theme colors
func fillBuffer(buf []terminal.Cell, w, h int, theme tui.Theme) []terminal.Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	size := w * h
	if cap(buf) < size {
		buf = make([]terminal.Cell, size)
	} else {
		buf = buf[:size]
	}
	blank := terminal.Cell{Rune: ' ', Fg: theme.Fg, Bg: theme.Bg}
	for i := range buf {
		buf[i] = blank
	}
	return buf
}
