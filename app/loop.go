// Package app runs the draw loop shared by the example programs.
package app

import (
	"log"
	"time"

	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// DefaultPollTimeout bounds how long one iteration waits for input
const DefaultPollTimeout = 250 * time.Millisecond

// DefaultQuitRune ends the loop when typed
const DefaultQuitRune = 'q'

// Surface is what the loop needs from a terminal session
type Surface interface {
	Draw(render func(tui.Frame)) error
	PollInput(timeout time.Duration) (ev terminal.Event, ok bool, err error)
}

// State of a Loop
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "Terminated"
	}
	return "Running"
}

// Option configures a Loop
type Option func(*Loop)

// WithPollTimeout overrides DefaultPollTimeout
func WithPollTimeout(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.pollTimeout = d
		}
	}
}

// WithQuitRune overrides DefaultQuitRune
func WithQuitRune(r rune) Option {
	return func(l *Loop) {
		l.quit = r
	}
}

// WithEventHandler calls fn with every polled event other than the quit rune
func WithEventHandler(fn func(terminal.Event)) Option {
	return func(l *Loop) {
		l.onEvent = fn
	}
}

// Loop alternates draw and a bounded input poll until the quit key or an error
type Loop struct {
	surface     Surface
	render      func(tui.Frame)
	pollTimeout time.Duration
	quit        rune
	onEvent     func(terminal.Event)

	state  State
	frames int
}

// NewLoop creates a loop drawing render onto s
func NewLoop(s Surface, render func(tui.Frame), opts ...Option) *Loop {
	l := &Loop{
		surface:     s,
		render:      render,
		pollTimeout: DefaultPollTimeout,
		quit:        DefaultQuitRune,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run iterates until the quit rune arrives (nil) or Draw/PollInput fails
// Errors are returned unchanged. Run on a terminated loop returns nil
func (l *Loop) Run() error {
	for l.state == StateRunning {
		if err := l.surface.Draw(l.render); err != nil {
			return l.terminate(err)
		}
		l.frames++

		ev, ok, err := l.surface.PollInput(l.pollTimeout)
		if err != nil {
			return l.terminate(err)
		}
		if !ok {
			continue
		}
		if ev.IsRune(l.quit) {
			return l.terminate(nil)
		}
		if l.onEvent != nil {
			l.onEvent(ev)
		}
	}
	return nil
}

func (l *Loop) terminate(err error) error {
	l.state = StateTerminated
	if err != nil {
		log.Printf("app: loop terminated after %d frames: %v", l.frames, err)
	} else {
		log.Printf("app: loop terminated after %d frames", l.frames)
	}
	return err
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed draws
func (l *Loop) Frames() int {
	return l.frames
}

// Run draws render onto s until 'q' is pressed or an I/O error occurs
func Run(s Surface, render func(tui.Frame), opts ...Option) error {
	return NewLoop(s, render, opts...).Run()
}
