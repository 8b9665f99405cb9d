package terminal

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestInitEntersAltScreenAndFiniRestores(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerminal(b, ColorModeTrueColor)

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !b.inited {
		t.Error("Expected backend Init to be called")
	}
	if !strings.Contains(b.output(), string(csiAltScreenEnter)) {
		t.Error("Expected alternate screen enter sequence")
	}

	term.Fini()
	if !b.finied {
		t.Error("Expected backend Fini to be called")
	}
	out := b.output()
	if !strings.Contains(out, string(csiAltScreenExit)) {
		t.Error("Expected alternate screen exit sequence")
	}
	if !strings.Contains(out, string(csiCursorShow)) {
		t.Error("Expected cursor show sequence")
	}

	// Second Fini is a no-op
	b.reset()
	term.Fini()
	if b.output() != "" {
		t.Errorf("Expected no output from repeated Fini, got %q", b.output())
	}
}

func TestFlushAfterFiniReturnsErrClosed(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Flush(make([]Cell, 8), 4, 2); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed before Init, got %v", err)
	}

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	term.Fini()

	if err := term.Flush(make([]Cell, 8), 4, 2); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after Fini, got %v", err)
	}
}

func TestFlushWritesCells(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorModeTrueColor)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()
	b.reset()

	cells := make([]Cell, 8)
	cells[0] = Cell{Rune: 'h', Fg: RGBWhite, Bg: RGBBlue}
	cells[1] = Cell{Rune: 'i', Fg: RGBWhite, Bg: RGBBlue}
	if err := term.Flush(cells, 4, 2); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out := b.output()
	if !strings.Contains(out, "hi") {
		t.Errorf("Expected contiguous text 'hi' in output, got %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;238") {
		t.Errorf("Expected truecolor blue background, got %q", out)
	}
}

func TestFlushSurfacesWriteError(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	boom := errors.New("broken pipe")
	b.failWrites(boom)

	cells := make([]Cell, 8)
	cells[0] = Cell{Rune: 'x', Fg: RGBRed}
	if err := term.Flush(cells, 4, 2); !errors.Is(err, boom) {
		t.Errorf("Expected write error from Flush, got %v", err)
	}
}

func TestFlushDropsStaleFrame(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()
	b.reset()

	if err := term.Flush(make([]Cell, 9), 3, 3); err != nil {
		t.Errorf("Expected stale frame to be dropped without error, got %v", err)
	}
	if b.output() != "" {
		t.Errorf("Expected no output for stale frame, got %q", b.output())
	}
}

func TestPollEventTimeout(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	start := time.Now()
	if _, ok := term.PollEventTimeout(20 * time.Millisecond); ok {
		t.Fatal("Expected timeout with no input")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Expected poll to wait for the timeout, returned after %v", elapsed)
	}

	b.reads <- []byte("q")
	ev, ok := term.PollEventTimeout(time.Second)
	if !ok {
		t.Fatal("Expected event from backend input")
	}
	if !ev.IsRune('q') {
		t.Errorf("Expected q key, got %+v", ev)
	}
}

func TestPostEventDeliveredFirst(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	term.PostEvent(Event{Type: EventClosed})
	ev, ok := term.PollEventTimeout(time.Second)
	if !ok || ev.Type != EventClosed {
		t.Errorf("Expected posted EventClosed, got %+v ok=%v", ev, ok)
	}
}

func TestPendingEscapePrefixDoesNotSwallowNextKey(t *testing.T) {
	for _, prefix := range []string{"\x1b[", "\x1bO"} {
		b := newFakeBackend(4, 2)
		term := newTerminal(b, ColorMode256)
		if err := term.Init(); err != nil {
			t.Fatalf("Init failed: %v", err)
		}

		b.reads <- []byte(prefix)
		ev, ok := term.PollEventTimeout(time.Second)
		if !ok || !ev.IsRune(rune(prefix[1])) || ev.Modifiers != ModAlt {
			t.Errorf("%q: expected Alt+%c after the escape timeout, got %+v ok=%v", prefix, prefix[1], ev, ok)
		}

		b.reads <- []byte("q")
		ev, ok = term.PollEventTimeout(time.Second)
		if !ok || !ev.IsRune('q') {
			t.Errorf("%q: expected q delivered after the prefix, got %+v ok=%v", prefix, ev, ok)
		}
		term.Fini()
	}
}

func TestStalePartialCSIDropped(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerminal(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	b.reads <- []byte("\x1b[1;")
	time.Sleep(2 * escapeTimeout)
	b.reads <- []byte("q")

	ev, ok := term.PollEventTimeout(time.Second)
	if !ok || !ev.IsRune('q') {
		t.Errorf("Expected q after a stale partial sequence, got %+v ok=%v", ev, ok)
	}
}
