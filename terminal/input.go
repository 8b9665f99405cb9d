package terminal

import (
	"sync"
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error, Err is set
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// IsRune reports whether the event is a key press of the printable character ch
func (e Event) IsRune(ch rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == ch
}

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
const escapeTimeout = 50 * time.Millisecond

// inputReader turns raw backend bytes into events on its own goroutine
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Pending bytes of an incomplete escape or UTF-8 sequence
	buf          []byte
	pendingSince time.Time
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

func (r *inputReader) start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.readLoop()
}

// stop signals the reader and waits briefly for it to exit
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
		// Reader stuck in a blocking read, proceed anyway
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
			}
			// Poll timeout: an escape prefix nothing completed is resolved and dropped
			if len(r.buf) > 0 && r.buf[0] == 0x1b && time.Since(r.pendingSince) >= escapeTimeout {
				if ev, ok := resolveEscape(r.buf); ok {
					r.sendEvent(ev)
				}
				r.buf = r.buf[:0]
			}
			continue
		}

		hadPending := len(r.buf) > 0
		r.buf = append(r.buf, data...)

		consumed := r.parseInput(r.buf)
		n := copy(r.buf, r.buf[consumed:])
		r.buf = r.buf[:n]

		if n > 0 && (consumed > 0 || !hadPending) {
			r.pendingSince = time.Now()
		}
	}
}

// resolveEscape maps an escape prefix that timed out to a key
// ESC alone is Escape, ESC [ and ESC O are Alt+'[' and Alt+'O'
func resolveEscape(buf []byte) (Event, bool) {
	switch {
	case len(buf) == 1:
		return Event{Type: EventKey, Key: KeyEscape}, true
	case len(buf) == 2 && (buf[1] == '[' || buf[1] == 'O'):
		return Event{Type: EventKey, Key: KeyRune, Rune: rune(buf[1]), Modifiers: ModAlt}, true
	}
	return Event{}, false
}

// parseInput emits events for complete sequences and returns bytes consumed
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	for i < len(data) {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= len(data) {
				return i
			}
			n, ev := parseEscape(data[i:])
			if n == 0 {
				return i
			}
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += n

		case b < 0x20:
			if k := ctrlKeys[b]; k != KeyNone {
				r.sendEvent(Event{Type: EventKey, Key: k})
			}
			i++

		case b == 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			ch, size := utf8.DecodeRune(data[i:])
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: ch})
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting with ESC, returns 0 when incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch next := data[1]; {
	case next == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case next == '[':
		return parseCSI(data)
	case next == 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		return 3, Event{Type: EventKey, Key: ss3Keys[data[2]]}
	case next < 0x20:
		return 2, Event{Type: EventKey, Key: ctrlKeys[next], Modifiers: ModAlt}
	case next < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(next), Modifiers: ModAlt}
	}
	// ESC followed by a non-ASCII byte, report the Escape and leave the rest
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses ESC [ params final; unknown sequences are consumed as KeyNone
func parseCSI(data []byte) (int, Event) {
	const maxCSI = 16
	for end := 2; end < len(data) && end < maxCSI; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if k, ok := csiKeys[string(data[2:end+1])]; ok {
				return end + 1, Event{Type: EventKey, Key: k.key, Modifiers: k.mod}
			}
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	if len(data) >= maxCSI {
		return maxCSI, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

// sendEvent is non-blocking, events are dropped when the consumer falls behind
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}
