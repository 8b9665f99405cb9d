package screens

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// KeyLog keeps the most recent input events for the key inspector screen
type KeyLog struct {
	max     int
	entries []string
	total   int
}

// NewKeyLog returns a log holding at most max entries
func NewKeyLog(limit int) *KeyLog {
	if limit < 1 {
		limit = 1
	}
	return &KeyLog{max: limit, entries: make([]string, 0, limit)}
}

// Record appends a description of ev, dropping the oldest entry when full
func (k *KeyLog) Record(ev terminal.Event) {
	if len(k.entries) >= k.max {
		copy(k.entries, k.entries[1:])
		k.entries = k.entries[:k.max-1]
	}
	k.entries = append(k.entries, FormatEvent(ev))
	k.total++
}

// Entries returns the recorded descriptions, oldest first
func (k *KeyLog) Entries() []string {
	return k.entries
}

// Render draws a title bar, the newest entries at the bottom of the log area and a status line
func (k *KeyLog) Render(f tui.Frame) {
	area := f.Size()
	rows := tui.Split(area, tui.Vertical, tui.Length(1), tui.Min(1), tui.Length(1))

	title := tui.Style{Bg: terminal.RGB{R: 40, G: 40, B: 60}, Attr: terminal.AttrBold}
	f.RenderWidget(tui.Block{Title: "Key Inspector - press keys, q quits", Style: title}, rows[0])

	body := rows[1]
	visible := k.entries
	if len(visible) > body.Height {
		visible = visible[len(visible)-body.Height:]
	}
	f.RenderWidget(tui.Paragraph{
		Text:  strings.Join(visible, "\n"),
		Style: tui.Style{Fg: terminal.RGB{R: 180, G: 180, B: 180}},
	}, tui.Rect{X: body.X + 1, Y: body.Y, Width: max(body.Width-1, 0), Height: body.Height})

	status := fmt.Sprintf("Size: %dx%d | Events: %d", area.Width, area.Height, k.total)
	f.RenderWidget(tui.Paragraph{
		Text:  status,
		Style: tui.Style{Fg: terminal.RGB{R: 140, G: 140, B: 160}},
	}, rows[2])
}

// FormatEvent describes an event on one line
func FormatEvent(ev terminal.Event) string {
	switch ev.Type {
	case terminal.EventResize:
		return fmt.Sprintf("RESIZE: %dx%d", ev.Width, ev.Height)
	case terminal.EventError:
		return fmt.Sprintf("ERROR: %v", ev.Err)
	case terminal.EventClosed:
		return "CLOSED"
	}

	var mods string
	if ev.Modifiers&terminal.ModShift != 0 {
		mods += "Shift+"
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods += "Alt+"
	}
	// Ctrl letter keys already carry the prefix in their name
	if ev.Modifiers&terminal.ModCtrl != 0 && (ev.Key < terminal.KeyCtrlA || ev.Key > terminal.KeyCtrlSpace) {
		mods += "Ctrl+"
	}

	name := ev.Key.String()
	if ev.Key == terminal.KeyRune {
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			name = fmt.Sprintf("'%c'", ev.Rune)
		} else {
			name = fmt.Sprintf("U+%04X", ev.Rune)
		}
	}
	return "KEY: " + mods + name
}
