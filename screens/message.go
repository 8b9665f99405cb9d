package screens

import "github.com/lixenwraith/panes/terminal/tui"

// MessageText is the paragraph shown by Message
const MessageText = "Hello World\nSome text\nEven more text"

// MessageLayout returns the text and footer chunks inside the bordered block
func MessageLayout(area tui.Rect) []tui.Rect {
	return tui.NewLayout(tui.Vertical, tui.Min(1), tui.Length(2)).
		WithMargin(1).
		Split(area)
}

// Message draws a full-screen bordered block with a paragraph in its upper chunk
func Message(f tui.Frame) {
	area := f.Size()
	f.RenderWidget(tui.Block{Title: "Border", Borders: tui.BorderAll}, area)

	chunks := MessageLayout(area)
	f.RenderWidget(tui.Paragraph{Text: MessageText}, chunks[0])
}
