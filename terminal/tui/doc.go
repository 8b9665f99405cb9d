// Package tui provides immediate-mode TUI primitives for the terminal package.
//
// Core abstractions:
//   - Rect and Layout: a pure constraint solver that splits a rectangle into
//     ordered, edge-to-edge segments (Percentage, Length, Min)
//   - Region: a clipped view into a cell buffer that all drawing goes through
//   - Frame: the surface a render function receives for one draw call
//   - Widget: Block (panel with borders and title) and Paragraph
//
// Usage pattern:
//
//	frame := tui.NewBlankFrame(w, h, tui.DefaultTheme)
//	cols := tui.Split(frame.Size(), tui.Horizontal, tui.Percentage(30), tui.Percentage(70))
//	frame.RenderWidget(tui.Block{Title: "left", Borders: tui.BorderAll}, cols[0])
//	term.Flush(frame.Cells(), w, h)
package tui
