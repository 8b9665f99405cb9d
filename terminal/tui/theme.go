package tui

import "github.com/lixenwraith/panes/terminal"

// Theme defines the colors a frame starts from
type Theme struct {
	Bg terminal.RGB
	Fg terminal.RGB
}

// DefaultTheme is a neutral dark background with light text
var DefaultTheme = Theme{
	Bg: terminal.RGB{R: 20, G: 20, B: 30},
	Fg: terminal.RGB{R: 200, G: 200, B: 200},
}
