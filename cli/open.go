package cli

import (
	"log"

	"github.com/lixenwraith/panes/session"
	"github.com/lixenwraith/panes/terminal"
	"github.com/lixenwraith/panes/terminal/tui"
)

// Open builds the session selected by opts without entering it
func Open(opts Options) (session.Session, error) {
	switch opts.Backend {
	case BackendTcell:
		log.Printf("cli: opening tcell session")
		return session.OpenTcell(tui.DefaultTheme)
	default:
		mode := opts.ColorMode()
		log.Printf("cli: opening ansi session, color %s", mode)
		return session.NewANSI(terminal.New(mode), tui.DefaultTheme), nil
	}
}
