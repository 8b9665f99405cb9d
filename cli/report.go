package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/panes/session"
)

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// Report prints err after the terminal has been restored, nil prints nothing
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %+v\n", errorLabel.Render("error:"), err)
	if session.IsEnterFailure(err) {
		fmt.Fprintln(w, hintStyle.Render("run from an interactive terminal, or try -backend tcell"))
	}
}
