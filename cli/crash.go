package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/panes/terminal"
)

// HandleCrash resets the terminal, prints the panic with a stack trace and exits
// Use from a deferred recover in main
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n%s %v\r\n", errorLabel.Render("crash:"), r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}
