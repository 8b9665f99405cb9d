// Command message draws a bordered full-screen block with a short paragraph.
// Press q to quit.
package main

import (
	"os"

	"github.com/lixenwraith/panes/cli"
	"github.com/lixenwraith/panes/screens"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			cli.HandleCrash(r)
		}
	}()

	os.Exit(cli.Run("message", os.Args[1:], os.Stdout, os.Stderr, screens.Message))
}
