// Command panels draws four colored, titled blocks in a 30/70 column layout.
// Press q to quit.
package main

import (
	"os"

	"github.com/lixenwraith/panes/cli"
	"github.com/lixenwraith/panes/screens"
)

func main() {
	// Restore the terminal even if rendering panics
	defer func() {
		if r := recover(); r != nil {
			cli.HandleCrash(r)
		}
	}()

	os.Exit(cli.Run("panels", os.Args[1:], os.Stdout, os.Stderr, screens.Panels))
}
