// Command keys shows the events decoded from terminal input, newest last.
// Press q to quit.
package main

import (
	"os"

	"github.com/lixenwraith/panes/app"
	"github.com/lixenwraith/panes/cli"
	"github.com/lixenwraith/panes/screens"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			cli.HandleCrash(r)
		}
	}()

	keys := screens.NewKeyLog(64)
	os.Exit(cli.Run("keys", os.Args[1:], os.Stdout, os.Stderr, keys.Render, app.WithEventHandler(keys.Record)))
}
