package cli

import (
	"errors"
	"flag"
	"io"
	"log"

	"github.com/lixenwraith/panes/app"
	"github.com/lixenwraith/panes/session"
	"github.com/lixenwraith/panes/terminal/tui"
)

// openSession is replaced in tests
var openSession = Open

// Run parses args, opens the selected session and draws render until 'q'.
// Runtime errors are reported to stdout once the terminal is restored and
// still exit 0. Only invalid flags return a non-zero code.
func Run(name string, args []string, stdout, stderr io.Writer, render func(tui.Frame), loopOpts ...app.Option) int {
	opts, err := Parse(name, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		Report(stderr, err)
		return 2
	}

	if f := SetupLogging(opts.Debug, name); f != nil {
		defer f.Close()
	}

	s, err := openSession(opts)
	if err != nil {
		Report(stdout, err)
		return 0
	}

	err = session.Scope(s, func() error {
		return app.Run(s, render, loopOpts...)
	})
	if err != nil {
		log.Printf("%s: %v", name, err)
	}
	Report(stdout, err)
	return 0
}
