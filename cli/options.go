// Package cli holds the process plumbing shared by the example binaries:
// flag parsing, debug logging, crash recovery and error reporting.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/panes/terminal"
)

// Backend names accepted by -backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Options are the command-line settings of an example binary
type Options struct {
	Backend string
	Color   string
	Debug   bool
}

// Parse reads flags from args, usage and errors go to output
func Parse(name string, args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Backend, "backend", BackendANSI, "Terminal backend: ansi, tcell")
	fs.StringVar(&opts.Color, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&opts.Debug, "debug", false, "Write a debug log under "+logDir+"/")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch opts.Backend {
	case BackendANSI, BackendTcell:
	default:
		return opts, fmt.Errorf("unknown backend %q (want %s or %s)", opts.Backend, BackendANSI, BackendTcell)
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// ColorMode resolves the -color value, "auto" detects from the environment
func (o Options) ColorMode() terminal.ColorMode {
	return terminal.ParseColorMode(o.Color)
}
