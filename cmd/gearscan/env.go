package main

import (
	"os"

	"github.com/phyten/gearscan/internal/termcolor"
	"github.com/phyten/gearscan/internal/util"
)

// runEnv is the slice of the process environment the commands depend on.
type runEnv struct {
	getenv      func(string) string
	environ     []string
	cwd         string
	stdoutTTY   bool
	interactive bool // stdout and stderr are both terminals
}

func hostEnv() runEnv {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return runEnv{
		getenv:      os.Getenv,
		environ:     os.Environ(),
		cwd:         cwd,
		stdoutTTY:   termcolor.IsTerminal(os.Stdout),
		interactive: util.Interactive(),
	}
}
