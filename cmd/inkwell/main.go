package main

import (
	"errors"
	"os"

	"github.com/inkwellcms/inkwell/internal/cli"
	"github.com/inkwellcms/inkwell/internal/output"
)

// main is the only place allowed to terminate the process. Commands
// report outcomes as errors; exit codes are decided here.
func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	var silent *cli.SilentExit
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	output.NewPrinter(os.Stdout, os.Stderr, true).Errorf("%v", err)
	os.Exit(1)
}
