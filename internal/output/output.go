// Package output renders command results: plain lines, success and
// error messages, and tables. Colors are applied only when the target
// is a terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Printer writes command output to the configured streams.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	colored bool
}

// NewPrinter creates a printer over the given streams. Color is enabled
// only when requested and the output stream is a terminal.
func NewPrinter(out, errOut io.Writer, color bool) *Printer {
	return &Printer{
		out:     out,
		errOut:  errOut,
		colored: color && isTerminal(out),
	}
}

// Out returns the standard output stream.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Line prints a plain line to standard output.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf prints a success message to standard output.
func (p *Printer) Successf(format string, args ...interface{}) {
	prefix := "Success:"
	if p.colored {
		prefix = Success.Render(prefix)
	}
	fmt.Fprintf(p.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Warningf prints a warning message to the error stream.
func (p *Printer) Warningf(format string, args ...interface{}) {
	prefix := "Warning:"
	if p.colored {
		prefix = Warning.Render(prefix)
	}
	fmt.Fprintf(p.errOut, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Errorf prints an error message to the error stream. It does not
// terminate anything; exiting is the caller's decision.
func (p *Printer) Errorf(format string, args ...interface{}) {
	prefix := "Error:"
	if p.colored {
		prefix = Error.Render(prefix)
	}
	fmt.Fprintf(p.errOut, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Headerf prints a styled header line to standard output.
func (p *Printer) Headerf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if p.colored {
		line = Header.Render(line)
	}
	fmt.Fprintln(p.out, line)
}

// StyledStatus returns the status string, colored when enabled.
func (p *Printer) StyledStatus(status string) string {
	if !p.colored {
		return status
	}
	return StyleStatus(status)
}

// isTerminal reports whether w is a terminal, honoring NO_COLOR.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
