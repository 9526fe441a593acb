package cli

import "fmt"

// SilentExit asks the process boundary to exit with the given code
// without printing anything. Everything worth printing has already been
// printed by the command that returns it.
type SilentExit struct {
	Code int
}

func (e *SilentExit) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
