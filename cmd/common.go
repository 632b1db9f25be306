package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/illarion/ignoresync/internal/core"
)

// openSync constructs the core instance for the current directory
func openSync() *core.IgnoreSync {
	s, err := core.New(".")
	if err != nil {
		HandleError(err)
	}
	return s
}

// HandleError handles common errors consistently
func HandleError(err error) {
	switch {
	case errors.Is(err, core.ErrNotARepo):
		fmt.Fprintf(os.Stderr, "Error: not a git repository (no .git directory found)\n")
		fmt.Fprintf(os.Stderr, "Run ignoresync from the repository root\n")
	case errors.Is(err, core.ErrNoHistory):
		fmt.Fprintf(os.Stderr, "Error: no recorded sync runs\n")
		fmt.Fprintf(os.Stderr, "Run 'ignoresync sync' first\n")
	case errors.Is(err, core.ErrIgnoreFileChanged):
		fmt.Fprintf(os.Stderr, "Error: the ignore file changed since the last sync\n")
		fmt.Fprintf(os.Stderr, "Undo refuses to guess; edit the file by hand instead\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}

// Confirm asks a [Y/n] question when stdin is a terminal. Without a
// terminal it answers yes, so scripted invocations run unattended.
// Default is yes; only an explicit 'n' or 'no' cancels.
func Confirm(prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}

	fmt.Printf("%s [Y/n]: ", prompt)

	var response string
	fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))

	return response != "n" && response != "no"
}
