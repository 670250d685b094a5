// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive
// terminals. The wizard and the TUI progress monitor refuse to start
// when this returns false.
func IsInteractive() bool {
	return IsTerminalFile(os.Stdin) && IsTerminalFile(os.Stdout)
}

// IsTerminalFile reports whether f is attached to a terminal.
func IsTerminalFile(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
