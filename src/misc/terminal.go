package misc

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// IsInteractive reports whether file is attached to a terminal.
func IsInteractive(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the column count of file, or fallback when file is
// not a terminal or the size cannot be read.
func TerminalWidth(file *os.File, fallback int) int {
	if fallback <= 0 {
		fallback = defaultTerminalWidth
	}
	if !IsInteractive(file) {
		return fallback
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
