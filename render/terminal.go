// Package render formats command output for the terminal.
package render

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DefaultWidth is used when output is not a terminal.
const DefaultWidth = 100

// TerminalSize returns the dimensions of the terminal attached to f.
func TerminalSize(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	return err == nil
}

// Width returns the usable output width for f.
func Width(f *os.File) int {
	if w, _, err := TerminalSize(f); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
