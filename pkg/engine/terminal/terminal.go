// Package terminal reports on and clears the terminal behind a writer.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

const clearSequence = "\033[H\033[2J"

func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	return ok && term.IsTerminal(n)
}

// SizeOf returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal or the size cannot be determined.
func SizeOf(w io.Writer) (width, height int) {
	n, ok := fd(w)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(n)
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Clear clears the screen and homes the cursor. Writers that are not
// terminals are left untouched.
func Clear(w io.Writer) {
	if IsTerminal(w) {
		io.WriteString(w, clearSequence)
	}
}
