package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// progressWidth sizes the bar to a third of the terminal, falling back to a
// fixed width when w is not a terminal.
func progressWidth(w io.Writer) int {
	const fallback = 40
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return max(10, min(width/3, 60))
}
