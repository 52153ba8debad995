package terminal

import (
	"os"

	"golang.org/x/term"
)

// CheckTTY fails with ErrNotTerminal unless both in and out are interactive terminals
func CheckTTY(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}
	return nil
}
