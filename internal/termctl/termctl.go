// Package termctl scopes terminal state changes for an interactive session:
// cursor visibility, raw input mode, and the width query. Whatever happens
// inside the session, Release puts the terminal back.
package termctl

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\r\x1b[2K"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// Guard owns the terminal state for one session. Acquire at session start,
// Release on every exit path; Release is idempotent.
type Guard struct {
	in       *os.File
	out      io.Writer
	rawState *term.State
	acquired bool
	released bool
}

// NewGuard builds a guard over the given input file (raw mode target) and
// output writer (cursor control target).
func NewGuard(in *os.File, out io.Writer) *Guard {
	return &Guard{in: in, out: out}
}

// Acquire hides the cursor and, when raw is set, puts the input into raw
// mode. If raw mode cannot be enabled the cursor is restored before the
// error is returned, so a failed acquire never leaves the terminal dark.
func (g *Guard) Acquire(raw bool) error {
	fmt.Fprint(g.out, hideCursor)
	g.acquired = true

	if raw {
		st, err := term.MakeRaw(int(g.in.Fd()))
		if err != nil {
			fmt.Fprint(g.out, showCursor)
			g.acquired = false
			return fmt.Errorf("enable raw terminal mode: %w", err)
		}
		g.rawState = st
	}
	return nil
}

// Release undoes everything Acquire did and clears the progress line.
// Calling it again, or without a successful Acquire, does nothing.
func (g *Guard) Release() {
	if g.released || !g.acquired {
		return
	}
	g.released = true

	if g.rawState != nil {
		_ = term.Restore(int(g.in.Fd()), g.rawState)
		g.rawState = nil
	}
	fmt.Fprint(g.out, clearLine+showCursor)
}

// Width reports the terminal column count, best effort.
func (g *Guard) Width() int {
	w, _, err := term.GetSize(int(g.in.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
