// seehuhn.de/go/glyphsvg - export font glyphs as SVG files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package progress shows the progress of an export run on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	minBar = 10
	maxBar = 40
)

// Bar prints progress messages.  On a terminal, a single status line with a
// progress bar is redrawn in place.  Otherwise, one line per update is
// printed.
//
// Bar also implements io.Writer, so that log output can be sent through
// it.  Written text appears above the status line.
type Bar struct {
	mu    sync.Mutex
	w     io.Writer
	tty   bool
	width int

	line string // currently displayed status line, if any
}

// New returns a Bar which writes to f.  If f is a terminal, its width
// determines the length of the bar.
func New(f *os.File) *Bar {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return NewWriter(f, 0, false)
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 80
	}
	return NewWriter(f, width, true)
}

// NewWriter returns a Bar which writes to w.  If tty is true, w is assumed
// to be a terminal which is width columns wide.
func NewWriter(w io.Writer, width int, tty bool) *Bar {
	return &Bar{w: w, tty: tty, width: width}
}

// Update shows that msg describes step current of total.
func (b *Bar) Update(current, total int, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.tty {
		fmt.Fprintln(b.w, msg)
		return
	}
	b.line = b.render(current, total, msg)
	b.draw()
}

func (b *Bar) render(current, total int, msg string) string {
	n := min(max(b.width-utf8.RuneCountInString(msg)-4, minBar), maxBar)
	filled := n
	if total > 0 {
		filled = min(n*current/total, n)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", n-filled) + "] " + msg
}

func (b *Bar) draw() {
	line := truncate(b.line, b.width-1)
	fmt.Fprint(b.w, "\r"+line+"\x1b[K")
}

// truncate shortens s to at most n runes.  If n is not positive, s is
// returned unchanged.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func (b *Bar) clear() {
	if b.line != "" {
		fmt.Fprint(b.w, "\r\x1b[K")
	}
}

// Write prints p above the status line.
func (b *Bar) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.tty {
		return b.w.Write(p)
	}
	b.clear()
	n, err := b.w.Write(p)
	if err == nil && b.line != "" {
		b.draw()
	}
	return n, err
}

// Done removes the status line from a terminal.
func (b *Bar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tty {
		b.clear()
		b.line = ""
	}
}
