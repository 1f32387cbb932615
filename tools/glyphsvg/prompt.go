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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/glyphsvg/export"
)

var errNoSize = &export.TargetError{Field: "size", Reason: "not given, use --size"}

// parseSize converts the user's answer to the size prompt into a canvas
// size.
func parseSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &export.TargetError{Field: "size", Reason: strconv.Quote(s) + " is not a whole number"}
	}
	err = export.CheckSize(n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// promptSize asks for the canvas size on the terminal until a valid
// answer is given.  End of input cancels the prompt.
func promptSize(in *os.File, out io.Writer) (int, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return 0, errNoSize
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, state)

	prompt := fmt.Sprintf("canvas size in pixels (%d-%d): ", export.MinSize, export.MaxSize)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return 0, errNoSize
		} else if err != nil {
			return 0, err
		}
		n, err := parseSize(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(t, "%v\r\n", err)
	}
}
