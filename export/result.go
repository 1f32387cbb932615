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

package export

import (
	"fmt"
)

// Status describes the outcome of a completed export.
type Status int

// These are the possible outcomes of a completed export.
const (
	// StatusSuccess means that every character was exported.
	StatusSuccess Status = iota

	// StatusPartial means that some characters were skipped because the
	// font has no glyph for them.
	StatusPartial
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial success"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// File describes one SVG file written by Export.
type File struct {
	Char rune
	Path string
}

// Result describes the files written by Export.
//
// If Export fails, the Result lists the files written before the failure.
type Result struct {
	// Dir is the output directory.
	Dir string

	// Scale is the factor used to convert font design units to pixels.
	Scale float64

	// Total is the number of characters in the character set.
	Total int

	// Written lists the files written, in character set order.
	Written []File

	// Skipped lists the characters for which the font has no glyph.
	Skipped []rune

	// Overflow lists the exported characters whose glyph extends past the
	// left or right edge of the canvas.
	Overflow []rune
}

// Status returns the outcome of a completed export.
func (r *Result) Status() Status {
	if len(r.Skipped) > 0 {
		return StatusPartial
	}
	return StatusSuccess
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	msg := "SVGs saved in: " + r.Dir
	if n := len(r.Skipped); n > 0 {
		msg += fmt.Sprintf(" (%d of %d characters skipped)", n, r.Total)
	}
	return msg
}

// StatusLine returns the progress message shown while character r, the
// current-th of total characters, is exported.
func StatusLine(current, total int, r rune) string {
	return fmt.Sprintf("Exporting: '%c' (%d/%d)", r, current, total)
}
