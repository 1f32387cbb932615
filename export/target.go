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
	"strconv"
)

// MinSize and MaxSize bound the canvas sizes accepted by CheckSize.
const (
	MinSize = 100
	MaxSize = 10000
)

// Target describes where and how large the SVG files are written.
type Target struct {
	// Width and Height give the canvas size in pixels.
	Width, Height int

	// Dir is the output directory.  It is created if it does not exist.
	Dir string
}

// Validate checks that the canvas size is positive and that an output
// directory is given.  A nil Target is invalid.
func (t *Target) Validate() error {
	if t == nil {
		return &TargetError{Field: "target", Reason: "not given"}
	}
	if t.Width <= 0 {
		return &TargetError{Field: "width", Reason: strconv.Itoa(t.Width) + " is not positive"}
	}
	if t.Height <= 0 {
		return &TargetError{Field: "height", Reason: strconv.Itoa(t.Height) + " is not positive"}
	}
	if t.Dir == "" {
		return &TargetError{Field: "output directory", Reason: "not given"}
	}
	return nil
}

// CheckSize checks that n is an acceptable canvas size for interactive use,
// that is between MinSize and MaxSize inclusive.
func CheckSize(n int) error {
	if n < MinSize || n > MaxSize {
		return &TargetError{
			Field:  "size",
			Reason: strconv.Itoa(n) + " is outside the range " + strconv.Itoa(MinSize) + " to " + strconv.Itoa(MaxSize),
		}
	}
	return nil
}
