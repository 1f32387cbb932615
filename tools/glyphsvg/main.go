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

// Glyphsvg exports the glyphs of a TrueType or OpenType font as SVG files,
// one file per character.
//
// Usage:
//
//	glyphsvg export -o <dir> -s <size> <font.ttf>
//	glyphsvg list <font.ttf>
//	glyphsvg version
//
// Upper case Latin letters are written to files with a "!" prefix, for
// example "!A.svg", so that they do not collide with the lower case
// letters on case-insensitive file systems.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "glyphsvg:", err)
		os.Exit(1)
	}
}
