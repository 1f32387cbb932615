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

// Package export writes the glyphs of a font as individual SVG files.
//
// All glyphs of a run share one scale factor, chosen so that the vertical
// extent of the font (ascent minus descent) fills the canvas height.  Each
// glyph is placed with its baseline at 90% of the canvas height and its
// origin at the left edge of the canvas.  Glyphs are not normalised
// horizontally, so wide glyphs can extend past the right edge.
//
// A typical use looks like this:
//
//	fnt, err := fontfile.Open("font.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	target := &export.Target{Width: 500, Height: 500, Dir: "out"}
//	res, err := export.Export(ctx, fnt, target, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary())
package export
