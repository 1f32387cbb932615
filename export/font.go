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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsvg/svgpath"
)

// Mapping maps characters to glyphs.
// Lookup returns 0 for characters which are not mapped.
type Mapping interface {
	Lookup(r rune) glyph.ID
}

// Font is the information about a font needed to export glyphs.
type Font interface {
	// UnicodeMapping returns the Unicode character to glyph mapping of the
	// font.  If the font has no Unicode mapping, a *FontFormatError is
	// returned.
	UnicodeMapping() (Mapping, error)

	// VerticalMetrics returns the ascent and descent of the font, in font
	// design units.  The descent is negative for fonts which extend below
	// the baseline.
	VerticalMetrics() (ascent, descent float64)

	// Outline returns the outline of a glyph, in font design units.
	Outline(gid glyph.ID) (svgpath.Outline, error)
}
