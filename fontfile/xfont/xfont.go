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

// Package xfont reads fonts using the golang.org/x/image/font/sfnt parser.
//
// This parser supports fewer cmap subtable formats than the one used by
// package fontfile, but tolerates some damaged fonts which the latter
// rejects.  Both backends report the same vertical metrics, taken from the
// "hhea" table, and trace outlines with the same segments.  Coordinates may
// differ by up to half a font design unit: this parser computes the implied
// on-curve points between consecutive off-curve points of a TrueType glyph
// in integer font units, so midpoints which fall on a half unit are
// truncated.
package xfont

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsvg/export"
	"seehuhn.de/go/glyphsvg/svgpath"
)

// Font is a font read by the golang.org/x/image/font/sfnt parser.
// It implements the [export.Font] interface.
//
// A Font must not be used concurrently from different goroutines.
type Font struct {
	f   *sfnt.Font
	buf sfnt.Buffer

	// ppem is chosen so that one unit of the 26.6 fixed point values
	// returned by the parser equals 1/64 font design unit.
	ppem fixed.Int26_6
}

var _ export.Font = (*Font)(nil)

// Open reads a font file.
func Open(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, &export.IOError{Op: "read", Path: fname, Err: err}
	}
	return Read(data)
}

// Read parses a font from memory.  The data must not be modified while
// the Font is in use.
func Read(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		reason := "cannot parse font"
		if strings.Contains(err.Error(), "unsupported cmap encodings") {
			reason = export.ReasonNoUnicodeMapping
		}
		return nil, &export.FontFormatError{Reason: reason, Err: err}
	}
	return &Font{
		f:    f,
		ppem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// UnicodeMapping returns the character map selected by the parser.
func (f *Font) UnicodeMapping() (export.Mapping, error) {
	return &mapping{f: f.f}, nil
}

type mapping struct {
	f   *sfnt.Font
	buf sfnt.Buffer
}

// Lookup returns 0 for unmapped characters and for characters whose
// cmap entry cannot be decoded.
func (m *mapping) Lookup(r rune) glyph.ID {
	idx, err := m.f.GlyphIndex(&m.buf, r)
	if err != nil {
		return 0
	}
	return glyph.ID(idx)
}

// VerticalMetrics returns the ascent and descent of the font, in font
// design units.  The descent is negative for fonts which extend below the
// baseline.
func (f *Font) VerticalMetrics() (ascent, descent float64) {
	m, err := f.f.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	return fromFixed(m.Ascent), fromFixed(-m.Descent)
}

var errNoGlyph = errors.New("glyph index out of range")

// Outline returns the outline of a glyph, in font design units with the
// y-axis pointing up.
func (f *Font) Outline(gid glyph.ID) (svgpath.Outline, error) {
	if int(gid) >= f.f.NumGlyphs() {
		return nil, errNoGlyph
	}
	segments, err := f.f.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return nil, err
	}

	rec := &svgpath.Recorder{}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				rec.ClosePath()
			}
			rec.MoveTo(toVec(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			rec.LineTo(toVec(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			rec.QuadTo(toVec(seg.Args[0]), toVec(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			rec.CubeTo(toVec(seg.Args[0]), toVec(seg.Args[1]), toVec(seg.Args[2]))
		}
	}
	if open {
		rec.ClosePath()
	}
	return rec.Outline, nil
}

// Name returns the family name of the font, or the empty string if the
// font has no usable name table entry.
func (f *Font) Name() string {
	name, err := f.f.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// toVec flips the y-axis, which points down in the parser's output.
func toVec(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: fromFixed(p.X), Y: fromFixed(-p.Y)}
}
