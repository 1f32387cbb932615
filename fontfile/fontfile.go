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

// Package fontfile reads TrueType and OpenType fonts for use with
// [export.Export].
package fontfile

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"

	"seehuhn.de/go/glyphsvg/export"
	"seehuhn.de/go/glyphsvg/svgpath"
)

// Font is a TrueType or OpenType font.
// It implements the [export.Font] interface.
type Font struct {
	*sfnt.Font

	// hhea is nil if the font has no "hhea" table.
	hhea *hmtx.Info
}

var _ export.Font = (*Font)(nil)

// Open reads a font file.
// Files which cannot be read are reported as [*export.IOError],
// files which cannot be parsed as [*export.FontFormatError].
func Open(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, &export.IOError{Op: "read", Path: fname, Err: err}
	}
	return Read(data)
}

// Read parses a font from memory.
func Read(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	f, err := sfnt.Read(r)
	if err != nil {
		return nil, &export.FontFormatError{Reason: "cannot parse font", Err: err}
	}
	hhea, err := readHhea(r)
	if err != nil {
		return nil, &export.FontFormatError{Reason: "cannot parse hhea table", Err: err}
	}
	return &Font{Font: f, hhea: hhea}, nil
}

// readHhea decodes the "hhea" table.  The ascent and descent stored in
// [sfnt.Font] are taken from the OS/2 table when one is present, so the
// table is read separately here.
func readHhea(r io.ReaderAt) (*hmtx.Info, error) {
	dir, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	hheaData, err := dir.ReadTableBytes(r, "hhea")
	if header.IsMissing(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return hmtx.Decode(hheaData, nil)
}

// IsUnicode reports whether a cmap subtable with the given key maps
// Unicode code points.
func IsUnicode(key cmap.Key) bool {
	switch key.PlatformID {
	case 0:
		return true
	case 3:
		return key.EncodingID == 0 || key.EncodingID == 1 || key.EncodingID == 10
	default:
		return false
	}
}

// UnicodeKeys returns the keys of all Unicode subtables in the cmap table,
// ordered by platform, encoding and language.
func (f *Font) UnicodeKeys() []cmap.Key {
	keys := maps.Keys(f.CMapTable)
	keys = slices.DeleteFunc(keys, func(key cmap.Key) bool {
		return !IsUnicode(key)
	})
	slices.SortFunc(keys, func(a, b cmap.Key) int {
		if c := cmp.Compare(a.PlatformID, b.PlatformID); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EncodingID, b.EncodingID); c != 0 {
			return c
		}
		return cmp.Compare(a.Language, b.Language)
	})
	return keys
}

// UnicodeMapping returns the first Unicode subtable of the cmap table
// which can be decoded.
func (f *Font) UnicodeMapping() (export.Mapping, error) {
	var lastErr error
	for _, key := range f.UnicodeKeys() {
		subtable, err := f.CMapTable.Get(key)
		if err != nil {
			lastErr = err
			continue
		}
		return subtable, nil
	}
	return nil, &export.FontFormatError{
		Reason: export.ReasonNoUnicodeMapping,
		Err:    lastErr,
	}
}

// VerticalMetrics returns the ascent and descent from the "hhea" table,
// in font design units.  Fonts without an "hhea" table report zero for
// both, which [export.Export] rejects as invalid metrics.
func (f *Font) VerticalMetrics() (ascent, descent float64) {
	if f.hhea == nil {
		return 0, 0
	}
	return float64(f.hhea.Ascent), float64(f.hhea.Descent)
}

var errNoOutlines = errors.New("font has no glyph outlines")

// Outline returns the outline of a glyph, in font design units.
func (f *Font) Outline(gid glyph.ID) (svgpath.Outline, error) {
	if f.Outlines == nil {
		return nil, errNoOutlines
	}
	if n := f.NumGlyphs(); int(gid) >= n {
		return nil, fmt.Errorf("glyph %d out of range (font has %d glyphs)", gid, n)
	}

	rec := &svgpath.Recorder{}
	for cmd, pts := range f.Outlines.Path(gid) {
		switch cmd {
		case path.CmdMoveTo:
			rec.MoveTo(pts[0])
		case path.CmdLineTo:
			rec.LineTo(pts[0])
		case path.CmdQuadTo:
			rec.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			rec.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			rec.ClosePath()
		}
	}
	return rec.Outline, nil
}

// Name returns a human readable name for the font.
func (f *Font) Name() string {
	if f.FamilyName != "" {
		return f.FamilyName
	}
	return f.PostScriptName()
}
