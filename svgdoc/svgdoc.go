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

// Package svgdoc writes SVG documents showing a single glyph.
//
// The byte layout of the documents is fixed, since downstream tools rely
// on it:
//
//	<?xml version="1.0" encoding="utf-8" ?>
//	<svg baseProfile="full" height="500px" version="1.1" viewBox="0 0 500 500" width="500px" xmlns="http://www.w3.org/2000/svg" xmlns:ev="http://www.w3.org/2001/xml-events" xmlns:xlink="http://www.w3.org/1999/xlink"><defs /><path d="..." fill="black" transform="translate(0,450.0) scale(0.2,-0.2)" /></svg>
//
// Attributes appear in lexicographic order and the file ends without a
// newline.
package svgdoc

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// BaselineFraction gives the position of the baseline, as a fraction of the
// canvas height measured from the top.
const BaselineFraction = 0.9

// Document describes an SVG file showing one glyph.
type Document struct {
	// Width and Height give the canvas size in pixels.
	Width, Height int

	// Scale converts font design units into pixels.
	Scale float64

	// PathData is the outline of the glyph, in font design units.
	PathData string
}

// Baseline returns the y-coordinate of the baseline on the canvas.
func (d *Document) Baseline() float64 {
	return float64(d.Height) * BaselineFraction
}

// Transform returns the value of the transform attribute of the path.
func (d *Document) Transform() string {
	s := Float(d.Scale)
	return "translate(0," + Float(d.Baseline()) + ") scale(" + s + ",-" + s + ")"
}

// Matrix returns the transformation from font design units to canvas
// pixels which is described by the transform attribute.
func (d *Document) Matrix() matrix.Matrix {
	return matrix.Matrix{d.Scale, 0, 0, -d.Scale, 0, d.Baseline()}
}

// Place maps a point given in font design units to canvas pixels.
func (d *Document) Place(p vec.Vec2) vec.Vec2 {
	m := d.Matrix()
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// WriteTo writes the SVG document to w.
// This implements the io.WriterTo interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	width := strconv.Itoa(d.Width)
	height := strconv.Itoa(d.Height)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8" ?>` + "\n")
	buf.WriteString("<svg")
	attr(&buf, "baseProfile", "full")
	attr(&buf, "height", height+"px")
	attr(&buf, "version", "1.1")
	attr(&buf, "viewBox", "0 0 "+width+" "+height)
	attr(&buf, "width", width+"px")
	attr(&buf, "xmlns", "http://www.w3.org/2000/svg")
	attr(&buf, "xmlns:ev", "http://www.w3.org/2001/xml-events")
	attr(&buf, "xmlns:xlink", "http://www.w3.org/1999/xlink")
	buf.WriteString("><defs /><path")
	if d.PathData != "" {
		attr(&buf, "d", d.PathData)
	}
	attr(&buf, "fill", "black")
	attr(&buf, "transform", d.Transform())
	buf.WriteString(" /></svg>")

	return buf.WriteTo(w)
}

// Bytes returns the SVG document.
func (d *Document) Bytes() []byte {
	buf := &bytes.Buffer{}
	d.WriteTo(buf) // writes to a bytes.Buffer cannot fail
	return buf.Bytes()
}

func attr(buf *bytes.Buffer, key, value string) {
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteString(`="`)
	attrEscaper.WriteString(buf, value)
	buf.WriteByte('"')
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
)

// Float formats x as the shortest decimal which reads back as x.
// The result always contains a decimal point or an exponent, for example
// "450.0", "0.2" or "1e-05".
func Float(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, +1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
