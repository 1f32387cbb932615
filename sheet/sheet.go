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

// Package sheet draws an overview of exported glyphs into a single SVG
// file.
package sheet

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/glyphsvg/svgdoc"
)

// FileName is the name of the overview file in the output directory.
const FileName = "index.svg"

// Default layout values used by New.
const (
	DefaultCell    = 96
	DefaultColumns = 8
)

const labelHeight = 20

// Sheet collects glyph documents and lays them out in a grid.
type Sheet struct {
	// Title is stored in the title element of the sheet.
	Title string

	// Cell is the width and height of the glyph area of each cell, in
	// pixels.  The file name label is drawn below this area.
	Cell int

	// Columns is the maximal number of cells in a row.
	Columns int

	items []item
}

type item struct {
	label string
	doc   *svgdoc.Document
}

// New returns an empty sheet with the default layout.
func New(title string) *Sheet {
	return &Sheet{
		Title:   title,
		Cell:    DefaultCell,
		Columns: DefaultColumns,
	}
}

// Add appends a glyph to the sheet.  The label is shown below the glyph.
func (s *Sheet) Add(label string, doc *svgdoc.Document) {
	s.items = append(s.items, item{label: label, doc: doc})
}

// Len returns the number of glyphs on the sheet.
func (s *Sheet) Len() int {
	return len(s.items)
}

// WriteTo writes the sheet as an SVG document.
// This implements the io.WriterTo interface.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	cols := min(max(s.Columns, 1), max(len(s.items), 1))
	rows := (len(s.items) + cols - 1) / cols
	rowHeight := s.Cell + labelHeight

	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Start(cols*s.Cell, max(rows, 1)*rowHeight)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	canvas.Rect(0, 0, cols*s.Cell, max(rows, 1)*rowHeight, "fill:white")

	for i, it := range s.items {
		x := (i % cols) * s.Cell
		y := (i / cols) * rowHeight

		canvas.Rect(x, y, s.Cell, s.Cell, "fill:none;stroke:#cccccc")
		if it.doc.PathData != "" {
			k := float64(s.Cell) / float64(max(it.doc.Width, it.doc.Height, 1))
			canvas.Gtransform(fmt.Sprintf("translate(%d,%d) scale(%s)", x, y, svgdoc.Float(k)))
			canvas.Path(it.doc.PathData,
				`fill="black" transform="`+it.doc.Transform()+`"`)
			canvas.Gend()
		}
		canvas.Text(x+s.Cell/2, y+s.Cell+labelHeight-6, it.label,
			"text-anchor:middle;font-family:sans-serif;font-size:12px")
	}
	canvas.End()

	return buf.WriteTo(w)
}

// WriteFile writes the sheet to the named file.
func (s *Sheet) WriteFile(fname string) error {
	buf := &bytes.Buffer{}
	_, err := s.WriteTo(buf)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, buf.Bytes(), 0o644)
}

// Caption returns the label used for a glyph file: the file name followed
// by the Unicode code point.
func Caption(fileName string, r rune) string {
	return fmt.Sprintf("%s U+%04X", fileName, r)
}
