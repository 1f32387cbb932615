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

package svgpath

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Format returns the SVG path data for o.
//
// All commands are absolute.  Commands follow each other without
// separators, coordinates are separated by single spaces.  Horizontal and
// vertical lines use the "H" and "V" commands, a line directly after a
// "M" command is written as an implicit line-to, and lines to the current
// point are omitted.  A line back to the start of a contour, immediately
// followed by a close, is left to the "Z" command.
func Format(o Outline) string {
	w := &writer{}
	var start vec.Vec2
	for i, seg := range o {
		switch seg.Op {
		case OpMoveTo:
			start = seg.Pts[0]
			w.MoveTo(seg.Pts[0])
		case OpLineTo:
			if seg.Pts[0] == start && i+1 < len(o) && o[i+1].Op == OpClose {
				continue
			}
			w.LineTo(seg.Pts[0])
		case OpQuadTo:
			w.QuadTo(seg.Pts[0], seg.Pts[1])
		case OpCubeTo:
			w.CubeTo(seg.Pts[0], seg.Pts[1], seg.Pts[2])
		case OpClose:
			w.ClosePath()
		}
	}
	return w.String()
}

// writer is a Pen which produces SVG path data.
type writer struct {
	buf     strings.Builder
	lastCmd byte
	hasLast bool
	last    vec.Vec2
}

func (w *writer) String() string {
	return w.buf.String()
}

func (w *writer) MoveTo(p vec.Vec2) {
	w.buf.WriteByte('M')
	w.point(p)
	w.lastCmd = 'M'
	w.last, w.hasLast = p, true
}

func (w *writer) LineTo(p vec.Vec2) {
	switch {
	case w.hasLast && p == w.last:
		return
	case w.hasLast && p.X == w.last.X:
		w.buf.WriteByte('V')
		w.buf.WriteString(Number(p.Y))
		w.lastCmd = 'V'
	case w.hasLast && p.Y == w.last.Y:
		w.buf.WriteByte('H')
		w.buf.WriteString(Number(p.X))
		w.lastCmd = 'H'
	case w.lastCmd == 'M':
		w.buf.WriteByte(' ')
		w.point(p)
	default:
		w.buf.WriteByte('L')
		w.point(p)
		w.lastCmd = 'L'
	}
	w.last, w.hasLast = p, true
}

func (w *writer) QuadTo(p1, p2 vec.Vec2) {
	w.buf.WriteByte('Q')
	w.point(p1)
	w.buf.WriteByte(' ')
	w.point(p2)
	w.lastCmd = 'Q'
	w.last, w.hasLast = p2, true
}

func (w *writer) CubeTo(p1, p2, p3 vec.Vec2) {
	w.buf.WriteByte('C')
	w.point(p1)
	w.buf.WriteByte(' ')
	w.point(p2)
	w.buf.WriteByte(' ')
	w.point(p3)
	w.lastCmd = 'C'
	w.last, w.hasLast = p3, true
}

func (w *writer) ClosePath() {
	w.buf.WriteByte('Z')
	w.lastCmd = 'Z'
	w.hasLast = false
}

func (w *writer) point(p vec.Vec2) {
	w.buf.WriteString(Number(p.X))
	w.buf.WriteByte(' ')
	w.buf.WriteString(Number(p.Y))
}

// Number formats x with at most three decimal places.  Trailing zeros and a
// trailing decimal point are removed, so that 100 is written as "100" and
// 0.25 as "0.25".
func Number(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

var (
	_ Pen = (*writer)(nil)
	_ Pen = (*Recorder)(nil)
)
