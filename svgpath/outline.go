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

// Package svgpath represents glyph outlines and converts them into SVG path
// data.
//
// Outlines use the coordinate system of the font: units are font design
// units, the origin is on the baseline and the y-axis points upward.
package svgpath

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Op is the operator of an outline segment.
type Op uint8

// These are the segment operators.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	case OpClose:
		return "Close"
	default:
		return "Op(?)"
	}
}

// Segment is one element of an outline.
// MoveTo and LineTo use one point, QuadTo two and CubeTo three.
// Close uses no points.
type Segment struct {
	Op  Op
	Pts []vec.Vec2
}

// Outline is the traced outline of a glyph.
type Outline []Segment

// Pen receives the segments of an outline.
type Pen interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	QuadTo(p1, p2 vec.Vec2)
	CubeTo(p1, p2, p3 vec.Vec2)
	ClosePath()
}

// Draw sends the segments of o to pen.
func (o Outline) Draw(pen Pen) {
	for _, seg := range o {
		switch seg.Op {
		case OpMoveTo:
			pen.MoveTo(seg.Pts[0])
		case OpLineTo:
			pen.LineTo(seg.Pts[0])
		case OpQuadTo:
			pen.QuadTo(seg.Pts[0], seg.Pts[1])
		case OpCubeTo:
			pen.CubeTo(seg.Pts[0], seg.Pts[1], seg.Pts[2])
		case OpClose:
			pen.ClosePath()
		}
	}
}

// Bounds returns the smallest rectangle containing all points of o,
// including control points.
// The second return value is false if o has no points.
func (o Outline) Bounds() (rect.Rect, bool) {
	res := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	found := false
	for _, seg := range o {
		for _, p := range seg.Pts {
			res.LLx = min(res.LLx, p.X)
			res.LLy = min(res.LLy, p.Y)
			res.URx = max(res.URx, p.X)
			res.URy = max(res.URy, p.Y)
			found = true
		}
	}
	if !found {
		return rect.Rect{}, false
	}
	return res, true
}

// Recorder is a Pen which stores everything drawn into an Outline.
type Recorder struct {
	Outline Outline
}

// MoveTo implements the Pen interface.
func (r *Recorder) MoveTo(p vec.Vec2) {
	r.Outline = append(r.Outline, Segment{Op: OpMoveTo, Pts: []vec.Vec2{p}})
}

// LineTo implements the Pen interface.
func (r *Recorder) LineTo(p vec.Vec2) {
	r.Outline = append(r.Outline, Segment{Op: OpLineTo, Pts: []vec.Vec2{p}})
}

// QuadTo implements the Pen interface.
func (r *Recorder) QuadTo(p1, p2 vec.Vec2) {
	r.Outline = append(r.Outline, Segment{Op: OpQuadTo, Pts: []vec.Vec2{p1, p2}})
}

// CubeTo implements the Pen interface.
func (r *Recorder) CubeTo(p1, p2, p3 vec.Vec2) {
	r.Outline = append(r.Outline, Segment{Op: OpCubeTo, Pts: []vec.Vec2{p1, p2, p3}})
}

// ClosePath implements the Pen interface.
func (r *Recorder) ClosePath() {
	r.Outline = append(r.Outline, Segment{Op: OpClose})
}
