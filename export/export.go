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
	"context"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsvg/charset"
	"seehuhn.de/go/glyphsvg/svgdoc"
	"seehuhn.de/go/glyphsvg/svgpath"
)

// Options controls an export run.
// A nil *Options is equivalent to a zero Options value.
type Options struct {
	// Chars is the set of characters to export.
	// If this is nil, charset.Default is used.
	Chars charset.Set

	// OnProgress, if not nil, is called after each character has been
	// processed, whether or not a file was written for it.
	OnProgress func(current, total int, r rune)

	// OnWrite, if not nil, is called after each SVG file has been written.
	// If OnWrite returns an error, the export is aborted.
	OnWrite func(f File, doc *svgdoc.Document) error

	// Logger receives skip notices and warnings.
	// If this is nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// Scale returns the factor which maps the vertical extent of a font,
// ascent minus descent in font design units, onto a canvas of the given
// height in pixels.
func Scale(height int, ascent, descent float64) (float64, error) {
	extent := ascent - descent
	if !(extent > 0) {
		return 0, &InvalidMetricsError{Ascent: ascent, Descent: descent}
	}
	s := float64(height) / extent
	if math.IsInf(s, 0) || math.IsNaN(s) || s <= 0 {
		return 0, &InvalidMetricsError{Ascent: ascent, Descent: descent}
	}
	return s, nil
}

// Export writes one SVG file for every character of the character set
// which is mapped to a glyph in fnt.
//
// Characters without a glyph are skipped and listed in the result.
// All other problems abort the export and are returned as errors; use
// KindOf to classify them.  Problems with the font or the target are
// detected before the output directory is created.  When a later step
// fails, the files written so far are left in place and are listed in the
// returned Result.
//
// The context is checked before each character.
func Export(ctx context.Context, fnt Font, target *Target, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	chars := opt.Chars
	if chars == nil {
		chars = charset.Default
	}
	var log logrus.FieldLogger = logrus.StandardLogger()
	if opt.Logger != nil {
		log = opt.Logger
	}

	res := &Result{
		Total: len(chars),
	}

	err := target.Validate()
	if err != nil {
		return res, err
	}
	res.Dir = target.Dir

	cmap, err := fnt.UnicodeMapping()
	if err != nil {
		if KindOf(err) != KindFontFormat {
			err = &FontFormatError{Reason: "cannot read character map", Err: err}
		}
		return res, err
	}
	if cmap == nil {
		return res, &FontFormatError{Reason: ReasonNoUnicodeMapping}
	}

	ascent, descent := fnt.VerticalMetrics()
	scale, err := Scale(target.Height, ascent, descent)
	if err != nil {
		return res, err
	}
	res.Scale = scale

	err = os.MkdirAll(target.Dir, 0o755)
	if err != nil {
		return res, &IOError{Op: "create", Path: target.Dir, Err: err}
	}

	log.WithFields(logrus.Fields{
		"dir":   target.Dir,
		"scale": scale,
		"chars": len(chars),
	}).Debug("starting export")

	for i, r := range chars {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		gid := cmap.Lookup(r)
		if gid == 0 {
			log.WithError(&GlyphNotFoundError{Char: r}).
				WithField("name", runenames.Name(r)).
				Info("skipping character")
			res.Skipped = append(res.Skipped, r)
		} else {
			err := exportGlyph(res, fnt, gid, r, target, opt, log)
			if err != nil {
				return res, err
			}
		}

		if opt.OnProgress != nil {
			opt.OnProgress(i+1, len(chars), r)
		}
	}

	return res, nil
}

func exportGlyph(res *Result, fnt Font, gid glyph.ID, r rune, target *Target, opt *Options, log logrus.FieldLogger) error {
	outline, err := fnt.Outline(gid)
	if err != nil {
		return &OutlineError{Char: r, GID: gid, Err: err}
	}

	doc := &svgdoc.Document{
		Width:    target.Width,
		Height:   target.Height,
		Scale:    res.Scale,
		PathData: svgpath.Format(outline),
	}
	fname := filepath.Join(target.Dir, charset.FileName(r))
	err = writeFile(fname, doc.Bytes())
	if err != nil {
		return &IOError{Op: "write", Path: fname, Err: err}
	}
	f := File{Char: r, Path: fname}
	res.Written = append(res.Written, f)
	log.WithField("file", fname).Debug("glyph written")

	if overflows(doc, outline) {
		log.WithField("char", string(r)).Warn("glyph is wider than the canvas")
		res.Overflow = append(res.Overflow, r)
	}

	if opt.OnWrite != nil {
		err = opt.OnWrite(f, doc)
		if err != nil {
			return err
		}
	}
	return nil
}

// overflows reports whether the bounding box of the outline, placed on the
// canvas, extends past the left or right edge of the canvas.
func overflows(doc *svgdoc.Document, outline svgpath.Outline) bool {
	bbox, ok := outline.Bounds()
	if !ok {
		return false
	}
	ll := doc.Place(vec.Vec2{X: bbox.LLx, Y: bbox.LLy})
	ur := doc.Place(vec.Vec2{X: bbox.URx, Y: bbox.URy})
	return ll.X < 0 || ur.X > float64(doc.Width)
}

// writeFile writes data to a temporary file in the target directory and
// then renames it, so that name never refers to a partially written file.
func writeFile(name string, data []byte) error {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, name)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
