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

// Package preview rasterises the SVG documents written by the exporter.
package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"seehuhn.de/go/glyphsvg/svgdoc"
)

// Render parses an SVG document and rasterises it onto a white canvas of
// the given size.  The document's viewBox is stretched to fill the canvas.
func Render(r io.Reader, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.StrictErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// FileName returns the name of the preview image for the SVG file svgName.
func FileName(svgName string) string {
	return strings.TrimSuffix(svgName, ".svg") + ".png"
}

// Write renders doc into a PNG file with the same pixel size as the
// document.  The SVG is serialised and parsed again, so that the image
// shows exactly what the SVG file contains.
func Write(fname string, doc *svgdoc.Document) error {
	img, err := Render(bytes.NewReader(doc.Bytes()), doc.Width, doc.Height)
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
