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

package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/glyphsvg/svgdoc"
)

// box is a square of 500x500 font units sitting on the baseline.
var box = &svgdoc.Document{
	Width:    200,
	Height:   200,
	Scale:    0.2,
	PathData: "M0 0H500V500H0Z",
}

func isDark(r, g, b uint32) bool {
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func TestRender(t *testing.T) {
	img, err := Render(strings.NewReader(string(box.Bytes())), box.Width, box.Height)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("wrong image size %v", b)
	}

	// The box covers x in [0, 100] and y in [80, 180] on the canvas.
	r, g, b, _ := img.At(50, 130).RGBA()
	if !isDark(r, g, b) {
		t.Errorf("inside of the glyph is not dark: %04x %04x %04x", r, g, b)
	}
	for _, p := range [][2]int{{150, 30}, {50, 30}, {150, 130}, {50, 190}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		if isDark(r, g, b) {
			t.Errorf("pixel %v outside the glyph is dark", p)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	_, err := Render(strings.NewReader("<svg><blink /></svg>"), 100, 100)
	if err == nil {
		t.Error("unknown element accepted")
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"!A.svg":       "!A.png",
		"out/..svg":    "out/..png",
		"/tmp/x/7.svg": "/tmp/x/7.png",
		"no-suffix":    "no-suffix.png",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "!A.png")
	err := Write(fname, box)
	if err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	cfg, err := png.DecodeConfig(fd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 200 {
		t.Errorf("PNG is %dx%d, want 200x200", cfg.Width, cfg.Height)
	}
}
