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

package progress

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	b := NewWriter(buf, 0, false)
	b.Update(1, 2, "one")
	b.Write([]byte("log message\n"))
	b.Update(2, 2, "two")
	b.Done()

	want := "one\nlog message\ntwo\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestRender(t *testing.T) {
	b := NewWriter(nil, 41, true)
	cases := []struct {
		current, total int
		want           string
	}{
		{0, 4, "[                ] Exporting: 'A' (1/64)"},
		{1, 4, "[####            ] Exporting: 'A' (1/64)"},
		{4, 4, "[################] Exporting: 'A' (1/64)"},
		{5, 4, "[################] Exporting: 'A' (1/64)"},
	}
	for _, c := range cases {
		got := b.render(c.current, c.total, "Exporting: 'A' (1/64)")
		if got != c.want {
			t.Errorf("%d/%d: got %q, want %q", c.current, c.total, got, c.want)
		}
	}
}

func TestRenderNarrow(t *testing.T) {
	b := NewWriter(nil, 5, true)
	got := b.render(1, 2, "msg")
	if !strings.HasPrefix(got, "["+strings.Repeat("#", minBar/2)+strings.Repeat(" ", minBar/2)+"]") {
		t.Errorf("got %q", got)
	}
}

func TestTerminal(t *testing.T) {
	buf := &bytes.Buffer{}
	b := NewWriter(buf, 80, true)
	b.Update(1, 2, "one")
	b.Write([]byte("log\n"))
	b.Done()

	out := buf.String()
	if strings.Contains(out, "\n[") {
		t.Errorf("status line not redrawn in place: %q", out)
	}
	if !strings.Contains(out, "\r\x1b[Klog\n\r[") {
		t.Errorf("log output not placed above the status line: %q", out)
	}
	if !strings.HasSuffix(out, "\r\x1b[K") {
		t.Errorf("status line not cleared: %q", out)
	}
}

func TestRenderNonASCII(t *testing.T) {
	b := NewWriter(nil, 41, true)
	got := b.render(2, 4, "Exporting: 'é' (1/64)")
	want := "[########        ] Exporting: 'é' (1/64)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDrawTruncates(t *testing.T) {
	buf := &bytes.Buffer{}
	b := NewWriter(buf, 20, true)
	b.Update(1, 1, "äöüßäöüßäöüß")

	out := strings.TrimSuffix(strings.TrimPrefix(buf.String(), "\r"), "\x1b[K")
	if !utf8.ValidString(out) {
		t.Errorf("status line is not valid UTF-8: %q", out)
	}
	want := "[##########] äöüßäö"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc"},
		{"abc", 3, "abc"},
		{"abc", 2, "ab"},
		{"äöü", 2, "äö"},
		{"äöü", 0, "äöü"},
		{"", 3, ""},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.n); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
