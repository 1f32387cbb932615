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

package charset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	if len(Default) != 64 {
		t.Fatalf("len(Default) = %d, want 64", len(Default))
	}
	if Default[0] != 'A' || Default[26] != 'a' || Default[52] != '0' {
		t.Errorf("unexpected order: %q", Default.String())
	}
	if Default[62] != '.' || Default[63] != ',' {
		t.Errorf("unexpected tail: %q", string(Default[62:]))
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		in  rune
		out string
	}{
		{'A', "!A.svg"},
		{'Z', "!Z.svg"},
		{'a', "a.svg"},
		{'z', "z.svg"},
		{'5', "5.svg"},
		{'7', "7.svg"},
		{'.', "..svg"},
		{',', ",.svg"},
		{'Ä', "Ä.svg"},
	}
	for _, c := range cases {
		got := FileName(c.in)
		if got != c.out {
			t.Errorf("FileName(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestPrefixOnlyForUpperLatin(t *testing.T) {
	for r := rune(0x20); r < 0x250; r++ {
		name := FileName(r)
		hasPrefix := name[0] == '!' && r != '!'
		if hasPrefix != (r >= 'A' && r <= 'Z') {
			t.Errorf("FileName(%q) = %q", r, name)
		}
	}
}

func TestFileNamesDistinct(t *testing.T) {
	seen := make(map[string]rune)
	for _, r := range Default {
		name := FileName(r)
		if other, ok := seen[name]; ok {
			t.Errorf("%q and %q both map to %q", other, r, name)
		}
		seen[name] = r
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("AbÄ9,")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Set{'A', 'b', 'Ä', '9', ','}, s); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	bad := []string{"", "ab/c", "a\\b", "a\tb", "aa", "x\x00", "\xff"}
	for _, in := range bad {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}
