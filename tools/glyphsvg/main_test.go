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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/glyphsvg/export"
	"seehuhn.de/go/glyphsvg/sheet"
)

func writeFont(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

// run executes the command line tool with the given arguments.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// make sure no test waits for terminal input
	in, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	saved := stdin
	stdin = in
	defer func() { stdin = saved }()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestExport(t *testing.T) {
	font := writeFont(t)
	dir := filepath.Join(t.TempDir(), "out")

	stdout, stderr, err := run(t, "export", "-o", dir, "-s", "200", font)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 64 {
		t.Errorf("%d files written, want 64", len(entries))
	}
	if want := "SVGs saved in: " + dir + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if n := strings.Count(stderr, "Exporting: "); n != 64 {
		t.Errorf("%d progress lines, want 64", n)
	}
	if !strings.Contains(stderr, "Exporting: ',' (64/64)") {
		t.Errorf("last progress line missing:\n%s", stderr)
	}
}

func TestExportQuiet(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()

	_, stderr, err := run(t, "export", "-q", "-o", dir, "-s", "100", "--chars", "Abक", font)
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("unexpected output on stderr: %q", stderr)
	}
	for _, name := range []string{"!A.svg", "b.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestExportSkip(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()

	stdout, stderr, err := run(t, "export", "-o", dir, "-s", "100", "--chars", "Aक", font)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "skipping character") || !strings.Contains(stderr, "DEVANAGARI LETTER KA") {
		t.Errorf("skip notice missing:\n%s", stderr)
	}
	if !strings.Contains(stdout, "(1 of 2 characters skipped)") {
		t.Errorf("unexpected summary %q", stdout)
	}
}

func TestExportExtras(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()

	_, _, err := run(t, "export", "-q", "--png", "--sheet", "--backend", "x",
		"-o", dir, "-s", "100", "--chars", "Az", font)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"!A.svg", "!A.png", "z.svg", "z.png", sheet.FileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestExportErrors(t *testing.T) {
	font := writeFont(t)
	garbage := filepath.Join(t.TempDir(), "garbage.ttf")
	err := os.WriteFile(garbage, []byte("not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		args []string
		kind export.Kind
	}{
		{[]string{"-o", "out", font}, export.KindInvalidTarget},
		{[]string{"-o", "out", "-s", "99", font}, export.KindInvalidTarget},
		{[]string{"-o", "out", "-s", "10001", font}, export.KindInvalidTarget},
		{[]string{"-s", "100", "-o", "out", garbage}, export.KindFontFormat},
		{[]string{"-s", "100", "-o", "out", "--backend", "x", garbage}, export.KindFontFormat},
		{[]string{"-s", "100", "-o", "out", font + ".missing"}, export.KindIO},
		{[]string{"-s", "100", "-o", "out", "--backend", "freetype", font}, export.KindOther},
	}
	for _, c := range cases {
		dir := t.TempDir()
		args := append([]string{"export", "-q"}, c.args...)
		for i, arg := range args {
			if arg == "out" {
				args[i] = filepath.Join(dir, "out")
			}
		}

		_, _, err := run(t, args...)
		if export.KindOf(err) != c.kind {
			t.Errorf("%q: got %v (%s), want %s", c.args, err, export.KindOf(err), c.kind)
		}
		if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
			t.Errorf("%q: output directory was created", c.args)
		}
	}
}

func TestExportUsage(t *testing.T) {
	font := writeFont(t)
	for _, args := range [][]string{
		{"export", "-s", "100", font},
		{"export", "-o", t.TempDir(), "-s", "100"},
		{"export", "-q", "-v", "-o", t.TempDir(), "-s", "100", font},
		{"export", "-o", t.TempDir(), "-s", "100", "--chars", "a/b", font},
	} {
		_, _, err := run(t, args...)
		if err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}

func TestList(t *testing.T) {
	font := writeFont(t)

	stdout, _, err := run(t, "list", "--chars", "Aक", font)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
	if !strings.Contains(lines[1], "U+0041") || !strings.Contains(lines[1], "!A.svg") ||
		!strings.Contains(lines[1], "LATIN CAPITAL LETTER A") {
		t.Errorf("unexpected line %q", lines[1])
	}
	if !strings.Contains(lines[2], "missing") {
		t.Errorf("unexpected line %q", lines[2])
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "glyphsvg") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestParseSize(t *testing.T) {
	for _, in := range []string{"100", " 500\n", "10000"} {
		if _, err := parseSize(in); err != nil {
			t.Errorf("parseSize(%q): %v", in, err)
		}
	}
	for _, in := range []string{"", "abc", "99", "1e3", "10001"} {
		if _, err := parseSize(in); err == nil {
			t.Errorf("parseSize(%q) succeeded", in)
		}
	}
}
