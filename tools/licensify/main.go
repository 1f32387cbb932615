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

// Licensify adds the GPL license header to Go source files which lack it.
//
// Usage:
//
//	licensify [-check] [dir]
//
// Directories whose names start with "_" or "." are skipped, as are
// generated files.  With -check, no files are modified and the exit status
// is 1 if any file lacks the header.
package main

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const header = `// seehuhn.de/go/glyphsvg - export font glyphs as SVG files
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

`

var checkOnly = flag.Bool("check", false, "only report files without the header")

func main() {
	flag.Parse()
	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	missing, err := scan(root, !*checkOnly, logrus.StandardLogger())
	if err != nil {
		logrus.Fatal(err)
	}
	if *checkOnly && len(missing) > 0 {
		os.Exit(1)
	}
}

// scan walks the tree below root and returns the Go files which lack the
// license header.  If fix is true, the header is added to these files.
func scan(root string, fix bool, log logrus.FieldLogger) ([]string, error) {
	var missing []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) || isGenerated(body) {
			return nil
		}
		missing = append(missing, path)

		if !fix {
			log.WithField("file", path).Warn("license header missing")
			return nil
		}
		log.WithField("file", path).Info("adding license header")
		return os.WriteFile(path, append([]byte(header), body...), 0o644)
	})
	return missing, err
}

func isGenerated(body []byte) bool {
	line, _, _ := bytes.Cut(body, []byte("\n"))
	return bytes.HasPrefix(line, []byte("// Code generated ")) && bytes.HasSuffix(line, []byte(" DO NOT EDIT."))
}
