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

// Package charset defines which characters are exported and the names of
// the files they are written to.
package charset

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Set is an ordered sequence of characters.
// The order determines the order of export and of progress reports.
type Set []rune

// Default contains the uppercase Latin letters, the lowercase Latin letters,
// the ten digits, period and comma.
var Default = Set([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,"))

func (s Set) String() string {
	return string(s)
}

// Parse converts a string into a character set.
//
// Every character must be usable as part of a file name, and no character
// may be repeated.
func Parse(chars string) (Set, error) {
	if chars == "" {
		return nil, errEmpty
	}
	if !utf8.ValidString(chars) {
		return nil, errors.New("charset: invalid UTF-8")
	}

	var res Set
	for _, r := range chars {
		if !usable(r) {
			return nil, fmt.Errorf("charset: %U cannot be used in a file name", r)
		}
		if slices.Contains(res, r) {
			return nil, fmt.Errorf("charset: duplicate character %q", r)
		}
		res = append(res, r)
	}
	return res, nil
}

func usable(r rune) bool {
	switch {
	case r == '/' || r == '\\' || r == 0:
		return false
	case unicode.IsControl(r):
		return false
	case !unicode.IsGraphic(r):
		return false
	}
	return true
}

// IsUpperLatin reports whether r is one of the letters A to Z.
func IsUpperLatin(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// FileName returns the name of the SVG file for character r.
//
// Uppercase Latin letters get a "!" prefix, so that "A" and "a" map to
// different files on case-insensitive file systems.
// The period maps to "..svg".
func FileName(r rune) string {
	return BaseName(r) + ".svg"
}

// BaseName returns the file name for r without the ".svg" extension.
func BaseName(r rune) string {
	if IsUpperLatin(r) {
		return "!" + string(r)
	}
	return string(r)
}

var errEmpty = errors.New("charset: empty character set")
