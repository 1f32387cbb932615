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
	"errors"
	"fmt"
	"strconv"

	"seehuhn.de/go/sfnt/glyph"
)

// Kind classifies the errors returned by Export.
type Kind int

// These are the possible error kinds.
const (
	KindNone Kind = iota
	KindFontFormat
	KindInvalidMetrics
	KindInvalidTarget
	KindOutline
	KindIO
	KindCanceled
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFontFormat:
		return "font format"
	case KindInvalidMetrics:
		return "invalid metrics"
	case KindInvalidTarget:
		return "invalid target"
	case KindOutline:
		return "outline"
	case KindIO:
		return "i/o"
	case KindCanceled:
		return "canceled"
	default:
		return "other"
	}
}

// KindOf returns the kind of an error returned by Export.
func KindOf(err error) Kind {
	var (
		formatErr  *FontFormatError
		metricsErr *InvalidMetricsError
		targetErr  *TargetError
		outlineErr *OutlineError
		ioErr      *IOError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &formatErr):
		return KindFontFormat
	case errors.As(err, &metricsErr):
		return KindInvalidMetrics
	case errors.As(err, &targetErr):
		return KindInvalidTarget
	case errors.As(err, &outlineErr):
		return KindOutline
	case errors.As(err, &ioErr):
		return KindIO
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindOther
	}
}

// FontFormatError indicates that a font cannot be used for export,
// for example because it has no Unicode mapping.
type FontFormatError struct {
	Reason string
	Err    error
}

func (err *FontFormatError) Error() string {
	reason := err.Reason
	if reason == "" {
		reason = "unsupported font"
	}
	if err.Err != nil {
		return "font format: " + reason + ": " + err.Err.Error()
	}
	return "font format: " + reason
}

func (err *FontFormatError) Unwrap() error {
	return err.Err
}

// ReasonNoUnicodeMapping is the reason given when a font has no cmap subtable
// for Unicode characters.
const ReasonNoUnicodeMapping = "no Unicode mapping found"

// InvalidMetricsError indicates that the vertical metrics of a font
// cannot be used to compute a scale factor.
type InvalidMetricsError struct {
	Ascent, Descent float64
}

func (err *InvalidMetricsError) Error() string {
	return fmt.Sprintf("invalid font metrics: ascent %g, descent %g", err.Ascent, err.Descent)
}

// TargetError indicates an invalid export target.
type TargetError struct {
	Field  string
	Reason string
}

func (err *TargetError) Error() string {
	return "invalid " + err.Field + ": " + err.Reason
}

// GlyphNotFoundError indicates that a character is not mapped to a glyph.
// Export does not return this error; the character is skipped instead.
type GlyphNotFoundError struct {
	Char rune
}

func (err *GlyphNotFoundError) Error() string {
	return "no glyph for " + strconv.QuoteRune(err.Char)
}

// OutlineError indicates that the outline of a glyph could not be traced.
type OutlineError struct {
	Char rune
	GID  glyph.ID
	Err  error
}

func (err *OutlineError) Error() string {
	return fmt.Sprintf("glyph %d (%q): %v", err.GID, err.Char, err.Err)
}

func (err *OutlineError) Unwrap() error {
	return err.Err
}

// IOError indicates that creating the output directory or writing a file
// failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return err.Op + " " + err.Path + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}
