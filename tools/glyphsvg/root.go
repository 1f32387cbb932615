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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/glyphsvg/charset"
	"seehuhn.de/go/glyphsvg/export"
	"seehuhn.de/go/glyphsvg/fontfile"
	"seehuhn.de/go/glyphsvg/fontfile/xfont"
	"seehuhn.de/go/glyphsvg/tools/internal/buildinfo"
)

// stdin is where the canvas size is read from, if it is not given on the
// command line.
var stdin = os.Stdin

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "glyphsvg",
		Short: "export font glyphs as SVG files",
		Long: buildinfo.Short("glyphsvg") + "\n\n" +
			"Glyphsvg writes one SVG file per character of a TrueType or\n" +
			"OpenType font.  All glyphs share one scale, so that the files\n" +
			"can be combined without further adjustment.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExportCmd(), newListCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Short("glyphsvg"))
			return nil
		},
	}
}

// fontFlags are shared by all commands which read a font.
type fontFlags struct {
	chars   string
	backend string
}

func (f *fontFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.chars, "chars", charset.Default.String(), "characters to process")
	fl.StringVar(&f.backend, "backend", "sfnt", `font parser, "sfnt" or "x"`)
}

// set returns the character set selected on the command line.
func (f *fontFlags) set(cmd *cobra.Command) (charset.Set, error) {
	if !cmd.Flags().Changed("chars") {
		return charset.Default, nil
	}
	return charset.Parse(f.chars)
}

type sourceFont interface {
	export.Font
	Name() string
}

func (f *fontFlags) open(fname string) (sourceFont, error) {
	switch f.backend {
	case "sfnt":
		fnt, err := fontfile.Open(fname)
		if err != nil {
			return nil, err
		}
		return fnt, nil
	case "x":
		fnt, err := xfont.Open(fname)
		if err != nil {
			return nil, err
		}
		return fnt, nil
	default:
		return nil, fmt.Errorf("unknown font backend %q", f.backend)
	}
}
