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
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/glyphsvg/charset"
)

func newListCmd() *cobra.Command {
	f := &fontFlags{}
	cmd := &cobra.Command{
		Use:   "list [flags] <font>",
		Short: "show the glyph used for each character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, f, args[0])
		},
	}
	f.register(cmd)
	return cmd
}

func runList(cmd *cobra.Command, f *fontFlags, fname string) error {
	chars, err := f.set(cmd)
	if err != nil {
		return err
	}
	fnt, err := f.open(fname)
	if err != nil {
		return err
	}
	cmap, err := fnt.UnicodeMapping()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "char\tcode\tglyph\tfile\tname")
	for _, r := range chars {
		glyph := "missing"
		file := "-"
		if gid := cmap.Lookup(r); gid != 0 {
			glyph = strconv.Itoa(int(gid))
			file = charset.FileName(r)
		}
		fmt.Fprintf(w, "%c\tU+%04X\t%s\t%s\t%s\n", r, r, glyph, file, runenames.Name(r))
	}
	return w.Flush()
}
