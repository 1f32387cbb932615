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
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/glyphsvg/export"
	"seehuhn.de/go/glyphsvg/preview"
	"seehuhn.de/go/glyphsvg/sheet"
	"seehuhn.de/go/glyphsvg/svgdoc"
	"seehuhn.de/go/glyphsvg/tools/internal/profile"
	"seehuhn.de/go/glyphsvg/tools/internal/progress"
)

type exportFlags struct {
	fontFlags

	out     string
	size    int
	png     bool
	sheet   bool
	quiet   bool
	verbose bool

	cpuprofile string
	memprofile string
}

func newExportCmd() *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export [flags] <font>",
		Short: "write one SVG file per character",
		Example: "  glyphsvg export -o out -s 500 GoRegular.ttf\n" +
			"  glyphsvg export -o out -s 1000 --chars 'xyz' --png font.otf",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, f, args[0])
		},
	}

	f.fontFlags.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "", "output `directory`")
	fl.IntVarP(&f.size, "size", "s", 0,
		fmt.Sprintf("canvas width and height in pixels, %d to %d", export.MinSize, export.MaxSize))
	fl.BoolVar(&f.png, "png", false, "also write PNG previews")
	fl.BoolVar(&f.sheet, "sheet", false, "also write an overview to "+sheet.FileName)
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "show warnings and errors only")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "show debug messages")
	fl.StringVar(&f.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fl.StringVar(&f.memprofile, "memprofile", "", "write memory profile to `file`")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return cmd
}

func runExport(cmd *cobra.Command, f *exportFlags, fname string) error {
	stderr := cmd.ErrOrStderr()

	var bar *progress.Bar
	if !f.quiet {
		if file, ok := stderr.(*os.File); ok {
			bar = progress.New(file)
		} else {
			bar = progress.NewWriter(stderr, 0, false)
		}
	}
	log := newLogger(stderr, bar, f.quiet, f.verbose)

	stop, err := profile.Start(f.cpuprofile, f.memprofile, log)
	if err != nil {
		return err
	}
	defer stop()

	chars, err := f.set(cmd)
	if err != nil {
		return err
	}

	size := f.size
	if !cmd.Flags().Changed("size") {
		size, err = promptSize(stdin, stderr)
		if err != nil {
			return err
		}
	}
	err = export.CheckSize(size)
	if err != nil {
		return err
	}

	fnt, err := f.open(fname)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"font":    fnt.Name(),
		"backend": f.backend,
	}).Debug("font loaded")

	var sh *sheet.Sheet
	if f.sheet {
		sh = sheet.New(fnt.Name())
	}

	opt := &export.Options{
		Chars:  chars,
		Logger: log,
	}
	if bar != nil {
		opt.OnProgress = func(current, total int, r rune) {
			bar.Update(current, total, export.StatusLine(current, total, r))
		}
	}
	if f.png || sh != nil {
		opt.OnWrite = func(file export.File, doc *svgdoc.Document) error {
			if f.png {
				pngName := preview.FileName(file.Path)
				err := preview.Write(pngName, doc)
				if err != nil {
					return fmt.Errorf("preview %s: %w", pngName, err)
				}
			}
			if sh != nil {
				sh.Add(sheet.Caption(filepath.Base(file.Path), file.Char), doc)
			}
			return nil
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	target := &export.Target{Width: size, Height: size, Dir: f.out}
	res, err := export.Export(ctx, fnt, target, opt)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return err
	}

	if sh != nil {
		sheetName := filepath.Join(f.out, sheet.FileName)
		err = sh.WriteFile(sheetName)
		if err != nil {
			return &export.IOError{Op: "write", Path: sheetName, Err: err}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
	return nil
}

// newLogger returns a logger writing to w, or through the progress bar if
// one is shown.
func newLogger(w io.Writer, bar *progress.Bar, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if bar != nil {
		log.SetOutput(bar)
	} else {
		log.SetOutput(w)
	}
	switch {
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
