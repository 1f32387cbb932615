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

// Package profile writes CPU and memory profiles for the command line
// tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// Start begins CPU profiling if cpuprofile is non-empty.  The returned
// function stops CPU profiling and, if memprofile is non-empty, writes an
// allocation profile.  Problems which occur in the stop function are
// logged to log, since they cannot change the outcome of the run any more.
func Start(cpuprofile, memprofile string, log logrus.FieldLogger) (stop func(), err error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	var cpuFile *os.File
	if cpuprofile != "" {
		cpuFile, err = os.Create(cpuprofile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
		log.WithField("file", cpuprofile).Debug("CPU profiling started")
	}

	stop = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			if err := cpuFile.Close(); err != nil {
				log.WithError(err).Error("could not write CPU profile")
			}
		}
		if memprofile != "" {
			err := writeAllocs(memprofile)
			if err != nil {
				log.WithError(err).Error("could not write memory profile")
			}
		}
	}
	return stop, nil
}

func writeAllocs(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return fmt.Errorf("allocs profile not available")
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	err = allocs.WriteTo(f, 0)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
