package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins writing a wall-clock profile (pprof format) to the
// named file. Calling stop finishes the profile and closes the file.
func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProf := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProf(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
