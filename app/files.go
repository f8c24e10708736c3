package app

import (
	"io"
	"os"

	"lightcurve/internal/errors"
)

// writeFile creates or truncates path and passes it to write.
// The file is closed on every path; a failed close is reported.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.IOError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.IOError(path, cerr)
		}
	}()

	return write(f)
}
