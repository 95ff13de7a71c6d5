//go:build !linux

package read

import (
	"io"
	"os"
)

// mapFile falls back to a plain read where mmap hints are unavailable.
func mapFile(f *os.File, size int64) ([]byte, func(), error) {
	data, err := io.ReadAll(io.LimitReader(f, size))
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
