//go:build linux

package read

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps f read-only. The returned bytes are valid until release is called.
func mapFile(f *os.File, size int64) ([]byte, func(), error) {
	if size == 0 {
		return nil, func() {}, nil
	}

	// Best-effort kernel hints for a single sequential scan.
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, func() { _ = unix.Munmap(data) }, nil
}
