package read

import (
	"io"
	"os"

	"github.com/Borislavv/char-counter/internal/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Lines loads the whole file at path and returns its lines in order.
// zstd-compressed files are decompressed transparently.
func Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load lines")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "load lines")
	}
	if fi.IsDir() {
		return nil, errors.Errorf("load lines: %s: is a directory", path)
	}

	var data []byte
	if fi.Mode().IsRegular() {
		var release func()
		data, release, err = mapFile(f, fi.Size())
		if err != nil {
			return nil, errors.Wrapf(err, "load lines: map %s", path)
		}
		defer release()
	} else {
		// pipes and devices report no usable size
		if data, err = io.ReadAll(f); err != nil {
			return nil, errors.Wrapf(err, "load lines: read %s", path)
		}
	}

	if codec.IsZstd(data) {
		if data, err = decompress(data); err != nil {
			return nil, errors.Wrapf(err, "load lines: %s", path)
		}
	}

	lines, err := codec.SplitLines(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load lines: %s", path)
	}
	return lines, nil
}

func decompress(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create zstd decoder")
	}
	defer dec.Close()

	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, errors.Wrap(err, "decompress zstd")
	}
	return out, nil
}
