package gen

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// alphabet is ordered by how often Write picks a rune: the head dominates.
var alphabet = []rune("etaoinshrdlucmfwypvbgkjqxz ETAOINSHRDLU0123456789.,;:!?-äöüßéñжщя日本語🙂")

// Write emits lines of pseudo-random words until at least size bytes are written.
// The output only depends on size and seed.
func Write(w io.Writer, size, seed int64) (int64, error) {
	r := rand.New(rand.NewSource(seed))
	bw := bufio.NewWriterSize(w, 1<<20)

	var written int64
	line := make([]byte, 0, 256)
	for written < size {
		line = line[:0]
		words := 1 + r.Intn(12)
		for i := 0; i < words; i++ {
			if i > 0 {
				line = append(line, ' ')
			}
			for j, n := 0, 1+r.Intn(10); j < n; j++ {
				// product of two uniforms skews towards the head of the alphabet
				idx := int(float64(len(alphabet)) * r.Float64() * r.Float64())
				line = utf8.AppendRune(line, alphabet[idx])
			}
		}
		line = append(line, '\n')

		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// TextFile writes a generated corpus of at least size bytes into dir (the
// system temp dir when empty) and returns its path. With compress set the
// file is a zstd stream.
func TextFile(dir string, size, seed int64, compress bool) (string, error) {
	if size <= 0 {
		return "", errors.Errorf("invalid size %d: must be > 0", size)
	}
	if dir == "" {
		dir = os.TempDir()
	}
	pattern := "chars-*.txt"
	if compress {
		pattern += ".zst"
	}

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", errors.Wrap(err, "create corpus file")
	}
	path := f.Name()

	if err = writeTo(f, size, seed, compress); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "write corpus %s", path)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "close corpus %s", path)
	}
	return path, nil
}

func writeTo(f *os.File, size, seed int64, compress bool) error {
	if !compress {
		_, err := Write(f, size, seed)
		return err
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return errors.Wrap(err, "create zstd encoder")
	}
	if _, err = Write(enc, size, seed); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
