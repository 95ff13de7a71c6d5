package codec

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidUTF8 is returned when a line cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// IsZstd reports whether b starts with a zstd frame header.
func IsZstd(b []byte) bool {
	return bytes.HasPrefix(b, zstdMagic)
}

// SplitLines splits b on '\n' and drops the '\r' of a CRLF terminator.
// A final '\n' does not produce an empty line; a final line without one is kept
// as is.
func SplitLines(b []byte) ([]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	// one copy for the whole buffer, lines are substrings of it
	s := string(b)

	n := bytes.Count(b, []byte{'\n'})
	if b[len(b)-1] != '\n' {
		n++
	}
	out := make([]string, 0, n)

	i := 0
	for i < len(s) {
		j := strings.IndexByte(s[i:], '\n')
		end := i + j
		if j < 0 {
			end = len(s)
		}
		line := s[i:end]
		if ln := len(line); j >= 0 && ln > 0 && line[ln-1] == '\r' {
			line = line[:ln-1]
		}
		if !utf8.ValidString(line) {
			return nil, errors.Wrapf(ErrInvalidUTF8, "line %d", len(out)+1)
		}
		out = append(out, line)
		if j < 0 {
			break
		}
		i = end + 1
	}
	return out, nil
}
