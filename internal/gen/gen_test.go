package gen

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Borislavv/char-counter/internal/count"
	"github.com/Borislavv/char-counter/internal/read"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_SizeAndShape(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, 10000, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.GreaterOrEqual(t, n, int64(10000))
	assert.True(t, utf8.Valid(buf.Bytes()))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWrite_Deterministic(t *testing.T) {
	var a, b, c bytes.Buffer
	_, err := Write(&a, 4096, 7)
	require.NoError(t, err)
	_, err = Write(&b, 4096, 7)
	require.NoError(t, err)
	_, err = Write(&c, 4096, 8)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func TestTextFile_PlainAndZstdLoadTheSame(t *testing.T) {
	dir := t.TempDir()
	plain, err := TextFile(dir, 1<<16, 3, false)
	require.NoError(t, err)
	packed, err := TextFile(dir, 1<<16, 3, true)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(packed, ".zst"))

	pi, err := os.Stat(plain)
	require.NoError(t, err)
	zi, err := os.Stat(packed)
	require.NoError(t, err)
	assert.Less(t, zi.Size(), pi.Size())

	a, err := read.Lines(plain)
	require.NoError(t, err)
	b, err := read.Lines(packed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, count.Chars(a), count.Parallel(b, 4))
}

func TestTextFile_InvalidSize(t *testing.T) {
	_, err := TextFile(t.TempDir(), 0, 1, false)
	require.Error(t, err)
}
