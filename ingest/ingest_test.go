package ingest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func decode(t *testing.T, raw, enc string) string {
	t.Helper()
	r, err := NewReader(strings.NewReader(raw), enc)
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestNewReader(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String("食べる\t1\n")
	require.NoError(t, err)
	euc, err := japanese.EUCJP.NewEncoder().String("飲む")
	require.NoError(t, err)

	assert.Equal(t, "食べる\t1\n", decode(t, sjis, "shift_jis"))
	assert.Equal(t, "飲む", decode(t, euc, "EUC-JP"))
	assert.Equal(t, "猫", decode(t, "\xEF\xBB\xBF猫", "utf-8"))
	assert.Equal(t, "猫", decode(t, "猫", ""))
	assert.Equal(t, "a", decode(t, "a", "utf-8"))
	assert.Equal(t, "", decode(t, "", "utf-8"))
}

func TestNewReaderRejectsUnknownEncoding(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "latin1")
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF東京都に行った"), 0o644))

	got, err := ReadFile(path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "東京都に行った", got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), "utf-8")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("食べる\n"), 0o644))

	r, c, err := Open(path, "utf-8")
	require.NoError(t, err)
	defer c.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "食べる\n", string(data))
}
