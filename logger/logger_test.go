package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "json", &buf)
	require.NoError(t, err)

	log.Debug().Str("segment", "猫").Msg("new")
	log.Trace().Msg("dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "猫", line["segment"])
	assert.Equal(t, "new", line["message"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "console", &buf)
	require.NoError(t, err)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNewRejects(t *testing.T) {
	_, err := New("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New("info", "xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLogJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	require.NoError(t, InitLogs(dir))
	_, err := os.Stat(filepath.Join(dir, "old.json"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))

	require.NoError(t, LogJSON(dir, "report", map[string]int{"matches": 1}))
	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"matches":1}`, string(data))
	assert.NoFileExists(t, filepath.Join(dir, "report.json.tmp"))
}

func TestInitLogsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitLogs(dir))
	assert.DirExists(t, dir)
}
