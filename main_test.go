package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knownwords/config"
	"knownwords/dictionary"
	"knownwords/model"
)

func writeInputs(t *testing.T, words, text string) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		KnownWords: filepath.Join(dir, "words.tsv"),
		Text:       filepath.Join(dir, "text.txt"),
		Delimiter:  "\t",
		Encoding:   "utf-8",
		Tokenizer:  "runs",
		ListNew:    true,
		Report:     filepath.Join(dir, "report"),
	}
	require.NoError(t, os.WriteFile(cfg.KnownWords, []byte(words), 0o644))
	require.NoError(t, os.WriteFile(cfg.Text, []byte(text), 0o644))
	return cfg
}

func TestClassifyFiles(t *testing.T) {
	cfg := writeInputs(t, "食べる\tto eat\n", "食べた。飲む")

	var out bytes.Buffer
	require.NoError(t, classifyFiles(context.Background(), cfg, zerolog.Nop(), &out))

	assert.Contains(t, out.String(), "unique words (known/total): 1 / 2 (50% known), 1 new")
	assert.Contains(t, out.String(), "飲\n")

	data, err := os.ReadFile(filepath.Join(cfg.Report, "report.json"))
	require.NoError(t, err)
	var rep struct {
		Tally model.Tally `json:"tally"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, 1, rep.Tally.Matches)
	assert.Equal(t, []string{"飲"}, rep.Tally.NewWords)
}

func TestClassifyFilesWithKagome(t *testing.T) {
	cfg := writeInputs(t, "食べる\tto eat\n", "食べた。飲む")
	cfg.Tokenizer = "kagome"
	cfg.Dict = "ipa"
	cfg.Mode = "normal"

	var out bytes.Buffer
	require.NoError(t, classifyFiles(context.Background(), cfg, zerolog.Nop(), &out))

	assert.Contains(t, out.String(), "unique words (known/total): 1 / 2 (50% known), 1 new")
	assert.Contains(t, out.String(), "飲む\n")
}

func TestClassifyFilesStopsOnUnresolvedColumn(t *testing.T) {
	cfg := writeInputs(t, "word\tmeaning\n食べる\n", "食べた")
	cfg.Column = 1

	var out bytes.Buffer
	err := classifyFiles(context.Background(), cfg, zerolog.Nop(), &out)
	assert.ErrorIs(t, err, dictionary.ErrColumnUnresolved)
	assert.Empty(t, out.String())
	assert.NoDirExists(t, cfg.Report)
}

func TestClassifyFilesMissingText(t *testing.T) {
	cfg := writeInputs(t, "食べる\n", "")
	cfg.Text = filepath.Join(t.TempDir(), "missing.txt")
	assert.ErrorIs(t, classifyFiles(context.Background(), cfg, zerolog.Nop(), &bytes.Buffer{}), os.ErrNotExist)
}

func TestRenderSummary(t *testing.T) {
	s := renderSummary(model.Tally{Matches: 2, Total: 3, NewWords: []string{"猫"}, Banned: []string{"は"}})
	assert.Contains(t, s, "unique words (known/total): 2 / 3 (66% known), 1 new")
	assert.Contains(t, s, "1 segments left out")
}

func TestDisplayWithoutBar(t *testing.T) {
	var out bytes.Buffer
	d := &display{w: &out}
	d.start(0)
	d.update(model.Tally{Total: 1})
	d.finish(model.Tally{})
	assert.Contains(t, out.String(), "0 / 0 (0% known)")
}
