package segment

import (
	"context"
	"strings"
	"testing"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knownwords/normalize"
	"knownwords/tokenize"
)

func TestCorrect(t *testing.T) {
	c := NewCorrector(nil, zerolog.Nop())
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"kanji singleton joins next", []string{"小", "学生"}, []string{"小学生"}},
		{"kanji singleton joins previous", []string{"生配", "信"}, []string{"生配信"}},
		{"adjectival kana", []string{"大き", "さ"}, []string{"大きさ"}},
		{"honorific prefix", []string{"お", "茶", "を"}, []string{"お茶", "を"}},
		{"honorific prefix on last token", []string{"お", "茶"}, []string{"お茶"}},
		{"honorific suffix", []string{"田中", "さん"}, []string{"田中さん"}},
		{"potential tail", []string{"得", "られる"}, []string{"得られる"}},
		{"gaxtu tail", []string{"嫌", "がっ"}, []string{"嫌がっ"}},
		{"long ta tail", []string{"横", "たわって"}, []string{"横たわって"}},
		{"hiragana seam", []string{"食べ", "た"}, []string{"食べた"}},
		{"nasal de", []string{"読ん", "で"}, []string{"読んで"}},
		{"particle blocks seam", []string{"これ", "は"}, []string{"これ", "は"}},
		{"rewind re-examines merged token", []string{"お", "茶", "さん"}, []string{"お茶さん"}},
		{"name brackets", []string{"{", "東京", "都", "}", "に"}, []string{"東京都", "に"}},
		{"barrier blocks merge", []string{"食べ", "_", "た"}, []string{"食べ", "た"}},
		{"marker inside token", []string{"食べた_"}, []string{"食べた"}},
		{"unclosed bracket", []string{"{", "東京"}, []string{"東京"}},
		{"stray close is a barrier", []string{"猫", "}", "犬"}, []string{"猫", "犬"}},
		{"whitespace token", []string{"猫", " ", "犬"}, []string{"猫", "犬"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Correct(tt.input))
		})
	}
}

func TestCorrectWithoutRules(t *testing.T) {
	c := NewCorrector([]Rule{}, zerolog.Nop())
	assert.Equal(t, []string{"小", "学生"}, c.Correct([]string{"小", "学生"}))
}

func stripMarkers(s string) string {
	return strings.Map(func(r rune) rune {
		if normalize.IsMarker(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestCorrectPreservesText(t *testing.T) {
	n := normalize.Default()
	c := NewCorrector(nil, zerolog.Nop())
	inputs := []string{
		"東京都に行った",
		"お茶を飲みたい",
		"田中さんは本を読んでいる",
		"{猫}と犬",
		"大きさが違う。",
		"",
	}
	for _, in := range inputs {
		normalized := n.Normalize(in)
		toks, err := tokenize.ScriptRuns{}.Tokenize(context.Background(), normalized)
		require.NoError(t, err)

		got := c.Correct(toks)
		assert.Equal(t, stripMarkers(normalized), strings.Join(got, ""), in)
		for _, s := range got {
			assert.NotEmpty(t, s, in)
		}
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"猫", "犬"}, Dedupe([]string{"猫", "", "猫", "犬", "猫"}))
	assert.Empty(t, Dedupe(nil))
}

func TestPipelineSegments(t *testing.T) {
	p := NewPipeline(tokenize.ScriptRuns{}, zerolog.Nop())
	segs, err := p.Segments(context.Background(), "猫と猫")
	require.NoError(t, err)
	assert.Equal(t, []string{"猫", "と"}, segs)
}

func TestPipelineWithKagome(t *testing.T) {
	kg, err := tokenize.NewKagome("ipa", "normal")
	require.NoError(t, err)
	p := NewPipeline(kg, zerolog.Nop())

	segs, err := p.Segments(context.Background(), "東京都に行った")
	require.NoError(t, err)
	assert.Contains(t, segs, "東京都")
	assert.Contains(t, segs, "行った")

	segs, err = p.Segments(context.Background(), "食べた。飲む")
	require.NoError(t, err)
	assert.Contains(t, segs, "食べた")
	assert.Contains(t, segs, "飲む")
}

func TestPipelineHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPipeline(tokenize.ScriptRuns{}, zerolog.Nop()).Segments(ctx, "猫")
	assert.ErrorIs(t, err, context.Canceled)
}
