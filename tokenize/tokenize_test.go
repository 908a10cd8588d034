package tokenize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"kanji then kana", "食べた", []string{"食", "べた"}},
		{"markers split alone", "食べた_{東京}", []string{"食", "べた", "_", "{", "東京", "}"}},
		{"long vowel follows run", "すごーいラーメン", []string{"すごーい", "ラーメン"}},
		{"punctuation per rune", "。。", []string{"。", "。"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScriptRuns{}.Tokenize(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, CheckCoverage(tt.input, got))
		})
	}
}

func TestCheckCoverage(t *testing.T) {
	assert.NoError(t, CheckCoverage("猫が", []string{"猫", "が"}))
	assert.ErrorIs(t, CheckCoverage("猫が", []string{"猫"}), ErrCoverage)
	assert.ErrorIs(t, CheckCoverage("猫", []string{"猫", ""}), ErrCoverage)
}

func TestNewKagomeRejectsUnknownNames(t *testing.T) {
	_, err := NewKagome("neologd", "")
	assert.ErrorIs(t, err, ErrUnknownDict)
	_, err = NewKagome("ipa", "fast")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestKagomeCoversInput(t *testing.T) {
	kg, err := NewKagome("ipa", "normal")
	require.NoError(t, err)

	inputs := []string{
		"秋田県仙北市は市内を流れる入見内川の水位が高まっている",
		"食べた_{東京都}に_行った_",
		"",
	}
	for _, in := range inputs {
		toks, err := kg.Tokenize(context.Background(), in)
		require.NoError(t, err)
		assert.NoError(t, CheckCoverage(in, toks), in)
	}
}

func TestTokenizeHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScriptRuns{}.Tokenize(ctx, "猫")
	assert.ErrorIs(t, err, context.Canceled)
}
