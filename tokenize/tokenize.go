// Package tokenize adapts first-pass segmenters to the contract the
// boundary corrector relies on: an ordered list of non-empty substrings
// whose concatenation is exactly the input.
package tokenize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"knownwords/script"
)

// Tokenizer produces a plausible first-pass segmentation. Word boundaries
// are not trusted downstream; only coverage of the input is.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}

var (
	// ErrCoverage reports tokens that do not reproduce their input.
	ErrCoverage = errors.New("tokens do not cover input")
	// ErrUnknownDict reports an unsupported system dictionary name.
	ErrUnknownDict = errors.New("unknown dictionary")
	// ErrUnknownMode reports an unsupported kagome mode name.
	ErrUnknownMode = errors.New("unknown tokenizer mode")
)

// Kagome tokenizes with github.com/ikawaha/kagome.
type Kagome struct {
	kg   *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
}

// NewKagome builds a kagome tokenizer over the named system dictionary
// ("ipa" or "uni") in the named mode ("normal", "search" or "extended").
// Empty names select ipa and normal.
func NewKagome(dictName, modeName string) (*Kagome, error) {
	d, err := systemDict(dictName)
	if err != nil {
		return nil, err
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return nil, err
	}
	// omit BOS/EOS so every token carries a surface
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome: %w", err)
	}
	return &Kagome{kg: kg, mode: mode}, nil
}

func systemDict(name string) (*dict.Dict, error) {
	switch strings.ToLower(name) {
	case "", "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, name)
	}
}

func parseMode(name string) (tokenizer.TokenizeMode, error) {
	switch strings.ToLower(name) {
	case "", "normal":
		return tokenizer.Normal, nil
	case "search":
		return tokenizer.Search, nil
	case "extended":
		return tokenizer.Extended, nil
	default:
		return tokenizer.Normal, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Tokenize returns kagome's surfaces for text.
func (k *Kagome) Tokenize(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	ktoks := k.kg.Analyze(text, k.mode)
	out := make([]string, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Surface == "" {
			continue
		}
		out = append(out, kt.Surface)
	}
	return out, nil
}

// ScriptRuns splits text wherever the script class changes, keeping the
// prolonged sound mark with the run before it. It is deterministic and
// dictionary-free, a rough stand-in for a statistical segmenter.
type ScriptRuns struct{}

// Tokenize splits text into runs of a single script class.
func (ScriptRuns) Tokenize(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		out  []string
		cur  strings.Builder
		prev script.Class
	)
	for _, r := range text {
		c := script.Classify(r)
		if r == script.LongVowel && cur.Len() > 0 {
			c = prev
		}
		if cur.Len() > 0 && (c != prev || c == script.Punctuation || c == script.Other) {
			out = append(out, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
		prev = c
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out, nil
}

// CheckCoverage verifies the adapter contract for tokens produced from text.
func CheckCoverage(text string, tokens []string) error {
	var b strings.Builder
	b.Grow(len(text))
	for i, t := range tokens {
		if t == "" {
			return fmt.Errorf("%w: empty token at %d", ErrCoverage, i)
		}
		b.WriteString(t)
	}
	if b.String() != text {
		return fmt.Errorf("%w: got %q want %q", ErrCoverage, b.String(), text)
	}
	return nil
}
