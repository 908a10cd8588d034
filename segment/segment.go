// Package segment repairs first-pass tokenizer output into candidate
// vocabulary segments.
//
// The corrector makes a single left-to-right pass with an explicit cursor.
// At each position the rules are tried in priority order and the first
// match is applied; its Apply returns where the cursor goes next (the same
// index for rightward absorption, one back when the left neighbour was
// consumed). The cursor only advances when no rule matches. Every merge
// shrinks the buffer, so the pass is linear in the number of tokens.
package segment

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"knownwords/normalize"
	"knownwords/tokenize"
)

// Corrector applies an ordered rule table to token sequences.
type Corrector struct {
	rules []Rule
	log   zerolog.Logger
}

// NewCorrector returns a Corrector over rules; nil selects DefaultRules.
func NewCorrector(rules []Rule, log zerolog.Logger) *Corrector {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Corrector{rules: rules, log: log}
}

// Correct returns the corrected sequence with markers resolved and
// barriers purged. Concatenating the result gives the concatenated input
// minus every marker character.
func (c *Corrector) Correct(tokens []string) []string {
	buf := isolate(tokens)
	for i := 0; i < len(buf); {
		next, fired := c.step(&buf, i)
		if !fired {
			i++
			continue
		}
		if next < 0 {
			next = 0
		}
		i = next
	}
	out := make([]string, 0, len(buf))
	for _, t := range buf {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (c *Corrector) step(buf *Buffer, i int) (int, bool) {
	for _, r := range c.rules {
		if !r.Match(*buf, i) {
			continue
		}
		if e := c.log.Trace(); e.Enabled() {
			e.Str("rule", r.Name).Int("at", i).Str("token", (*buf)[i]).Msg("recombine")
		}
		return r.Apply(buf, i), true
	}
	return i, false
}

// isolate splits tokens around marker characters. A run of boundary
// markers or whitespace becomes a single empty barrier, each name bracket
// becomes a standalone entry, and everything else keeps its text.
func isolate(tokens []string) Buffer {
	buf := make(Buffer, 0, len(tokens))
	barrier := func() {
		if len(buf) > 0 && buf[len(buf)-1] == "" {
			return
		}
		buf = append(buf, "")
	}
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		buf = append(buf, cur.String())
		cur.Reset()
	}
	for _, t := range tokens {
		for _, r := range t {
			switch {
			case string(r) == normalize.Boundary:
				flush()
				barrier()
			case string(r) == normalize.OpenName, string(r) == normalize.CloseName:
				flush()
				buf = append(buf, string(r))
			case unicode.IsSpace(r):
				flush()
				barrier()
			default:
				cur.WriteRune(r)
			}
		}
		flush()
	}
	return buf
}

// Dedupe drops empty strings and repeated surface forms, keeping the first
// occurrence of each.
func Dedupe(segs []string) []string {
	seen := make(map[string]struct{}, len(segs))
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Pipeline turns raw text into unique candidate segments.
type Pipeline struct {
	Normalizer *normalize.Normalizer
	Tokenizer  tokenize.Tokenizer
	Corrector  *Corrector
	Log        zerolog.Logger
}

// NewPipeline wires the default normalizer and corrector around tk.
func NewPipeline(tk tokenize.Tokenizer, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		Normalizer: normalize.Default(),
		Tokenizer:  tk,
		Corrector:  NewCorrector(nil, log),
		Log:        log,
	}
}

// Segments normalizes, tokenizes, corrects and deduplicates text.
func (p *Pipeline) Segments(ctx context.Context, text string) ([]string, error) {
	normalized, steps := p.Normalizer.Trace(text)
	if e := p.Log.Debug(); e.Enabled() {
		names := make([]string, len(steps))
		for i, s := range steps {
			names[i] = s.Rule
		}
		e.Strs("rules", names).Int("runes", len([]rune(normalized))).Msg("normalized text")
	}

	tokens, err := p.Tokenizer.Tokenize(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if err := tokenize.CheckCoverage(normalized, tokens); err != nil {
		return nil, err
	}

	corrected := p.Corrector.Correct(tokens)
	segs := Dedupe(corrected)
	p.Log.Debug().
		Int("tokens", len(tokens)).
		Int("corrected", len(corrected)).
		Int("unique", len(segs)).
		Msg("segmented text")
	return segs, nil
}
