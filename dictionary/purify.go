package dictionary

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	punctuation = regexp.MustCompile(`[\p{P}\p{S}\s]+`)
	latin       = regexp.MustCompile(`\p{Latin}+`)
	suruForms   = regexp.MustCompile(`(?:をする|する|します)+$`)
)

// Purify strips punctuation, whitespace and Latin runs from s, then any
// trailing する ending provided something is left over.
func Purify(s string) string {
	s = punctuation.ReplaceAllString(s, "")
	s = latin.ReplaceAllString(s, "")
	if stripped := suruForms.ReplaceAllString(s, ""); stripped != "" {
		s = stripped
	}
	return s
}

// Purifier memoizes Purify for one run. The list is rescanned from the top
// for every segment, so each entry is purified once and then served from
// the cache.
type Purifier struct {
	cache *lru.Cache[string, string]
}

// NewPurifier returns a Purifier whose cache holds size entries. Sizing it
// to the known-word list means nothing is evicted during a run.
func NewPurifier(size int) (*Purifier, error) {
	if size < 1 {
		size = 1
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("purify cache: %w", err)
	}
	return &Purifier{cache: cache}, nil
}

// Purify returns the purified form of s, computing it at most once.
func (p *Purifier) Purify(s string) string {
	if v, ok := p.cache.Get(s); ok {
		return v
	}
	v := Purify(s)
	p.cache.Add(s, v)
	return v
}

// Len returns the number of cached entries.
func (p *Purifier) Len() int { return p.cache.Len() }

// Reset empties the cache.
func (p *Purifier) Reset() { p.cache.Purge() }
