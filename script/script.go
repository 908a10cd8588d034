// Package script classifies codepoints into the script classes the
// segmentation and matching rules reason about.
package script

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class is the script class of a single rune.
type Class int

const (
	Other Class = iota
	Kanji
	Hiragana
	Katakana
	Latin
	Digit
	Punctuation
)

func (c Class) String() string {
	switch c {
	case Kanji:
		return "kanji"
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Latin:
		return "latin"
	case Digit:
		return "digit"
	case Punctuation:
		return "punctuation"
	default:
		return "other"
	}
}

// Runes with dedicated edge-case rules.
const (
	LongVowel        = 'ー'
	IterationMark    = '々'
	SmallTsu         = 'っ'
	SmallTsuKatakana = 'ッ'
	SmallE           = 'ぇ'
	MoraicNasal      = 'ん'
	MiddleDot        = '・'
)

// Classify returns the class of r. Every rune maps to exactly one class.
func Classify(r rune) Class {
	switch {
	case r == MiddleDot || r == '゠':
		return Punctuation
	case unicode.Is(unicode.Han, r):
		return Kanji
	case r >= 0x3041 && r <= 0x309F:
		return Hiragana
	case r >= 0x30A1 && r <= 0x30FF, r >= 0x31F0 && r <= 0x31FF, r >= 0xFF66 && r <= 0xFF9F:
		return Katakana
	case r >= 0x3000 && r <= 0x303F:
		if unicode.IsSpace(r) {
			return Other
		}
		return Punctuation
	case unicode.IsDigit(r):
		return Digit
	case unicode.IsLetter(r) && unicode.Is(unicode.Latin, r):
		return Latin
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return Punctuation
	default:
		return Other
	}
}

// IsKanji reports whether r is classified Kanji.
func IsKanji(r rune) bool { return Classify(r) == Kanji }

// IsHiragana reports whether r is classified Hiragana.
func IsHiragana(r rune) bool { return Classify(r) == Hiragana }

// IsKatakana reports whether r is classified Katakana (including ー).
func IsKatakana(r rune) bool { return Classify(r) == Katakana }

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	c := Classify(r)
	return c == Hiragana || c == Katakana
}

// IsJapanese reports whether r is kanji or kana.
func IsJapanese(r rune) bool { return IsKanji(r) || IsKana(r) }

// Has reports whether any rune of s is of class c.
func Has(s string, c Class) bool {
	for _, r := range s {
		if Classify(r) == c {
			return true
		}
	}
	return false
}

// All reports whether s is non-empty and every rune is of class c.
func All(s string, c Class) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if Classify(r) != c {
			return false
		}
	}
	return true
}

// AllKana reports whether s is non-empty and made only of hiragana/katakana.
func AllKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// HasKana reports whether s contains hiragana or katakana.
func HasKana(s string) bool {
	return strings.IndexFunc(s, IsKana) >= 0
}

// HasJapanese reports whether s contains any kanji or kana.
func HasJapanese(s string) bool {
	return strings.IndexFunc(s, IsJapanese) >= 0
}

// Len returns the length of s in runes.
func Len(s string) int { return utf8.RuneCountInString(s) }

// First returns the first rune of s, or utf8.RuneError when s is empty.
func First(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Last returns the last rune of s, or utf8.RuneError when s is empty.
func Last(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// KanjiSkeleton keeps only the kanji of s, in order.
func KanjiSkeleton(s string) string {
	var b strings.Builder
	for _, r := range s {
		if IsKanji(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
