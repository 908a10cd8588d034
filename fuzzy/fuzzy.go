// Package fuzzy scores how plausibly two Japanese surface forms are the
// same vocabulary item.
//
// Score takes the best of five independent heuristics, each returning 0
// when it does not apply. Every function here is symmetric in its two
// arguments; lengths are measured in runes.
package fuzzy

import (
	"strings"

	"knownwords/script"
)

// Particles may be glued to either end of a word without changing it.
const Particles = "はがでにのなとやもへおご"

// Score returns a similarity in 0..100 between a and b.
func Score(a, b string) int {
	if a == b {
		return 100
	}
	short, long := order(a, b)
	if Prune(short, long) {
		return 0
	}
	best := 0
	for _, h := range []func(string, string) int{
		KanjiSubstring,
		KanaSubstring,
		ParticleAffix,
		VerbCompound,
		KanjiSkeleton,
	} {
		if s := h(short, long); s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

// order returns a and b as (shorter, longer). Equal lengths are ordered
// lexically so callers see the same pair whichever way they pass it.
func order(a, b string) (string, string) {
	la, lb := script.Len(a), script.Len(b)
	if la < lb || (la == lb && a <= b) {
		return a, b
	}
	return b, a
}

// Prune reports whether a and b differ in length by more than the shorter
// one's length, with two extra runes allowed when the shorter is a single
// rune.
func Prune(a, b string) bool {
	short, long := order(a, b)
	ls, ll := script.Len(short), script.Len(long)
	bound := ls
	if ls == 1 {
		bound += 2
	}
	return ll-ls > bound
}

func ratio(short, long int) int {
	if long == 0 {
		return 0
	}
	return 100 * short / long
}

// KanjiSubstring scores a kanji-bearing pair where one contains the other.
func KanjiSubstring(a, b string) int {
	short, long := order(a, b)
	if !script.Has(short, script.Kanji) && !script.Has(long, script.Kanji) {
		return 0
	}
	if short == "" || !strings.Contains(long, short) {
		return 0
	}
	return ratio(script.Len(short), script.Len(long))
}

// KanaSubstring scores an all-kana pair where one of at least three runes
// is contained in the other.
func KanaSubstring(a, b string) int {
	short, long := order(a, b)
	if !script.AllKana(short) || !script.AllKana(long) || script.Len(short) < 3 {
		return 0
	}
	if !strings.Contains(long, short) {
		return 0
	}
	return ratio(script.Len(short), script.Len(long))
}

// ParticleAffix reports 100 when the longer string is the shorter with a
// single particle attached at either end (猫が, の猫).
func ParticleAffix(a, b string) int {
	short, long := order(a, b)
	rl := []rune(long)
	if len(rl)-script.Len(short) != 1 {
		return 0
	}
	if strings.ContainsRune(Particles, rl[0]) && string(rl[1:]) == short {
		return 100
	}
	if strings.ContainsRune(Particles, rl[len(rl)-1]) && string(rl[:len(rl)-1]) == short {
		return 100
	}
	return 0
}

// VerbCompound reports 100 when both strings open kanji, kana, kanji with
// the same two kanji (取り消す, 取消し). The kana infix is conjugational
// noise.
func VerbCompound(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 3 || len(rb) < 3 {
		return 0
	}
	for _, r := range [][]rune{ra, rb} {
		if !script.IsKanji(r[0]) || !script.IsKana(r[1]) || !script.IsKanji(r[2]) {
			return 0
		}
	}
	if ra[0] != rb[0] || ra[2] != rb[2] {
		return 0
	}
	return 100
}

// KanjiSkeleton compares the kanji-only subsequences of a and b when at
// least one of them mixes kana with kanji (食べた, 食べる).
func KanjiSkeleton(a, b string) int {
	if !mixed(a) && !mixed(b) {
		return 0
	}
	sa, sb := script.KanjiSkeleton(a), script.KanjiSkeleton(b)
	if sa == "" || sb == "" {
		return 0
	}
	if sa == sb {
		return 100
	}
	short, long := order(sa, sb)
	if script.Len(short) < 2 || !strings.Contains(long, short) {
		return 0
	}
	return ratio(script.Len(short), script.Len(long))
}

func mixed(s string) bool {
	return script.Has(s, script.Kanji) && script.HasKana(s)
}
