package segment

import (
	"strings"

	"knownwords/normalize"
	"knownwords/script"
)

// Buffer is the growable token sequence the corrector works on. Empty
// entries are barriers: no rule merges across them, and they are purged
// once the pass is over.
type Buffer []string

func (b Buffer) at(i int) string {
	if i < 0 || i >= len(b) {
		return ""
	}
	return b[i]
}

// absorbNext appends b[i+1] onto b[i] and removes b[i+1].
func (b *Buffer) absorbNext(i int) {
	s := *b
	s[i] += s[i+1]
	*b = append(s[:i+1], s[i+2:]...)
}

// Rule is one recombination rule. Match inspects the buffer at cursor i;
// Apply performs the merge and returns the cursor to examine next.
type Rule struct {
	Name  string
	Match func(b Buffer, i int) bool
	Apply func(b *Buffer, i int) int
}

// Closed sets used by the rules below.
var (
	adjectivalKana    = set("い", "さ", "ず", "み", "め")
	honorificPrefixes = set("ご", "お")
	honorificSuffixes = set(
		"殿", "様", "さま", "氏", "さん", "君", "くん", "ちゃん", "坊",
		"達", "たち", "たちも", "だち", "ら",
	)
	boundaryParticles = set(
		"は", "が", "に", "を", "の", "な", "と", "や", "も", "へ",
		"お", "ご", "で", "よ", "ね",
	)
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func in(m map[string]struct{}, s string) bool {
	_, ok := m[s]
	return ok
}

func isBracket(s string) bool {
	return s == normalize.OpenName || s == normalize.CloseName
}

// word reports whether s is an ordinary token: not a barrier, not a bracket.
func word(s string) bool {
	return s != "" && !isBracket(s)
}

// pair reports whether b[i] and b[i+1] are both ordinary tokens.
func pair(b Buffer, i int) bool {
	return word(b.at(i)) && word(b.at(i + 1))
}

func stay(b *Buffer, i int) int {
	b.absorbNext(i)
	return i
}

// plainKanji reports whether s carries kanji and no kana.
func plainKanji(s string) bool {
	return script.Has(s, script.Kanji) && !script.Has(s, script.Hiragana) && !script.Has(s, script.Katakana)
}

// DefaultRules returns the recombination rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			// {name} reassembly: everything up to the closing bracket
			// becomes one token; the closing bracket becomes a barrier.
			Name:  "name-brackets",
			Match: func(b Buffer, i int) bool { return b[i] == normalize.OpenName },
			Apply: func(b *Buffer, i int) int {
				s := *b
				closing := -1
				for j := i + 1; j < len(s); j++ {
					if s[j] == normalize.CloseName {
						closing = j
						break
					}
				}
				if closing < 0 {
					s[i] = ""
					return i
				}
				var name strings.Builder
				for _, t := range s[i+1 : closing] {
					if !isBracket(t) {
						name.WriteString(t)
					}
				}
				s[i] = name.String()
				s[i+1] = ""
				*b = append(s[:i+2], s[closing+1:]...)
				return i
			},
		},
		{
			Name:  "stray-close",
			Match: func(b Buffer, i int) bool { return b[i] == normalize.CloseName },
			Apply: func(b *Buffer, i int) int {
				(*b)[i] = ""
				return i
			},
		},
		{
			// 小 + 学生 → 小学生
			Name: "kanji-singleton-next",
			Match: func(b Buffer, i int) bool {
				return pair(b, i) && script.Len(b[i]) == 1 && script.IsKanji(script.First(b[i])) &&
					plainKanji(b[i+1])
			},
			Apply: stay,
		},
		{
			// 生配 + 信 → 生配信
			Name: "kanji-singleton-tail",
			Match: func(b Buffer, i int) bool {
				return pair(b, i) && script.Len(b[i+1]) == 1 && script.IsKanji(script.Last(b[i])) &&
					plainKanji(b[i+1])
			},
			Apply: stay,
		},
		{
			// 大き + さ → 大きさ
			Name: "adjectival-kana",
			Match: func(b Buffer, i int) bool {
				if !pair(b, i) || script.Len(b[i]) < 2 || !in(adjectivalKana, b[i+1]) {
					return false
				}
				last := script.Last(b[i])
				return script.IsHiragana(last) || script.IsKanji(last)
			},
			Apply: stay,
		},
		{
			// お + 茶 → お茶; the prefix is the left neighbour, so the
			// merged token sits one position back.
			Name: "honorific-prefix",
			Match: func(b Buffer, i int) bool {
				return word(b[i]) && i > 0 && in(honorificPrefixes, b[i-1])
			},
			Apply: func(b *Buffer, i int) int {
				b.absorbNext(i - 1)
				return i - 1
			},
		},
		{
			// 田中 + さん → 田中さん
			Name: "honorific-suffix",
			Match: func(b Buffer, i int) bool {
				return pair(b, i) && in(honorificSuffixes, b[i+1])
			},
			Apply: stay,
		},
		{
			// 得 + られる, 嫌 + がっ, 横 + たわって, 待 + てれば
			Name: "auxiliary-tail",
			Match: func(b Buffer, i int) bool {
				if !pair(b, i) || !script.Has(b[i], script.Kanji) {
					return false
				}
				next := b[i+1]
				long := script.Len(next) > 1
				return strings.HasPrefix(next, "ら") || next == "がっ" ||
					(long && strings.HasPrefix(next, "た")) ||
					(long && strings.HasPrefix(next, "て"))
			},
			Apply: stay,
		},
		{
			// 食べ + た → 食べた, unless either side is a bare particle
			Name: "particle-boundary",
			Match: func(b Buffer, i int) bool {
				return hiraganaSeam(b, i) && !in(boundaryParticles, b[i]) && !in(boundaryParticles, b[i+1])
			},
			Apply: stay,
		},
		{
			// 読ん + で → 読んで, even though で is a particle
			Name: "nasal-de",
			Match: func(b Buffer, i int) bool {
				return hiraganaSeam(b, i) && script.Last(b[i]) == script.MoraicNasal && b[i+1] == "で"
			},
			Apply: stay,
		},
	}
}

// hiraganaSeam reports a multi-rune token ending in hiragana followed by a
// token starting with hiragana.
func hiraganaSeam(b Buffer, i int) bool {
	return pair(b, i) && script.Len(b[i]) > 1 &&
		script.IsHiragana(script.Last(b[i])) && script.IsHiragana(script.First(b[i+1]))
}
