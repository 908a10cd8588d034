// Package stopwords decides which segments are grammatical residue rather
// than vocabulary, so the classifier can leave them out of the total.
package stopwords

import (
	"strings"

	"knownwords/script"
)

// Reason names the condition that banned a segment.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonAffixedStop    Reason = "affixed-stopword"
	ReasonShortHiragana  Reason = "short-hiragana"
	ReasonKatakanaSingle Reason = "single-katakana"
	ReasonStopword       Reason = "stopword"
	ReasonPunctuation    Reason = "punctuation"
	ReasonNotJapanese    Reason = "not-japanese"
	ReasonBannedAux      Reason = "banned-auxiliary"
	ReasonLeadingLong    Reason = "leading-long-vowel"
	ReasonShortLong      Reason = "short-long-vowel"
	ReasonMixedKana      Reason = "mixed-kana-pair"
)

// Closed word lists. Base (Grammar and Terms) is also matched with one
// rune trimmed from either end; the extended set is matched verbatim.
var (
	Grammar = []string{
		"は", "が", "を", "に", "で", "と", "も", "の", "へ", "や", "か", "よ", "ね", "な", "わ", "ぞ", "さ",
		"から", "まで", "より", "だけ", "しか", "など", "ので", "のに", "けど", "けれど", "けれども",
		"でも", "って", "とか", "ばかり", "くらい", "ぐらい", "ながら", "たり", "だり", "ほど", "こそ",
		"さえ", "すら", "なら", "ずつ", "には", "では", "とは", "へは", "にも", "でも", "とも",
		"これ", "それ", "あれ", "どれ", "ここ", "そこ", "あそこ", "どこ", "この", "その", "あの", "どの",
		"こう", "そう", "ああ", "どう", "こんな", "そんな", "あんな", "どんな", "だれ", "なに", "なん",
		"わたし", "あなた", "かれ", "かのじょ", "ぼく", "おれ", "みんな",
	}
	Terms = []string{
		"する", "します", "した", "して", "しない", "いる", "います", "いた", "いて", "ある", "あります",
		"あった", "なる", "なります", "なった", "できる", "いう", "いった", "言う", "思う", "こと", "もの",
		"ところ", "とき", "ため", "はず", "わけ", "よう", "です", "でした", "だ", "だった", "である",
		"ない", "なかった", "くる", "きた", "くれる", "もらう", "あげる", "おく", "しまう", "みる",
	}
	Auxiliaries = []string{
		"たい", "たく", "たかった", "れる", "られる", "せる", "させる", "ます", "ました", "ません",
		"ましょう", "らしい", "みたい", "そうだ", "だろう", "でしょう", "ようだ", "べき", "まい",
		"ちゃう", "じゃう", "ちゃった", "じゃない", "ください", "なさい",
	}
	Modifiers = []string{
		"とても", "すごく", "すごい", "少し", "もう", "まだ", "また", "よく", "ちょっと", "かなり",
		"全然", "本当", "本当に", "やはり", "やっぱり", "たぶん", "きっと", "必ず", "ずっと", "いつも",
		"たくさん", "いっぱい", "あまり", "ほとんど", "すぐ", "もっと", "一番", "ぜひ", "なぜ", "どうして",
	}
)

// bannedAux may neither open nor close a word.
const bannedAux = "っッぇ"

var (
	base     = index(Grammar, Terms)
	extended = index(Grammar, Terms, Auxiliaries, Modifiers)
)

func index(lists ...[]string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, l := range lists {
		for _, w := range l {
			m[w] = struct{}{}
		}
	}
	return m
}

// Banned reports whether seg should be excluded from classification and
// the first condition that applies.
func Banned(seg string) (bool, Reason) {
	r := []rune(seg)
	n := len(r)

	if n >= 3 {
		if _, ok := base[string(r[1:])]; ok {
			return true, ReasonAffixedStop
		}
		if _, ok := base[string(r[:n-1])]; ok {
			return true, ReasonAffixedStop
		}
	}

	hasKanji := script.Has(seg, script.Kanji)
	hasHira := script.Has(seg, script.Hiragana)
	hasKata := script.Has(seg, script.Katakana)

	switch {
	case n <= 2 && hasHira && !hasKanji && !hasKata:
		return true, ReasonShortHiragana
	case n == 1 && hasKata:
		return true, ReasonKatakanaSingle
	}
	if _, ok := extended[seg]; ok {
		return true, ReasonStopword
	}
	switch {
	case !strings.ContainsRune(seg, script.IterationMark) && script.Has(seg, script.Punctuation):
		return true, ReasonPunctuation
	case !script.HasJapanese(seg):
		return true, ReasonNotJapanese
	case strings.ContainsRune(bannedAux, r[0]) || strings.ContainsRune(bannedAux, r[n-1]):
		return true, ReasonBannedAux
	case r[0] == script.LongVowel:
		return true, ReasonLeadingLong
	case n <= 3 && r[n-1] == script.LongVowel:
		return true, ReasonShortLong
	case n == 2 && hasKata && hasHira:
		return true, ReasonMixedKana
	}
	return false, ReasonNone
}
