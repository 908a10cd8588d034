// Package normalize rewrites raw Japanese text before tokenization.
//
// An ordered table of context rules inserts the boundary marker at the
// seams the tokenizer tends to get wrong (verb endings, particles before
// kanji, katakana runs, counters) and brackets known place names so the
// boundary corrector can reassemble them into a single segment.
//
// Rule order is part of the contract: every rule sees the output of the
// rules before it, and later patterns are written assuming the markers the
// earlier ones insert.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"knownwords/script"
)

// Marker characters. They never survive the boundary corrector.
const (
	Boundary  = "_"
	OpenName  = "{"
	CloseName = "}"
)

// IsMarker reports whether r is one of the marker characters.
func IsMarker(r rune) bool {
	return r == '_' || r == '{' || r == '}'
}

// Rule is a single pure string rewrite. Exactly one of Pattern or Func is set.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
	Func    func(string) string
}

// Apply runs the rule over text.
func (r Rule) Apply(text string) string {
	if r.Func != nil {
		return r.Func(text)
	}
	return r.Pattern.ReplaceAllString(text, r.Replace)
}

// Step records the effect of one rule, as produced by Trace.
type Step struct {
	Rule   string `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Normalizer applies its rules strictly in order.
type Normalizer struct {
	rules []Rule
}

// New returns a Normalizer over the given rules, in the order given.
func New(rules []Rule) *Normalizer {
	return &Normalizer{rules: append([]Rule(nil), rules...)}
}

// Default returns a Normalizer over DefaultRules.
func Default() *Normalizer {
	return New(DefaultRules())
}

// Rules returns a copy of the rule table.
func (n *Normalizer) Rules() []Rule {
	return append([]Rule(nil), n.rules...)
}

// Normalize returns text with every rule applied in order.
func (n *Normalizer) Normalize(text string) string {
	for _, r := range n.rules {
		text = r.Apply(text)
	}
	return text
}

// Trace is Normalize, but also reports each rule that changed the text.
func (n *Normalizer) Trace(text string) (string, []Step) {
	var steps []Step
	for _, r := range n.rules {
		out := r.Apply(text)
		if out != text {
			steps = append(steps, Step{Rule: r.Name, Before: text, After: out})
		}
		text = out
	}
	return text, steps
}

// Character classes shared by the patterns below.
const (
	han  = `\p{Han}`
	hira = `[ぁ-ゖ]`
)

func rx(name, pattern, replace string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replace: replace}
}

var placeNames = []string{
	"北海道", "鹿児島", "名古屋",
	"東京", "大阪", "京都", "横浜", "神戸", "福岡", "札幌", "仙台", "広島",
	"沖縄", "埼玉", "千葉", "奈良", "秋田", "長野", "新潟", "静岡",
}

// DefaultRules returns the built-in rule table in application order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "width", Func: norm.NFKC.String},
		rx("marker-guard", `[_{}]`, Boundary),
		rx("latin", `\p{Latin}+`, Boundary),
		rx("digits", `([0-9]+)([人個本枚匹回年月日時分秒円歳階冊台番目]?)`, "_${1}${2}_"),
		rx("whitespace", `[\s\p{Zs}]+`, Boundary),
		rx("fillers", `ということ|というのは|えっと|ええと`, Boundary),
		rx("katakana-run", `([ァ-ヺ])([ァ-ヺー]*)`, "_${1}${2}_"),
		rx("prefix-kanji", `([本毎各全諸両])(`+han+`)`, "_${1}${2}"),
		rx("polite-masu", `(`+han+`)(`+hira+`?)(ませんでした|ました|ません|ましょう|ます)`, "${1}${2}${3}_"),
		rx("te-auxiliary", `(`+han+hira+`?[てで])(いる|いた|います|いました|おく|しまう|しまった|くれる|もらう|あげる|みる|みた)`, "${1}_${2}"),
		rx("negative", `(`+han+`)(`+hira+`?)(なかった|なくて|ない)`, "${1}${2}${3}_"),
		rx("desiderative", `(`+han+hira+`?(?:たかった|たくない|たい))`, "${1}_"),
		rx("te-form", `(`+han+`(?:[っん][てで]|[いし]て|いで))`, "${1}_"),
		rx("ta-form", `(`+han+`)(`+hira+`?)([ただ])([^ぁ-ゖ]|$)`, "${1}${2}${3}_${4}"),
		rx("zu-particle", `(`+han+hira+`?ず)([にとも])`, "${1}_${2}"),
		rx("zu-kanji", `(ず)(`+han+`)`, "${1}_${2}"),
		rx("kanji-coordination", `(`+han+`)([とや])(`+han+`)`, "${1}${2}_${3}"),
		rx("particle-kanji", `([はがをにでへもの])(`+han+`)`, "${1}_${2}"),
		rx("verb-kanji", `(`+han+hira+`?)([るうくすつぬむぶぐ])(`+han+`)`, "${1}${2}_${3}"),
		rx("adverbs", `(とても|すごく|少し|ちょっと|かなり|ずっと|やはり|やっぱり|たぶん|きっと|本当に|全然)`, "_${1}_"),
		rx("kanji-case-particle", `(`+han+`)([がをは])`, "${1}${2}_"),
		rx("sentence-enders", `(です|でした|でしょう|だろう|ました|ません)`, "${1}_"),
		rx("modal-suffix", `(らしい|っぽい|みたい|そうだ)`, "${1}_"),
		rx("kanji-suffix", `(`+han+`)([的性化式風製])`, "${1}${2}_"),
		rx("counters", `([〇一二三四五六七八九十百千万]+[人個本枚匹回年月日時分秒円歳階冊台番])`, "${1}_"),
		rx("place-names", `(`+strings.Join(placeNames, "|")+`)([都道府県市区]?)`, "{${1}${2}}"),
		{Name: "onomatopoeia", Func: isolateRepeats},
	}
}

// isolateRepeats surrounds two-mora kana repetitions (どきどき, キラキラ)
// with boundary markers. RE2 has no backreferences, so this is a scan.
func isolateRepeats(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(runes); {
		if i+4 <= len(runes) && isMora(runes[i]) && isMora(runes[i+1]) &&
			runes[i] == runes[i+2] && runes[i+1] == runes[i+3] {
			b.WriteString(Boundary)
			b.WriteString(string(runes[i : i+4]))
			b.WriteString(Boundary)
			i += 4
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func isMora(r rune) bool {
	return script.IsKana(r) && r != script.LongVowel
}
