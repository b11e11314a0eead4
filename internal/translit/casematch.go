package translit

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// wordCacheSize bounds the per-engine memoization cache. The same words
// recur heavily across a document and the transform is pure, so a modest
// bound captures nearly all of the win without tying memory to input size.
const wordCacheSize = 4096

// CaseMatcher wraps a Method so that output capitalization follows input
// capitalization at word granularity. Character-granularity mirroring is
// wrong whenever a replacement is longer than its source: an uppercase
// Cyrillic Ц maps to "Ts", but inside an ALL-CAPS word the correct rendering
// is "TS".
type CaseMatcher struct {
	method *Method
	cache  *lru.Cache[string, string]
}

// NewCaseMatcher builds a case-matching wrapper with its own bounded,
// concurrency-safe word cache.
func NewCaseMatcher(m *Method) *CaseMatcher {
	cache, err := lru.New[string, string](wordCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &CaseMatcher{method: m, cache: cache}
}

// Method returns the wrapped method.
func (c *CaseMatcher) Method() *Method { return c.method }

// Transliterate splits the input into word and non-word runs, transliterates
// word tokens with per-token case handling, and passes non-word runs
// through untouched. Token outputs are concatenated in original order.
func (c *CaseMatcher) Transliterate(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	forEachToken(text, func(tok string, word bool) {
		if !word {
			b.WriteString(tok)
			return
		}
		b.WriteString(c.word(tok))
	})
	return b.String()
}

// word memoizes the per-word transform: an all-uppercase word is
// transliterated as given (so the method's uppercase-keyed entries fire) and
// the whole result is then forced upper, turning digraphs like "Ts" into
// "TS". Anything else goes through the method unmodified.
func (c *CaseMatcher) word(w string) string {
	if out, ok := c.cache.Get(w); ok {
		return out
	}
	out := c.method.Transliterate(w)
	if isAllUpper(w) {
		out = strings.ToUpper(out)
	}
	c.cache.Add(w, out)
	return out
}

// isAllUpper reports whether every cased letter in s is uppercase and at
// least one cased letter is present. A token with no cased letters is not
// all-uppercase for this test.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isWordRune mirrors the Unicode word class: letters, digits, underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// forEachToken yields maximal runs of word or non-word runes in order.
func forEachToken(s string, fn func(tok string, word bool)) {
	start := 0
	var inWord bool
	for i, r := range s {
		w := isWordRune(r)
		if i == 0 {
			inWord = w
			continue
		}
		if w != inWord {
			fn(s[start:i], inWord)
			start = i
			inWord = w
		}
	}
	if start < len(s) {
		fn(s[start:], inWord)
	}
}

// titleCaseWords uppercases the first letter of every word run and
// lowercases the rest, leaving non-word runs alone.
func titleCaseWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	forEachToken(s, func(tok string, word bool) {
		if !word {
			b.WriteString(tok)
			return
		}
		first := true
		for _, r := range tok {
			if first && unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				first = false
				continue
			}
			b.WriteRune(unicode.ToLower(r))
		}
	})
	return b.String()
}
