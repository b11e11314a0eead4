// Package translit implements the rule-based transliteration engine:
// ordered character maps, contextual rewrite rules, and the case-matching
// wrapper that keeps ALL-CAPS words fully capitalized when a standard maps
// single letters to multi-letter sequences.
package translit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidMap marks a character map authoring defect: an empty table,
	// duplicate keys, or keys whose declaration order makes a later key
	// unreachable.
	ErrInvalidMap = errors.New("invalid character map")

	// ErrInvalidRule marks a rewrite rule authoring defect: a pattern that
	// does not compile or a rewrite referencing a capture group the pattern
	// does not define.
	ErrInvalidRule = errors.New("invalid rule")
)

// Pair is one entry of a character map. From is almost always a single
// source letter; multi-character keys are allowed and must be declared
// before any key they share a prefix with.
type Pair struct {
	From string
	To   string
}

// CharMap performs a single left-to-right, non-overlapping pass over the
// input, replacing every occurrence of every key. The output of one
// replacement is never re-matched within the same call. When two keys could
// match at the same position, declaration order decides.
type CharMap struct {
	pattern *regexp.Regexp
	repl    map[string]string
}

// NewCharMap compiles an ordered replacement table. Keys are escaped so that
// characters meaningful to pattern syntax are literals.
func NewCharMap(pairs []Pair) (*CharMap, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidMap)
	}

	repl := make(map[string]string, len(pairs))
	quoted := make([]string, 0, len(pairs))
	for i, p := range pairs {
		if p.From == "" {
			return nil, fmt.Errorf("%w: empty key at index %d", ErrInvalidMap, i)
		}
		if _, dup := repl[p.From]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidMap, p.From)
		}
		// A key declared after a key it extends can never match: the
		// alternation picks the earlier, shorter key first. Reject the
		// ambiguity instead of resolving it silently.
		for j := 0; j < i; j++ {
			if prev := pairs[j].From; len(prev) < len(p.From) && strings.HasPrefix(p.From, prev) {
				return nil, fmt.Errorf("%w: key %q is shadowed by earlier key %q; declare the longer key first",
					ErrInvalidMap, p.From, prev)
			}
		}
		repl[p.From] = p.To
		quoted = append(quoted, regexp.QuoteMeta(p.From))
	}

	pattern, err := regexp.Compile(strings.Join(quoted, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}

	return &CharMap{pattern: pattern, repl: repl}, nil
}

// Apply replaces every key occurrence in a single pass. Characters with no
// mapping entry pass through unchanged.
func (m *CharMap) Apply(text string) string {
	if text == "" {
		return ""
	}
	return m.pattern.ReplaceAllStringFunc(text, func(match string) string {
		return m.repl[match]
	})
}

// Rule is one contextual rewrite: an RE2 pattern and a rewrite that may
// reference captured context as ${1}, ${2}, and so on.
//
// RE2's \b is an ASCII word boundary, so word-initial and word-final context
// over Cyrillic must be written as explicit classes, e.g. (^|[^\p{L}\p{N}_]).
type Rule struct {
	Pattern string
	Rewrite string
}

type compiledRule struct {
	re      *regexp.Regexp
	rewrite string
}

// Rules applies rewrites strictly in declaration order; each rule's output
// is the next rule's input. Several tables depend on this pipeline semantic,
// so no rule is ever applied out of order or against the original text once
// an earlier rule has fired.
type Rules struct {
	rules []compiledRule
}

var captureRef = regexp.MustCompile(`\$\{(\d+)\}`)

// NewRules compiles an ordered rule list, validating every capture
// reference in every rewrite against its own pattern.
func NewRules(rules []Rule) (*Rules, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d pattern %q: %v", ErrInvalidRule, i, r.Pattern, err)
		}
		for _, ref := range captureRef.FindAllStringSubmatch(r.Rewrite, -1) {
			var n int
			fmt.Sscanf(ref[1], "%d", &n)
			if n > re.NumSubexp() {
				return nil, fmt.Errorf("%w: rule %d rewrite %q references group %d, pattern has %d",
					ErrInvalidRule, i, r.Rewrite, n, re.NumSubexp())
			}
		}
		compiled = append(compiled, compiledRule{re: re, rewrite: r.Rewrite})
	}
	return &Rules{rules: compiled}, nil
}

// Apply runs the pipeline.
func (rs *Rules) Apply(text string) string {
	for _, r := range rs.rules {
		text = r.re.ReplaceAllString(text, r.rewrite)
	}
	return text
}

// Len reports the number of rules in the pipeline.
func (rs *Rules) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}
