// Package validate sanitizes and bounds user text before it reaches the
// transliteration engine. The engine itself assumes clean input; every
// entry surface (CLI, HTTP) runs text through here first.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxTextLen bounds total input size in runes. Transliteration work is
	// proportional to input length with no internal chunking, so the bound
	// doubles as the timeout story.
	MaxTextLen = 250000
	MaxLineLen = 10000
	MaxLines   = 5000
)

var (
	ErrEmpty        = errors.New("text is empty")
	ErrTooLong      = errors.New("text exceeds maximum length")
	ErrTooManyLines = errors.New("text exceeds maximum line count")
	ErrLineTooLong  = errors.New("line exceeds maximum length")
)

// scrubPatterns are markup fragments that have no business in text headed
// for a translation memory. They are removed rather than rejected so a
// pasted web page still transliterates.
var scrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)data:text/html`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
}

// Result carries the sanitized text and any warnings worth surfacing to
// the user, e.g. when sanitization removed a noticeable share of input.
type Result struct {
	Text     string
	Warnings []string
}

// Text normalizes, scrubs, and bounds-checks user input. The returned
// text is NFC-normalized with control characters (other than newline,
// carriage return, and tab) removed.
func Text(s string) (Result, error) {
	var res Result

	before := len([]rune(s))
	s = norm.NFC.String(s)
	for _, p := range scrubPatterns {
		s = p.ReplaceAllString(s, "")
	}
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)

	after := len([]rune(s))
	if before > 0 && before-after > before/10 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("sanitization removed %d of %d characters", before-after, before))
	}

	if strings.TrimSpace(s) == "" {
		return res, ErrEmpty
	}
	if after > MaxTextLen {
		return res, fmt.Errorf("%w: %d > %d characters", ErrTooLong, after, MaxTextLen)
	}

	lines := strings.Split(s, "\n")
	if len(lines) > MaxLines {
		return res, fmt.Errorf("%w: %d > %d lines", ErrTooManyLines, len(lines), MaxLines)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > MaxLineLen {
			return res, fmt.Errorf("%w: line %d has %d > %d characters", ErrLineTooLong, i+1, n, MaxLineLen)
		}
	}

	res.Text = s
	return res, nil
}
