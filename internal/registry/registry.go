// Package registry builds the process-wide catalog of shipped
// transliteration methods. Discovery and validation run exactly once;
// after Ready the registry is immutable and safe for concurrent readers.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/srobertson/xlit/internal/translit"
	"github.com/srobertson/xlit/internal/translit/methods"
)

// State tracks the registry lifecycle. Failed is terminal; a process that
// cannot validate its rule tables has nothing trustworthy to serve.
type State int

const (
	StateUninitialized State = iota
	StateDiscovering
	StateValidating
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDiscovering:
		return "discovering"
	case StateValidating:
		return "validating"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var ErrUnknownMethod = errors.New("unknown transliteration method")

// displaySuffix pulls the trailing parenthesized label out of a canonical
// method name, e.g. "Russian (Cyrillic)-->English (IC)" yields "IC".
var displaySuffix = regexp.MustCompile(`\(([^)]+)\)$`)

// displayOverrides covers canonical names whose label does not sit in a
// trailing parenthesized suffix, or where the suffix is not the label a
// human would recognize.
var displayOverrides = map[string]string{
	"Ukrainian (Chinese Academic)-->English":         "Chinese Academic",
	"Russian (Cyrillic)-->English (Gost 7.79-2000b)": "GOST 7.79 B",
}

// languageCodes maps the language component of a canonical name to the ISO
// 639-1 code used for export metadata.
var languageCodes = map[string]string{
	"Azeri":       "az",
	"Belarussian": "be",
	"Bulgarian":   "bg",
	"Georgian":    "ka",
	"Kazakh":      "kk",
	"Kyrghyz":     "ky",
	"Macedonian":  "mk",
	"Mongolian":   "mn",
	"Russian":     "ru",
	"Serbian":     "sr",
	"Tajik":       "tg",
	"Tatar":       "tt",
	"Turkmen":     "tk",
	"Ukrainian":   "uk",
	"Uyghur":      "ug",
	"Uzbek":       "uz",
}

// noCaseMatch lists methods whose output the uppercase pass would corrupt:
// standards emitting modifier letters or punctuation as output, and scripts
// with no upper/lower distinction in the source.
var noCaseMatch = map[string]struct{}{
	"Georgian-->English (IC)":                         {},
	"Russian (Cyrillic)-->English (ISO-9)":            {},
	"Russian (Chinese Cyrillic)-->English (Pinyin)":   {},
	"Russian (Japanese Cyrillic)-->English (Hepburn)": {},
	"Ukrainian (Chinese Academic)-->English":          {},
}

type Registry struct {
	state State

	order    []string
	byName   map[string]*translit.Method
	matchers map[string]*translit.CaseMatcher
	display  map[string]string
	language map[string]string
	byLang   map[string][]string
}

var (
	once      sync.Once
	shared    *Registry
	sharedErr error
)

// Get returns the shared registry, building it on first call. A build
// failure is sticky: every later call reports the same error.
func Get() (*Registry, error) {
	once.Do(func() {
		shared, sharedErr = New()
	})
	return shared, sharedErr
}

// New discovers and validates every shipped method. It exists separately
// from Get so tests can build throwaway registries.
func New() (*Registry, error) {
	r := &Registry{
		state:    StateDiscovering,
		byName:   make(map[string]*translit.Method),
		matchers: make(map[string]*translit.CaseMatcher),
		display:  make(map[string]string),
		language: make(map[string]string),
		byLang:   make(map[string][]string),
	}

	all, err := methods.All()
	if err != nil {
		r.state = StateFailed
		return nil, fmt.Errorf("method discovery: %w", err)
	}
	for _, m := range all {
		r.order = append(r.order, m.Name())
		r.byName[m.Name()] = m
	}

	r.state = StateValidating
	if err := r.validate(); err != nil {
		r.state = StateFailed
		return nil, err
	}

	for _, name := range r.order {
		r.display[name] = displayName(name)
		lang := languageOf(name)
		r.language[name] = lang
		r.byLang[lang] = append(r.byLang[lang], name)
		if _, excluded := noCaseMatch[name]; !excluded {
			r.matchers[name] = translit.NewCaseMatcher(r.byName[name])
		}
	}

	r.state = StateReady
	return r, nil
}

// validate aggregates every catalog defect rather than stopping at the
// first, so a broken build reports the full damage in one pass.
func (r *Registry) validate() error {
	var problems []string
	seen := make(map[string]int)
	for _, name := range r.order {
		seen[name]++
		if displayName(name) == "" {
			problems = append(problems, fmt.Sprintf("method %q has no display name", name))
		}
		lang := languageOf(name)
		if lang == "" {
			problems = append(problems, fmt.Sprintf("method %q has no language component", name))
		} else if _, ok := languageCodes[lang]; !ok {
			problems = append(problems, fmt.Sprintf("method %q: language %q has no ISO code", name, lang))
		}
	}
	for name, n := range seen {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("method %q registered %d times", name, n))
		}
	}
	for name := range noCaseMatch {
		if _, ok := r.byName[name]; !ok {
			problems = append(problems, fmt.Sprintf("case-match exclusion references unknown method %q", name))
		}
	}
	for name := range displayOverrides {
		if _, ok := r.byName[name]; !ok {
			problems = append(problems, fmt.Sprintf("display override references unknown method %q", name))
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("registry validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// State reports the lifecycle state reached during construction.
func (r *Registry) State() State { return r.state }

// MethodNames returns every canonical method name in catalog order.
func (r *Registry) MethodNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Method looks up a method by canonical name.
func (r *Registry) Method(name string) (*translit.Method, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}

// Languages returns the source languages in the catalog, sorted.
func (r *Registry) Languages() []string {
	langs := lo.Keys(r.byLang)
	sort.Strings(langs)
	return langs
}

// MethodsByLanguage returns the canonical names of the language's methods
// in catalog order, or nil for an unknown language.
func (r *Registry) MethodsByLanguage(lang string) []string {
	names, ok := r.byLang[lang]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// DisplayName returns the human-facing short label for a method, or ""
// for an unknown name.
func (r *Registry) DisplayName(name string) string { return r.display[name] }

// MethodByDisplayName resolves a (language, display label) pair back to a
// canonical name, the inverse of the two-step selection flow.
func (r *Registry) MethodByDisplayName(lang, display string) (string, error) {
	name, ok := lo.Find(r.byLang[lang], func(n string) bool {
		return r.display[n] == display
	})
	if !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownMethod, lang, display)
	}
	return name, nil
}

// SupportsCaseMatch reports whether the case-match option applies to the
// method. Unknown names report false.
func (r *Registry) SupportsCaseMatch(name string) bool {
	_, known := r.byName[name]
	if !known {
		return false
	}
	_, excluded := noCaseMatch[name]
	return !excluded
}

// CaseMatcher returns the shared case matcher for an eligible method.
func (r *Registry) CaseMatcher(name string) (*translit.CaseMatcher, error) {
	cm, ok := r.matchers[name]
	if !ok {
		if _, known := r.byName[name]; known {
			return nil, fmt.Errorf("method %q does not support case matching", name)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return cm, nil
}

// Language returns the source-language component of a method name, or ""
// for an unknown name.
func (r *Registry) Language(name string) string { return r.language[name] }

// LanguageCode returns the ISO 639-1 code for a method's source language,
// or "" for an unknown name.
func (r *Registry) LanguageCode(name string) string {
	return languageCodes[r.language[name]]
}

func displayName(name string) string {
	if label, ok := displayOverrides[name]; ok {
		return label
	}
	if m := displaySuffix.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

// languageOf takes the leading run of the canonical name, which by
// convention ends at the first "(" or "-->".
func languageOf(name string) string {
	end := len(name)
	if i := strings.Index(name, "("); i >= 0 && i < end {
		end = i
	}
	if i := strings.Index(name, "-->"); i >= 0 && i < end {
		end = i
	}
	return strings.TrimSpace(name[:end])
}
