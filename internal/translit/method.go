package translit

import "fmt"

// Spec is the data record describing one romanization standard: an ordered
// character map plus optional contextual rule lists.
type Spec struct {
	// Name is the canonical method identity, e.g.
	// "Russian (Cyrillic)-->English (IC)".
	Name string

	// PreRules run before the character map. They exist to disambiguate
	// context before the per-character map would make an irreversible
	// substitution (word-initial vowel forms, doubled-letter collapsing).
	PreRules []Rule

	// Map is the bulk of the standard.
	Map []Pair

	// PostRules run after the character map to clean up its artifacts.
	PostRules []Rule

	// TitleCase forces the final output to title case at word granularity.
	// Used by standards whose source script has no case distinction.
	TitleCase bool
}

// Method is one fully configured romanization standard bound to the engine.
// Immutable after construction; safe for concurrent use.
type Method struct {
	name      string
	pre       *Rules
	charMap   *CharMap
	post      *Rules
	titleCase bool
}

// NewMethod compiles a Spec. All authoring defects (malformed patterns,
// dangling capture references, shadowed map keys) surface here, never at
// transliteration time.
func NewMethod(spec Spec) (*Method, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("method name is required")
	}

	charMap, err := NewCharMap(spec.Map)
	if err != nil {
		return nil, fmt.Errorf("method %q: %w", spec.Name, err)
	}

	m := &Method{name: spec.Name, charMap: charMap, titleCase: spec.TitleCase}

	if len(spec.PreRules) > 0 {
		if m.pre, err = NewRules(spec.PreRules); err != nil {
			return nil, fmt.Errorf("method %q pre-rules: %w", spec.Name, err)
		}
	}
	if len(spec.PostRules) > 0 {
		if m.post, err = NewRules(spec.PostRules); err != nil {
			return nil, fmt.Errorf("method %q post-rules: %w", spec.Name, err)
		}
	}

	return m, nil
}

// Name returns the canonical method identity.
func (m *Method) Name() string { return m.name }

// Transliterate renders text to Latin script: pre-rules, then the character
// map, then post-rules. Pure function of its input; characters outside the
// standard's alphabet pass through unchanged.
func (m *Method) Transliterate(text string) string {
	if text == "" {
		return ""
	}
	if m.pre != nil {
		text = m.pre.Apply(text)
	}
	text = m.charMap.Apply(text)
	if m.post != nil {
		text = m.post.Apply(text)
	}
	if m.titleCase {
		text = titleCaseWords(text)
	}
	return text
}
