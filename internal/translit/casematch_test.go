package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTsMethod is a miniature Russian-style table with the digraph cases
// that make character-granularity case mirroring wrong.
func newTsMethod(t *testing.T) *Method {
	t.Helper()
	m, err := NewMethod(Spec{
		Name: "test",
		Map: []Pair{
			{From: "ц", To: "ts"}, {From: "Ц", To: "Ts"},
			{From: "е", To: "e"}, {From: "Е", To: "E"},
			{From: "л", To: "l"}, {From: "Л", To: "L"},
			{From: "и", To: "i"}, {From: "И", To: "I"},
			{From: "т", To: "t"}, {From: "Т", To: "T"},
			{From: "ь", To: ""}, {From: "Ь", To: ""},
		},
	})
	require.NoError(t, err)
	return m
}

func TestCaseMatchLowercaseWord(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "tselitel", cm.Transliterate("целитель"))
}

func TestCaseMatchAllUpperWord(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "TSELITEL", cm.Transliterate("ЦЕЛИТЕЛЬ"))
}

func TestCaseMatchMixedCaseWordPassesThrough(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "TsELItEL", cm.Transliterate("ЦЕЛИтЕЛЬ"))
}

func TestCaseMatchAgreesWithPlainOnLowercase(t *testing.T) {
	m := newTsMethod(t)
	cm := NewCaseMatcher(m)
	for _, word := range []string{"целитель", "тиле", "ц"} {
		assert.Equal(t, m.Transliterate(word), cm.Transliterate(word), word)
	}
}

func TestCaseMatchPreservesNonWordRuns(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "TSEL, tsel!  TSEL", cm.Transliterate("ЦЕЛ, цел!  ЦЕЛ"))
}

func TestCaseMatchKeepsPunctuationTheMapWouldDrop(t *testing.T) {
	// Apostrophes inside a word token are dropped by the map, but a
	// trailing apostrophe is a non-word run and passes through untouched.
	m, err := NewMethod(Spec{
		Name: "test",
		Map: []Pair{
			{From: "ц", To: "ts"}, {From: "Ц", To: "Ts"},
			{From: "е", To: "e"}, {From: "Е", To: "E"},
			{From: "л", To: "l"}, {From: "Л", To: "L"},
			{From: "'", To: ""}, {From: "’", To: ""},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "tsel", m.Transliterate("цел’"))
	cm := NewCaseMatcher(m)
	assert.Equal(t, "TSEL’", cm.Transliterate("ЦЕЛ’"))
	assert.Equal(t, "tsel'’", cm.Transliterate("цел'’"))
}

func TestCaseMatchWordBoundariesIncludeDigits(t *testing.T) {
	// A digit keeps the token a single word run and digits are not cased,
	// so the uppercase test still fires on the letters.
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "TSEL2025", cm.Transliterate("ЦЕЛ2025"))
}

func TestCaseMatchNoLettersToken(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "123 456", cm.Transliterate("123 456"))
}

func TestCaseMatchEmptyInput(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	assert.Equal(t, "", cm.Transliterate(""))
}

func TestCaseMatchMemoizationIsStable(t *testing.T) {
	cm := NewCaseMatcher(newTsMethod(t))
	first := cm.Transliterate("ЦЕЛИТЕЛЬ целитель ЦЕЛИТЕЛЬ")
	second := cm.Transliterate("ЦЕЛИТЕЛЬ целитель ЦЕЛИТЕЛЬ")
	assert.Equal(t, "TSELITEL tselitel TSELITEL", first)
	assert.Equal(t, first, second)
}

func TestIsAllUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ЦЕЛ", true},
		{"ЦЕЛ2025", true},
		{"Цел", false},
		{"цел", false},
		{"2025", false},
		{"", false},
		{"ǅ", false}, // titlecase letter is not uppercase
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isAllUpper(tt.in), "%q", tt.in)
	}
}

func TestForEachToken(t *testing.T) {
	type tok struct {
		s    string
		word bool
	}
	var got []tok
	forEachToken("аб, вг_2!", func(s string, word bool) {
		got = append(got, tok{s, word})
	})
	assert.Equal(t, []tok{
		{"аб", true},
		{", ", false},
		{"вг_2", true},
		{"!", false},
	}, got)
}

func TestTitleCaseWords(t *testing.T) {
	assert.Equal(t, "Tbilisi Da Batumi", titleCaseWords("tbilisi da BATUMI"))
	assert.Equal(t, "-- Kutaisi!", titleCaseWords("-- kutaisi!"))
}
