package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCharMap(t *testing.T, pairs []Pair) *CharMap {
	t.Helper()
	m, err := NewCharMap(pairs)
	require.NoError(t, err)
	return m
}

func TestCharMapSinglePass(t *testing.T) {
	m := mustCharMap(t, []Pair{
		{From: "б", To: "b"},
		{From: "в", To: "v"},
	})

	assert.Equal(t, "bvb", m.Apply("бвб"))
}

func TestCharMapOutputNeverRematched(t *testing.T) {
	// ц produces "ts"; a "t" entry must not fire on that output.
	m := mustCharMap(t, []Pair{
		{From: "ц", To: "ts"},
		{From: "t", To: "X"},
	})

	assert.Equal(t, "ts", m.Apply("ц"))
	assert.Equal(t, "X", m.Apply("t"))
}

func TestCharMapDeclarationOrderResolvesOverlap(t *testing.T) {
	// Palladius tables need нь to win over н at the same position.
	m := mustCharMap(t, []Pair{
		{From: "нь", To: "n"},
		{From: "н", To: "ng"},
		{From: "а", To: "a"},
	})

	assert.Equal(t, "n", m.Apply("нь"))
	assert.Equal(t, "ng", m.Apply("н"))
	assert.Equal(t, "ngan", m.Apply("нань"))
}

func TestCharMapRejectsShadowedKey(t *testing.T) {
	// With н first, нь can never match; the table is a defect.
	_, err := NewCharMap([]Pair{
		{From: "н", To: "ng"},
		{From: "нь", To: "n"},
	})
	require.ErrorIs(t, err, ErrInvalidMap)
	assert.Contains(t, err.Error(), "shadowed")
}

func TestCharMapRejectsEmptyTable(t *testing.T) {
	_, err := NewCharMap(nil)
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestCharMapRejectsDuplicateKey(t *testing.T) {
	_, err := NewCharMap([]Pair{
		{From: "а", To: "a"},
		{From: "а", To: "o"},
	})
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestCharMapRejectsEmptyKey(t *testing.T) {
	_, err := NewCharMap([]Pair{{From: "", To: "x"}})
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestCharMapEscapesMetaCharacters(t *testing.T) {
	m := mustCharMap(t, []Pair{
		{From: "'", To: ""},
		{From: ".", To: "DOT"},
	})

	assert.Equal(t, "ab", m.Apply("a'b"))
	assert.Equal(t, "DOT", m.Apply("."))
	// "." must be a literal, not "any character".
	assert.Equal(t, "x", m.Apply("x"))
}

func TestCharMapUnmappedPassThrough(t *testing.T) {
	m := mustCharMap(t, []Pair{{From: "ж", To: "zh"}})

	assert.Equal(t, "0123 abc!", m.Apply("0123 abc!"))
	assert.Equal(t, "", m.Apply(""))
}

func TestRulesApplyInOrder(t *testing.T) {
	// The first rule's output is the second rule's input.
	rs, err := NewRules([]Rule{
		{Pattern: "a", Rewrite: "b"},
		{Pattern: "b", Rewrite: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cc", rs.Apply("ab"))

	// Swapped, the pipeline gives a different answer: proof the rules are
	// not applied simultaneously against the original text.
	swapped, err := NewRules([]Rule{
		{Pattern: "b", Rewrite: "c"},
		{Pattern: "a", Rewrite: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bc", swapped.Apply("ab"))
}

func TestRulesCaptureRewrite(t *testing.T) {
	rs, err := NewRules([]Rule{
		{Pattern: "([бв])е", Rewrite: "${1}e"},
	})
	require.NoError(t, err)
	assert.Equal(t, "бeвe", rs.Apply("беве"))
}

func TestRulesRejectBadPattern(t *testing.T) {
	_, err := NewRules([]Rule{{Pattern: "(", Rewrite: ""}})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestRulesRejectDanglingCaptureReference(t *testing.T) {
	_, err := NewRules([]Rule{
		{Pattern: "(a)b", Rewrite: "${2}x"},
	})
	require.ErrorIs(t, err, ErrInvalidRule)
	assert.Contains(t, err.Error(), "group 2")
}

func TestRulesEmptyListIsValid(t *testing.T) {
	rs, err := NewRules(nil)
	require.NoError(t, err)
	assert.Equal(t, "text", rs.Apply("text"))
	assert.Equal(t, 0, rs.Len())
}
