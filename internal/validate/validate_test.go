package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPassesCleanInput(t *testing.T) {
	res, err := Text("Привет, мир\nвторая строка")
	require.NoError(t, err)
	assert.Equal(t, "Привет, мир\nвторая строка", res.Text)
	assert.Empty(t, res.Warnings)
}

func TestTextNormalizesToNFC(t *testing.T) {
	// е followed by combining diaeresis composes to ё.
	res, err := Text("ёлка")
	require.NoError(t, err)
	assert.Equal(t, "ёлка", res.Text)
}

func TestTextStripsControlCharacters(t *testing.T) {
	res, err := Text("при\x00вет\x07\tтаб\r\nстрока")
	require.NoError(t, err)
	assert.Equal(t, "привет\tтаб\r\nстрока", res.Text)
}

func TestTextScrubsMarkup(t *testing.T) {
	res, err := Text("до <script>alert(1)</script>после javascript:run()")
	require.NoError(t, err)
	assert.NotContains(t, res.Text, "script")
	assert.NotContains(t, res.Text, "javascript:")
	assert.Contains(t, res.Text, "до")
	assert.Contains(t, res.Text, "после")
}

func TestTextWarnsOnHeavySanitization(t *testing.T) {
	input := "аб" + strings.Repeat("\x00", 50)
	res, err := Text(input)
	require.NoError(t, err)
	assert.Equal(t, "аб", res.Text)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "removed")
}

func TestTextRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r", "\x00\x01"} {
		_, err := Text(input)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", input)
	}
}

func TestTextRejectsOversize(t *testing.T) {
	_, err := Text(strings.Repeat("ж", MaxTextLen+1))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestTextRejectsTooManyLines(t *testing.T) {
	_, err := Text("а" + strings.Repeat("\nа", MaxLines))
	assert.ErrorIs(t, err, ErrTooManyLines)
}

func TestTextRejectsOverlongLine(t *testing.T) {
	_, err := Text("ок\n" + strings.Repeat("ж", MaxLineLen+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLineTooLong)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTextLimitIsMeasuredInRunes(t *testing.T) {
	// MaxLineLen Cyrillic runes occupy twice as many bytes; they must
	// still pass the line check.
	res, err := Text(strings.Repeat("ж", MaxLineLen))
	require.NoError(t, err)
	assert.Len(t, []rune(res.Text), MaxLineLen)
}
