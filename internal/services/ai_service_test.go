package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 100))
	assert.Equal(t, "abc", truncateUTF8("abcdef", 3))

	// never splits a multi-byte rune: "é" is 2 bytes, cutting at 3
	// backs off to the rune boundary
	s := "aé" + strings.Repeat("b", 10)
	got := truncateUTF8(s, 2)
	assert.Equal(t, "a", got)
	assert.True(t, utf8.ValidString(got))

	// a long run of multi-byte runes stays valid at any cap
	hebrew := strings.Repeat("שלום", 50)
	for _, max := range []int{1, 2, 3, 7, 100, len(hebrew)} {
		got := truncateUTF8(hebrew, max)
		assert.LessOrEqual(t, len(got), max)
		assert.True(t, utf8.ValidString(got), "max=%d", max)
	}
}

func TestSummarizeResumeDisabledWithoutKey(t *testing.T) {
	svc := NewAIService("")
	assert.False(t, svc.Enabled())

	_, err := svc.SummarizeResume(context.Background(), "resume text")
	assert.ErrorIs(t, err, ErrAIDisabled)
}
