package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery_LowercasesAndTrims(t *testing.T) {
	q := ParseQuery("  Virtual MEMORY ")
	assert.Equal(t, "virtual memory", q.Phrase)
	assert.Equal(t, []string{"virtual", "memory"}, q.Words)
}

func TestParseQuery_SplitsOnWhitespaceRuns(t *testing.T) {
	q := ParseQuery("fork\t exec \n wait")
	assert.Equal(t, []string{"fork", "exec", "wait"}, q.Words)
}

func TestParseQuery_KeepsRepeatedWords(t *testing.T) {
	// Scoring is additive per occurrence; duplicates are deliberately kept.
	q := ParseQuery("pipe pipe")
	assert.Equal(t, []string{"pipe", "pipe"}, q.Words)
}

func TestParseQuery_Empty(t *testing.T) {
	assert.True(t, ParseQuery("").Empty())
	assert.True(t, ParseQuery("   \t  ").Empty())
	assert.False(t, ParseQuery("x").Empty())
}
