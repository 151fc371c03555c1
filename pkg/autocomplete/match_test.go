package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		match    Match
		q        string
		expected string
	}{
		{
			name:     "contains wraps the query",
			match:    MatchContains,
			q:        "db",
			expected: "%db%",
		},
		{
			name:     "prefix anchors the start",
			match:    MatchPrefix,
			q:        "db",
			expected: "db%",
		},
		{
			name:     "exact matches the whole value",
			match:    MatchExact,
			q:        "db",
			expected: "db",
		},
		{
			name:     "percent is escaped",
			match:    MatchContains,
			q:        "50%",
			expected: `%50\%%`,
		},
		{
			name:     "underscore is escaped",
			match:    MatchPrefix,
			q:        "db_host",
			expected: `db\_host%`,
		},
		{
			name:     "backslash is escaped",
			match:    MatchExact,
			q:        `a\b`,
			expected: `a\\b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.match.Pattern(tt.q))
		})
	}
}

func TestMatchNames(t *testing.T) {
	assert.Equal(t, []string{"contains", "prefix", "exact"}, MatchStrings())

	m, err := MatchString("prefix")
	require.NoError(t, err)
	assert.Equal(t, MatchPrefix, m)

	_, err = MatchString("fuzzy")
	assert.Error(t, err)
}
