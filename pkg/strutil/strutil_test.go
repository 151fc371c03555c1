package strutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case with punctuation",
			input:    "Hello__World!!",
			expected: "hello_world",
		},
		{
			name:     "spaces become underscores",
			input:    "My Service Name",
			expected: "my_service_name",
		},
		{
			name:     "already snake case",
			input:    "already_snake_case",
			expected: "already_snake_case",
		},
		{
			name:     "leading and trailing junk stripped",
			input:    "--some.table.name--",
			expected: "some_table_name",
		},
		{
			name:     "runs of separators collapse",
			input:    "a -- b",
			expected: "a_b",
		},
		{
			name:     "leading and trailing underscores stripped",
			input:    "__padded__",
			expected: "padded",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "digits preserved",
			input:    "postgres 9.6 settings",
			expected: "postgres_9_6_settings",
		},
		{
			name:     "unicode letters preserved",
			input:    "héllo wörld",
			expected: "héllo_wörld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestUpperCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "env var style key",
			input:    "db password",
			expected: "DB_PASSWORD",
		},
		{
			name:     "mixed case with punctuation",
			input:    "Hello__World!!",
			expected: "HELLO_WORLD",
		},
		{
			name:     "already upper case",
			input:    "DATABASE_URL",
			expected: "DATABASE_URL",
		},
		{
			name:     "only punctuation",
			input:    "@#$",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpperCase(tt.input))
		})
	}
}

func TestNormalizationProperties(t *testing.T) {
	inputs := []string{
		"Hello__World!!",
		"  spaced   out  ",
		"--a--b--",
		"CamelCaseName",
		"key.with.dots",
		"a!b@c#d",
		"_x_",
		"",
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range inputs {
			once := SnakeCase(in)
			assert.Equal(t, once, SnakeCase(once), "input %q", in)
		}
	})

	t.Run("variants differ only by case", func(t *testing.T) {
		for _, in := range inputs {
			assert.Equal(t, SnakeCase(in), strings.ToLower(UpperCase(in)), "input %q", in)
		}
	})

	t.Run("no edge or doubled underscores", func(t *testing.T) {
		for _, in := range inputs {
			out := SnakeCase(in)
			assert.False(t, strings.HasPrefix(out, "_"), "output %q", out)
			assert.False(t, strings.HasSuffix(out, "_"), "output %q", out)
			assert.NotContains(t, out, "__")
		}
	})
}
