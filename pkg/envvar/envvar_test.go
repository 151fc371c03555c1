package envvar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVarBeforeSave(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
		wantErr  error
	}{
		{
			name:     "lower case key is upper cased",
			key:      "db_host",
			expected: "DB_HOST",
		},
		{
			name:     "punctuation cleaned",
			key:      "db.password!",
			expected: "DB_PASSWORD",
		},
		{
			name:     "already normalized",
			key:      "DATABASE_URL",
			expected: "DATABASE_URL",
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: ErrEmptyKey,
		},
		{
			name:    "nothing left after cleaning",
			key:     "!!!",
			wantErr: ErrEmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := EnvVar{Key: tt.key}
			err := v.BeforeSave(nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Key)
		})
	}

	t.Run("over-long key rejected", func(t *testing.T) {
		v := EnvVar{Key: strings.Repeat("k", 256)}
		err := v.BeforeSave(nil)
		require.ErrorIs(t, err, ErrKeyTooLong)
		assert.Contains(t, err.Error(), "exceeds 255 characters")
	})
}

func TestEnvVarMetadata(t *testing.T) {
	assert.Equal(t, "env_vars", EnvVar{}.TableName())
	assert.Equal(t, []string{"key", "value"}, EnvVar{}.SearchFields())
}
