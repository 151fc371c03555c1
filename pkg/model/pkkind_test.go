package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKKindNames(t *testing.T) {
	assert.Equal(t, []string{"int", "bigint", "smallint", "uuid"}, PKKindStrings())

	for _, kind := range PKKindValues() {
		parsed, err := PKKindString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := PKKindString("serial")
	assert.Error(t, err)
}

func TestPKKindColumnAndMixin(t *testing.T) {
	tests := []struct {
		kind   PKKind
		column string
		mixin  string
	}{
		{PKKindInt, "id", "IntPK"},
		{PKKindBigInt, "id", "BigIntPK"},
		{PKKindSmallInt, "id", "SmallIntPK"},
		{PKKindUUID, "uuid", "UUIDPK"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.column, tt.kind.Column())
			assert.Equal(t, tt.mixin, tt.kind.Mixin())
		})
	}
}
