package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	widgetDef := Definition{
		Table:         "widgets",
		PK:            PKKindUUID,
		HasName:       true,
		NameOptional:  true,
		NameSnakeCase: true,
		Timestamps:    true,
	}
	calendarDef := Definition{
		Table:         "calendar_entries",
		HasName:       true,
		NameSnakeCase: true,
		HasDate:       true,
		Timestamps:    true,
	}

	require.NoError(t, r.Register(widgetDef, &widget{}))
	require.NoError(t, r.Register(calendarDef, &calendarEntry{}))

	assert.Equal(t, []string{"widgets", "calendar_entries"}, r.Tables())

	regs := r.Registered()
	require.Len(t, regs, 2)
	assert.Equal(t, widgetDef, regs[0].Definition)
	assert.IsType(t, &widget{}, regs[0].Prototype)

	reg, ok := r.Lookup("calendar_entries")
	require.True(t, ok)
	assert.Equal(t, calendarDef, reg.Definition)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicateTable(t *testing.T) {
	r := NewRegistry()
	def := Definition{
		Table:         "widgets",
		PK:            PKKindUUID,
		HasName:       true,
		NameOptional:  true,
		NameSnakeCase: true,
		Timestamps:    true,
	}

	require.NoError(t, r.Register(def, &widget{}))
	err := r.Register(def, &widget{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryRejectsInvalidDefinition(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Definition{Table: "Widgets"}, &widget{})
	require.Error(t, err)
	assert.Empty(t, r.Tables())
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(Definition{}, nil)
	})
}

type defaultRegistryProbe struct {
	NamedEntity
}

func (defaultRegistryProbe) TableName() string { return "default_registry_probes" }

func TestDefaultRegistry(t *testing.T) {
	def := Definition{
		Table:         "default_registry_probes",
		PK:            PKKindUUID,
		HasName:       true,
		NameOptional:  true,
		NameSnakeCase: true,
		Timestamps:    true,
	}

	require.NoError(t, Register(def, &defaultRegistryProbe{}))

	found := false
	for _, reg := range Registered() {
		if reg.Definition.Table == "default_registry_probes" {
			found = true
		}
	}
	assert.True(t, found)
}
