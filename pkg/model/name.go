package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gormbase/gormbase/pkg/strutil"
)

// ErrEmptyName is returned when normalization leaves nothing of a name.
var ErrEmptyName = errors.New("name is empty after normalization")

// UniqueName adds a required unique name column, stored as given.
type UniqueName struct {
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

// SnakeCaseName adds a required unique name column, normalized to
// snake_case before every save.
type SnakeCaseName struct {
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

func (m *SnakeCaseName) BeforeSave(tx *gorm.DB) error {
	name := strutil.SnakeCase(m.Name)
	if name == "" {
		return fmt.Errorf("%w: %q", ErrEmptyName, m.Name)
	}
	m.Name = name
	return nil
}

// OptionalUniqueName adds a nullable unique name column, stored as given.
// NULL names don't collide with each other.
type OptionalUniqueName struct {
	Name *string `gorm:"column:name;size:255;uniqueIndex"`
}

// OptionalSnakeCaseName adds a nullable unique name column, normalized to
// snake_case before every save when set.
type OptionalSnakeCaseName struct {
	Name *string `gorm:"column:name;size:255;uniqueIndex"`
}

func (m *OptionalSnakeCaseName) BeforeSave(tx *gorm.DB) error {
	if m.Name == nil || *m.Name == "" {
		return nil
	}
	name := strutil.SnakeCase(*m.Name)
	if name == "" {
		return fmt.Errorf("%w: %q", ErrEmptyName, *m.Name)
	}
	m.Name = &name
	return nil
}
