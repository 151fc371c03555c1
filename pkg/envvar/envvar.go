// Package envvar stores named configuration values as case-insensitive
// keys with arbitrary JSON values.
package envvar

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gormbase/gormbase/pkg/model"
	"github.com/gormbase/gormbase/pkg/strutil"
)

// ErrEmptyKey is returned when normalization leaves nothing of a key.
var ErrEmptyKey = errors.New("key is empty after normalization")

// ErrKeyTooLong is returned when a normalized key exceeds the column length.
var ErrKeyTooLong = errors.New("key too long")

// EnvVar is a named configuration value. Keys are case-insensitive and
// always persisted UPPER_CASED; values are JSON documents.
type EnvVar struct {
	Key   string         `gorm:"column:key;type:citext;primaryKey"`
	Value datatypes.JSON `gorm:"column:value;type:jsonb;not null"`
	model.Timestamps
}

func (EnvVar) TableName() string {
	return "env_vars"
}

// SearchFields implements model.Searchable.
func (EnvVar) SearchFields() []string {
	return []string{"key", "value"}
}

// BeforeSave upper-cases the key. Saving "db_host" persists "DB_HOST";
// keys that clean down to nothing or exceed the column length abort the
// save.
func (v *EnvVar) BeforeSave(tx *gorm.DB) error {
	key := strutil.UpperCase(v.Key)
	if key == "" {
		return fmt.Errorf("%w: %q", ErrEmptyKey, v.Key)
	}
	if len(key) > strutil.MaxCharFieldLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrKeyTooLong, key, strutil.MaxCharFieldLen)
	}
	v.Key = key
	return nil
}
