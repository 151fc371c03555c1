package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntPK adds an auto-incrementing 32-bit integer primary key.
type IntPK struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`
}

// BigIntPK adds an auto-incrementing 64-bit integer primary key.
type BigIntPK struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
}

// SmallIntPK adds an auto-incrementing 16-bit integer primary key.
type SmallIntPK struct {
	ID uint16 `gorm:"column:id;primaryKey;autoIncrement"`
}

// UUIDPK adds a UUID primary key, generated at create time when unset.
type UUIDPK struct {
	UUID uuid.UUID `gorm:"column:uuid;type:uuid;primaryKey"`
}

func (m *UUIDPK) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == uuid.Nil {
		m.UUID = uuid.New()
	}
	return nil
}
