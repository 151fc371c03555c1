package model

import "time"

// Timestamps adds an auto-managed created_at/updated_at pair.
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
