package model

import "gorm.io/datatypes"

// Date adds a required, indexed date-only column.
type Date struct {
	Date datatypes.Date `gorm:"column:date;not null;index"`
}

// OptionalDate adds a nullable, indexed date-only column.
type OptionalDate struct {
	Date *datatypes.Date `gorm:"column:date;index"`
}
