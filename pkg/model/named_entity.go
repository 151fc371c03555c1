package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NamedEntity composes a UUID primary key, an optional snake_cased unique
// name and timestamps. Entities are addressable by name when one is set
// and by UUID text otherwise.
type NamedEntity struct {
	UUIDPK
	OptionalSnakeCaseName
	Timestamps
}

// NameOrUUID returns the entity's name when set, else its UUID text.
func (e *NamedEntity) NameOrUUID() string {
	if e.Name != nil && *e.Name != "" {
		return *e.Name
	}
	return e.UUID.String()
}

// FindByNameOrUUID loads into dest the row identified by nameOrUUID.
// Strings that parse as UUIDs are only ever looked up by the uuid column;
// anything else is matched exactly against the name column. A miss
// surfaces gorm.ErrRecordNotFound.
func FindByNameOrUUID(db *gorm.DB, dest interface{}, nameOrUUID string) error {
	if id, err := uuid.Parse(nameOrUUID); err == nil {
		return db.Where("uuid = ?", id).First(dest).Error
	}
	return db.Where("name = ?", nameOrUUID).First(dest).Error
}

// NamesOrUUIDs lists every row of the model as its name when set, else
// its UUID text. Named rows sort first, by name.
func NamesOrUUIDs(db *gorm.DB, model interface{}) ([]string, error) {
	var rows []struct {
		Name *string
		UUID uuid.UUID
	}
	err := db.Model(model).Select("name", "uuid").Order("name").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Name != nil && *row.Name != "" {
			out = append(out, *row.Name)
		} else {
			out = append(out, row.UUID.String())
		}
	}
	return out, nil
}
