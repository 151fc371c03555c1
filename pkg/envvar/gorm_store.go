package envvar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gormbase/gormbase/pkg/strutil"
)

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store using GORM for database operations.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the variable stored under key.
func (s *GormStore) Get(ctx context.Context, key string) (*EnvVar, error) {
	var v EnvVar
	err := s.db.WithContext(ctx).Where("key = ?", strutil.UpperCase(key)).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get env var %q: %w", key, err)
	}
	return &v, nil
}

// Set stores value under key, inserting or updating as needed.
func (s *GormStore) Set(ctx context.Context, key string, value interface{}) (*EnvVar, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value for env var %q: %w", key, err)
	}

	v := EnvVar{Key: key, Value: datatypes.JSON(raw)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&v).Error
	if err != nil {
		return nil, fmt.Errorf("failed to set env var %q: %w", key, err)
	}
	return &v, nil
}

// Unset removes the variable stored under key.
func (s *GormStore) Unset(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("key = ?", strutil.UpperCase(key)).Delete(&EnvVar{})
	if result.Error != nil {
		return fmt.Errorf("failed to unset env var %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// All returns every variable, ordered by key.
func (s *GormStore) All(ctx context.Context) ([]EnvVar, error) {
	var vars []EnvVar
	if err := s.db.WithContext(ctx).Order("key").Find(&vars).Error; err != nil {
		return nil, fmt.Errorf("failed to list env vars: %w", err)
	}
	return vars, nil
}
