// Package model provides reusable building blocks for PostgreSQL-backed
// GORM schemas.
//
// # Mixins
//
// Concrete models compose their schema by embedding mixins:
//
//   - IntPK / BigIntPK / SmallIntPK: auto-incrementing integer primary keys
//   - UUIDPK: random UUID primary key generated on create
//   - UniqueName / SnakeCaseName: required unique name columns
//   - OptionalUniqueName / OptionalSnakeCaseName: nullable variants
//   - Date / OptionalDate: indexed date-only columns
//   - Timestamps: auto-managed created_at/updated_at pair
//
// # Definitions
//
// Each concrete model declares a Definition naming its table and the
// options it composes. Definitions are validated against the model's
// embedded mixins, registered with a Registry and drive AutoMigrate.
package model
