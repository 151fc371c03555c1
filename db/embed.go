// Package db embeds the SQL migrations shipped with gormbase.
package db

import "embed"

// Migrations holds the migration files compiled into the binary.
//
//go:embed migrations/*.sql
var Migrations embed.FS
