// Package config provides configuration management for gormbase.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files, tracking the
// source of every value so operators can audit the effective settings.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration file (optional, GORMBASE_CONFIG_PATH/gormbase.yml)
//   - Built-in defaults
//
// # Key Configuration Options
//
//   - DATABASE_URL: Database connection
//   - GORMBASE_PORT: Server listen port
//   - GORMBASE_JWT_SECRET: Bearer token signing secret
//   - GORMBASE_LOG_LEVEL: Logging verbosity
//   - GORMBASE_MATCH: Autocomplete match mode
package config
