// Package gormbasectl provides the command line interface for the gormbase server.
//
// gormbase is a small library and service for PostgreSQL-backed applications built
// on GORM. It ships reusable model mixins, string normalization helpers, an
// autocomplete search endpoint factory, and a bearer-token protected REST API
// over environment variable records.
//
// # Architecture
//
// The repository is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/autocomplete: Autocomplete endpoint factory
//   - pkg/envvar: Environment variable records, storage, and REST API
//   - pkg/model: Reusable GORM model mixins
//   - pkg/strutil: String normalization helpers
//   - pkg/middleware: Bearer token authentication
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the gormbasectl CLI:
//
//	# Run database migrations (installs PostgreSQL extensions)
//	gormbasectl db migrate
//
//	# Start the server
//	gormbasectl serve
//
//	# Wait for the server to come up
//	gormbasectl wait
//
//	# Issue a bearer token for API access
//	gormbasectl token admin
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - GORMBASE_JWT_SECRET: Secret used to sign and verify bearer tokens
//   - GORMBASE_LISTEN_ADDRESS: Server bind address (default: all interfaces)
//   - GORMBASE_PORT: Server port (default: 8080)
//   - GORMBASE_TOKEN_TTL: Token lifetime in seconds (default: 480)
//   - GORMBASE_PAGE_LIMIT: Autocomplete page size (default: 10)
//   - GORMBASE_MIN_INPUT_LEN: Minimum autocomplete query length (default: 0)
//   - GORMBASE_MATCH: Autocomplete match mode (contains, prefix, exact)
//   - GORMBASE_CONFIG_PATH: Directory holding gormbase.yml (default: /etc/gormbase/config)
//   - GORMBASE_LOG_LEVEL: Log level (debug enables SQL logging)
//
// For more information, see https://github.com/gormbase/gormbase
package main
