package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// expectedExtensions are the PostgreSQL extensions the migrations enable
var expectedExtensions = []string{
	"btree_gin", "btree_gist", "citext", "pgcrypto",
	"hstore", "pg_trgm", "unaccent",
}

// dbExtensionsCmd represents the db extensions command
var dbExtensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Report installed PostgreSQL extensions",
	Long: `Report installed PostgreSQL extensions against the set the migrations enable.

Example:
  gormbasectl db extensions`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := showExtensions(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check extensions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbExtensionsCmd)
}

func showExtensions() error {
	dbURL := getDatabaseURL()
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query("SELECT extname, extversion FROM pg_extension ORDER BY extname")
	if err != nil {
		return fmt.Errorf("failed to query extensions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	installed := make(map[string]string)
	for rows.Next() {
		var name, version string
		if err := rows.Scan(&name, &version); err != nil {
			return fmt.Errorf("failed to scan extension row: %w", err)
		}
		installed[name] = version
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read extension rows: %w", err)
	}

	fmt.Printf("%-12s %-10s %s\n", "EXTENSION", "VERSION", "STATUS")
	missing := 0
	for _, name := range expectedExtensions {
		if version, ok := installed[name]; ok {
			fmt.Printf("%-12s %-10s installed\n", name, version)
		} else {
			fmt.Printf("%-12s %-10s missing\n", name, "-")
			missing++
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d extension(s) missing - run 'gormbasectl db migrate'", missing)
	}
	return nil
}
