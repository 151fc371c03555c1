// Seeds the database with variables for the load benchmarks.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./benchmark/seed
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/lib/pq"
)

const count = 150000

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		panic(err)
	}
	defer func() { _ = db.Close() }()

	txn, err := db.Begin()
	if err != nil {
		panic(err)
	}

	stmt, err := txn.Prepare(pq.CopyIn("env_vars", "key", "value"))
	if err != nil {
		panic(err)
	}

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("BENCH_VAR_%d", i)
		value := fmt.Sprintf(`{"index": %d, "payload": "Hello, World!"}`, i)
		if _, err := stmt.Exec(key, value); err != nil {
			panic(err)
		}
	}

	if _, err := stmt.Exec(); err != nil {
		panic(err)
	}
	if err := stmt.Close(); err != nil {
		panic(err)
	}
	if err := txn.Commit(); err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d variables\n", count)
}
