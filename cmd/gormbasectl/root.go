package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gormbasectl",
	Short: "Manage a gormbase deployment",
	Long: `gormbasectl manages a gormbase deployment: database schema and
PostgreSQL extensions, configuration, bearer tokens, and the variables
server.`,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	Execute()
}
