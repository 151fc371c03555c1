package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gormbase/gormbase/pkg/config"
	"github.com/gormbase/gormbase/pkg/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Issue a bearer token for the given subject",
	Long: `Issue a bearer token for the given subject.

The token is signed with the configured JWT secret and printed to stdout.
Pass it to the API in the Authorization header:

  curl -H "Authorization: Bearer $(gormbasectl token admin)" \
    http://localhost:8080/variables`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subject := args[0]

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "GORMBASE_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		token, err := middleware.IssueToken([]byte(cfg.JWTSecret), subject, cfg.TokenTTLDuration())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
