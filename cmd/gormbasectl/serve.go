package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gormbase/gormbase/pkg/autocomplete"
	"github.com/gormbase/gormbase/pkg/config"
	"github.com/gormbase/gormbase/pkg/db"
	"github.com/gormbase/gormbase/pkg/envvar"
	"github.com/gormbase/gormbase/pkg/middleware"
	"github.com/gormbase/gormbase/pkg/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gormbase variables server",
	Long: `Run the gormbase variables server.

The server exposes a bearer-token protected REST API over environment
variables and an autocomplete search endpoint. It requires the environment
variables DATABASE_URL and GORMBASE_JWT_SECRET.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags override configuration
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if addr, _ := cmd.Flags().GetString("bind-address"); addr != "" {
			cfg.ListenAddress = addr
		}

		// Validate required settings first (fail fast)
		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "GORMBASE_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		if err := database.AutoMigrate(&envvar.EnvVar{}); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to migrate variables table: %v\n", err)
			os.Exit(1)
		}

		store := envvar.NewGormStore(database)
		auth := middleware.NewBearerAuthenticator([]byte(cfg.JWTSecret))

		s := server.NewServer(database, cfg.Addr())
		s.RegisterHealthEndpoint()

		// The variables API requires a valid token
		envvar.RegisterEndpoints(s.Router, store, auth.Middleware)

		// Autocomplete answers anonymous callers with empty result sets,
		// so the token is optional here
		opts := cfg.AutocompleteOptions()
		opts.IDColumn = "key"
		endpoint := autocomplete.Must(database, &envvar.EnvVar{}, opts)
		autocompleteRouter := autocomplete.RegisterEndpoints(s.Router, map[string]*autocomplete.Endpoint{
			"variables": endpoint,
		})
		autocompleteRouter.Use(auth.Optional)

		// SIGHUP reloads configuration, matching `configuration apply`
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		go func() {
			for range sigChan {
				if err := config.Reload(); err != nil {
					log.Printf("Failed to reload configuration: %v", err)
					continue
				}
				log.Println("Configuration reloaded")
			}
		}()

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			go func() {
				err := config.Watch(context.Background(), func(c *config.Config) {
					log.Printf("Configuration reloaded from %s", c.ConfigFilePath())
				})
				if err != nil {
					log.Printf("Config watcher stopped: %v", err)
				}
			}()
		}

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "server listen port (overrides configuration)")
	serveCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides configuration)")
	serveCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serveCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
