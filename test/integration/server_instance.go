package integration

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gormbase/gormbase/pkg/autocomplete"
	"github.com/gormbase/gormbase/pkg/envvar"
	"github.com/gormbase/gormbase/pkg/middleware"
	"github.com/gormbase/gormbase/pkg/server"
)

// portCounter is used to allocate unique ports for each test server
var portCounter int32 = 19000

// ServerConfig holds the autocomplete settings for a test server instance
type ServerConfig struct {
	Match       autocomplete.Match
	PageLimit   int
	MinInputLen int
}

// DefaultServerConfig returns the default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Match:     autocomplete.MatchContains,
		PageLimit: autocomplete.DefaultPageLimit,
	}
}

// ServerInstance represents a running gormbase server for a single test
type ServerInstance struct {
	Server        *server.Server
	ServerURL     string
	Port          int
	Config        ServerConfig
	cancel        context.CancelFunc
	listener      net.Listener
	serverProcess *exec.Cmd // For binary mode
	inlineMode    bool
}

// StartServer creates and starts a new server instance against the test
// database. This supports both inline and binary modes based on how the
// test suite was started.
func StartServer(tc *TestContext, cfg ServerConfig) (*ServerInstance, error) {
	if tc.InlineMode {
		return startInlineServerInstance(tc.DatabaseURL, tc.JWTSecret, cfg)
	}
	return startBinaryServerInstance(tc.BinaryPath, tc.DatabaseURL, cfg)
}

// startInlineServerInstance starts an in-process server
func startInlineServerInstance(dbURL string, secret []byte, cfg ServerConfig) (*ServerInstance, error) {
	// Allocate a unique port
	port := int(atomic.AddInt32(&portCounter, 1))

	// Create DB connection for this server instance
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dbURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := envvar.NewGormStore(db)
	auth := middleware.NewBearerAuthenticator(secret)

	// Create server
	s := server.NewServer(db, fmt.Sprintf("127.0.0.1:%d", port))
	s.RegisterHealthEndpoint()
	envvar.RegisterEndpoints(s.Router, store, auth.Middleware)

	endpoint, err := autocomplete.New(db, &envvar.EnvVar{}, autocomplete.Options{
		IDColumn:    "key",
		Match:       cfg.Match,
		PageLimit:   cfg.PageLimit,
		MinInputLen: cfg.MinInputLen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build autocomplete endpoint: %w", err)
	}
	autocompleteRouter := autocomplete.RegisterEndpoints(s.Router, map[string]*autocomplete.Endpoint{
		"variables": endpoint,
	})
	autocompleteRouter.Use(auth.Optional)

	// Create a listener to get the actual port
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on port %d: %w", port, err)
	}

	_, cancel := context.WithCancel(context.Background())

	instance := &ServerInstance{
		Server:     s,
		ServerURL:  fmt.Sprintf("http://127.0.0.1:%d", port),
		Port:       port,
		Config:     cfg,
		cancel:     cancel,
		listener:   listener,
		inlineMode: true,
	}

	// Start server in background using the listener
	go func() {
		_ = s.StartWithListener(listener)
	}()

	// Wait for server to be ready
	if err := waitForServerWithTimeout(instance.ServerURL, 10*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return instance, nil
}

// startBinaryServerInstance starts a server using the gormbasectl binary
func startBinaryServerInstance(binaryPath, dbURL string, cfg ServerConfig) (*ServerInstance, error) {
	// Allocate a unique port
	port := int(atomic.AddInt32(&portCounter, 1))
	portStr := strconv.Itoa(port)

	ctx, cancel := context.WithCancel(context.Background())

	cmd := exec.CommandContext(ctx, binaryPath, "serve", "--no-migrate", "-b", "127.0.0.1", "-p", portStr)
	cmd.Env = append(os.Environ(),
		"DATABASE_URL="+dbURL,
		"GORMBASE_JWT_SECRET="+testJWTSecret,
		"GORMBASE_CONFIG_PATH=/nonexistent",
		"GORMBASE_MATCH="+cfg.Match.String(),
		"GORMBASE_PAGE_LIMIT="+strconv.Itoa(cfg.PageLimit),
		"GORMBASE_MIN_INPUT_LEN="+strconv.Itoa(cfg.MinInputLen),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start binary: %w", err)
	}

	instance := &ServerInstance{
		ServerURL:     fmt.Sprintf("http://127.0.0.1:%d", port),
		Port:          port,
		Config:        cfg,
		cancel:        cancel,
		serverProcess: cmd,
		inlineMode:    false,
	}

	// Wait for server to be ready
	if err := waitForServerWithTimeout(instance.ServerURL, 30*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return instance, nil
}

// Stop shuts down the server instance
func (si *ServerInstance) Stop() {
	if si.cancel != nil {
		si.cancel()
	}
	if si.listener != nil {
		_ = si.listener.Close()
	}
	if si.serverProcess != nil && si.serverProcess.Process != nil {
		_ = si.serverProcess.Process.Kill()
		_ = si.serverProcess.Wait()
	}
}

// waitForServerWithTimeout polls the server until it responds or times out
func waitForServerWithTimeout(serverURL string, timeout time.Duration) error {
	return waitForServer(serverURL, timeout)
}
