package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gormbase/gormbase/pkg/autocomplete"
)

// clearEnv blanks every variable the loader consults so tests are not
// affected by the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DATABASE_URL",
		"GORMBASE_CONFIG_PATH",
		"GORMBASE_LISTEN_ADDRESS",
		"GORMBASE_PORT",
		"GORMBASE_JWT_SECRET",
		"GORMBASE_TOKEN_TTL",
		"GORMBASE_PAGE_LIMIT",
		"GORMBASE_MIN_INPUT_LEN",
		"GORMBASE_MATCH",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GORMBASE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "", cfg.ListenAddress)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.JWTSecret)
	assert.Equal(t, 480, cfg.TokenTTL)
	assert.Equal(t, autocomplete.DefaultPageLimit, cfg.PageLimit)
	assert.Equal(t, 0, cfg.MinInputLen)
	assert.Equal(t, autocomplete.MatchContains, cfg.Match)

	for _, name := range attributeNames() {
		assert.Equal(t, "default", cfg.Source(name), "source of %s", name)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := `
port: 9090
jwt_secret: file-secret
page_limit: 25
match: prefix
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	t.Setenv("GORMBASE_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, 25, cfg.PageLimit)
	assert.Equal(t, autocomplete.MatchPrefix, cfg.Match)

	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "file", cfg.Source("jwt_secret"))
	assert.Equal(t, "file", cfg.Source("page_limit"))
	assert.Equal(t, "file", cfg.Source("match"))

	// Untouched settings keep their defaults
	assert.Equal(t, 480, cfg.TokenTTL)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("port: 9090\nmatch: prefix\n"),
		0644,
	))
	t.Setenv("GORMBASE_CONFIG_PATH", dir)
	t.Setenv("GORMBASE_PORT", "7070")
	t.Setenv("GORMBASE_MATCH", "exact")
	t.Setenv("DATABASE_URL", "postgres://localhost/gormbase")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, autocomplete.MatchExact, cfg.Match)
	assert.Equal(t, "postgres://localhost/gormbase", cfg.DatabaseURL)

	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, "environment", cfg.Source("match"))
	assert.Equal(t, "environment", cfg.Source("database_url"))
}

func TestEnvIgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GORMBASE_CONFIG_PATH", t.TempDir())
	t.Setenv("GORMBASE_PORT", "not-a-number")
	t.Setenv("GORMBASE_MATCH", "fuzzy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, autocomplete.MatchContains, cfg.Match)
	assert.Equal(t, "default", cfg.Source("port"))
	assert.Equal(t, "default", cfg.Source("match"))
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("port: [not closed"),
		0644,
	))
	t.Setenv("GORMBASE_CONFIG_PATH", dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestReloadReplacesGlobal(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("port: 9191\n"),
		0644,
	))
	t.Setenv("GORMBASE_CONFIG_PATH", dir)

	require.NoError(t, Reload())
	assert.Equal(t, 9191, Get().Port)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), Get().ConfigFilePath())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:      8080,
			TokenTTL:  480,
			PageLimit: 10,
			Match:     autocomplete.MatchContains,
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Port = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("page limit must be positive", func(t *testing.T) {
		cfg := valid()
		cfg.PageLimit = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative min input len", func(t *testing.T) {
		cfg := valid()
		cfg.MinInputLen = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown match value", func(t *testing.T) {
		cfg := valid()
		cfg.Match = autocomplete.Match(42)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid match value")
	})
}

func TestAddr(t *testing.T) {
	cfg := &Config{ListenAddress: "", Port: 8080}
	assert.Equal(t, ":8080", cfg.Addr())

	cfg = &Config{ListenAddress: "127.0.0.1", Port: 9090}
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestTokenTTLDuration(t *testing.T) {
	cfg := &Config{TokenTTL: 480}
	assert.Equal(t, 8*time.Minute, cfg.TokenTTLDuration())
}

func TestAutocompleteOptions(t *testing.T) {
	cfg := &Config{PageLimit: 5, MinInputLen: 2, Match: autocomplete.MatchPrefix}
	opts := cfg.AutocompleteOptions()

	assert.Equal(t, 5, opts.PageLimit)
	assert.Equal(t, 2, opts.MinInputLen)
	assert.Equal(t, autocomplete.MatchPrefix, opts.Match)
}

func TestFormatText(t *testing.T) {
	clearEnv(t)
	t.Setenv("GORMBASE_CONFIG_PATH", t.TempDir())
	t.Setenv("GORMBASE_JWT_SECRET", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "SOURCE")
	assert.Contains(t, text, "port")
	assert.Contains(t, text, "(not set)")

	// Secrets never appear in rendered output
	assert.NotContains(t, text, "super-secret")
	assert.Contains(t, text, "****")
}

func TestFormatJSON(t *testing.T) {
	clearEnv(t)
	t.Setenv("GORMBASE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.FormatJSON()
	require.NoError(t, err)

	var decoded struct {
		ConfigFile string      `json:"config_file"`
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, cfg.ConfigFilePath(), decoded.ConfigFile)
	assert.Len(t, decoded.Attributes, len(attributeNames()))
}
