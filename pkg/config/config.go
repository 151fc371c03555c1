package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gormbase/gormbase/pkg/autocomplete"
)

const (
	DefaultConfigPath = "/etc/gormbase/config"
	ConfigFileName    = "gormbase.yml"
)

// Config holds all gormbase configuration settings
type Config struct {
	// DatabaseURL is the PostgreSQL connection URL (defaults to DATABASE_URL)
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// ListenAddress is the address the server binds to (empty for all interfaces)
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// Port is the port the server listens on
	Port int `yaml:"port" json:"port" validate:"min=1,max=65535"`

	// JWTSecret signs and verifies bearer tokens
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`

	// TokenTTL is the lifetime of issued tokens in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl" validate:"min=1"`

	// PageLimit is the page size for autocomplete responses
	PageLimit int `yaml:"page_limit" json:"page_limit" validate:"min=1"`

	// MinInputLen is the minimum query length before an empty query lists records
	MinInputLen int `yaml:"min_input_len" json:"min_input_len" validate:"min=0"`

	// Match selects how autocomplete queries match search fields
	Match autocomplete.Match `yaml:"match" json:"match"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		DatabaseURL:   "",
		ListenAddress: "",
		Port:          8080,
		JWTSecret:     "",
		TokenTTL:      480,
		PageLimit:     autocomplete.DefaultPageLimit,
		MinInputLen:   0,
		Match:         autocomplete.MatchContains,
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	config.configFilePath = configFilePath()

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

// configFilePath resolves the config file location from GORMBASE_CONFIG_PATH
func configFilePath() string {
	configPath := os.Getenv("GORMBASE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return filepath.Join(configPath, ConfigFileName)
}

func attributeNames() []string {
	return []string{
		"database_url", "listen_address", "port", "jwt_secret",
		"token_ttl", "page_limit", "min_input_len", "match",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.ListenAddress != "" {
		c.ListenAddress = file.ListenAddress
		c.sources["listen_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.PageLimit != 0 {
		c.PageLimit = file.PageLimit
		c.sources["page_limit"] = "file"
	}
	if file.MinInputLen != 0 {
		c.MinInputLen = file.MinInputLen
		c.sources["min_input_len"] = "file"
	}
	if file.Match != autocomplete.MatchContains {
		c.Match = file.Match
		c.sources["match"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("GORMBASE_LISTEN_ADDRESS"); val != "" {
		c.ListenAddress = val
		c.sources["listen_address"] = "environment"
	}
	if val := os.Getenv("GORMBASE_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("GORMBASE_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("GORMBASE_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("GORMBASE_PAGE_LIMIT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PageLimit = i
			c.sources["page_limit"] = "environment"
		}
	}
	if val := os.Getenv("GORMBASE_MIN_INPUT_LEN"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MinInputLen = i
			c.sources["min_input_len"] = "environment"
		}
	}
	if val := os.Getenv("GORMBASE_MATCH"); val != "" {
		if m, err := autocomplete.MatchString(val); err == nil {
			c.Match = m
			c.sources["match"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ListenAddress, strconv.Itoa(c.Port))
}

// TokenTTLDuration returns the token TTL as a duration
func (c *Config) TokenTTLDuration() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// AutocompleteOptions maps the autocomplete settings onto an options struct.
// Callers fill in the per-endpoint pieces such as search fields.
func (c *Config) AutocompleteOptions() autocomplete.Options {
	return autocomplete.Options{
		MinInputLen: c.MinInputLen,
		Match:       c.Match,
		PageLimit:   c.PageLimit,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !c.Match.IsAMatch() {
		return fmt.Errorf("invalid match value: %d", c.Match)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "database_url", Value: c.DatabaseURL, Source: c.Source("database_url")},
		{Name: "listen_address", Value: c.ListenAddress, Source: c.Source("listen_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "jwt_secret", Value: maskSecret(c.JWTSecret), Source: c.Source("jwt_secret")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "page_limit", Value: strconv.Itoa(c.PageLimit), Source: c.Source("page_limit")},
		{Name: "min_input_len", Value: strconv.Itoa(c.MinInputLen), Source: c.Source("min_input_len")},
		{Name: "match", Value: c.Match.String(), Source: c.Source("match")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// maskSecret hides secret values in rendered output
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
