package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working directory and the user config dir
const FileName = "stackshop.toml"

// Config represents the application configuration
type Config struct {
	Version  int            `mapstructure:"version" toml:"version"`
	API      APISettings    `mapstructure:"api" toml:"api"`
	Search   SearchSettings `mapstructure:"search" toml:"search"`
	UI       UISettings     `mapstructure:"ui" toml:"ui"`
	LogFile  string         `mapstructure:"log_file" toml:"log_file"`
	LogLevel string         `mapstructure:"log_level" toml:"log_level"`
}

// APISettings configures the storefront API client
type APISettings struct {
	BaseURL              string `mapstructure:"base_url" toml:"base_url"`
	Timeout              int    `mapstructure:"timeout" toml:"timeout"` // seconds
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second" toml:"max_requests_per_second"`
}

// SearchSettings configures the listing query
type SearchSettings struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms"`
	PageSize   int `mapstructure:"page_size" toml:"page_size"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool `mapstructure:"alt_screen" toml:"alt_screen"`
}

// DebounceWindow returns the search quiet period
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.Search.DebounceMs) * time.Millisecond
}

// RequestTimeout returns the per-request API timeout
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
	DefaultPath() string
}

type configService struct {
	searchPaths []string
	used        string
}

// NewConfigService creates a config service that searches the working directory first,
// then the stackshop directory under the user config dir
func NewConfigService() ConfigService {
	paths := []string{"."}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	paths = append(paths, filepath.Join(configDir, "stackshop"))

	return &configService{searchPaths: paths}
}

// NewConfigServiceWithPaths creates a config service with explicit search paths
func NewConfigServiceWithPaths(paths ...string) ConfigService {
	return &configService{searchPaths: paths}
}

// Load reads stackshop.toml from the search paths with STACKSHOP_* environment overrides.
// A missing file is not an error; defaults are returned.
func (cs *configService) Load() (*Config, error) {
	v := newViper()
	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	for _, p := range cs.searchPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	cs.used = v.ConfigFileUsed()

	return decode(v)
}

// LoadFromPath loads configuration from a specific file
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	cs.used = path

	return decode(v)
}

// SaveToPath writes the configuration as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	cs.used = path

	return nil
}

// Path returns the file the config was last loaded from or saved to, "" if none
func (cs *configService) Path() string {
	return cs.used
}

// DefaultPath is where a first run writes its config
func (cs *configService) DefaultPath() string {
	if len(cs.searchPaths) == 0 {
		return FileName
	}
	return filepath.Join(cs.searchPaths[len(cs.searchPaths)-1], FileName)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: "http://localhost:3000",
			Timeout: 10,
		},
		Search: SearchSettings{
			DebounceMs: 2000,
			PageSize:   20,
		},
		UI: UISettings{
			AltScreen: true,
		},
		LogFile:  "stackshop.log",
		LogLevel: "info",
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.SetEnvPrefix("stackshop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.max_requests_per_second", d.API.MaxRequestsPerSecond)
	v.SetDefault("search.debounce_ms", d.Search.DebounceMs)
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the storefront cannot run with
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set")
	}
	if c.Search.DebounceMs <= 0 {
		return fmt.Errorf("search.debounce_ms must be positive, got %d", c.Search.DebounceMs)
	}
	if c.Search.PageSize <= 0 {
		return fmt.Errorf("search.page_size must be positive, got %d", c.Search.PageSize)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %d", c.API.Timeout)
	}
	return nil
}
