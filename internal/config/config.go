// Package config loads fixturegen settings from the environment, an
// optional .env file, or a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/logging"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. FIXTURE_ITEM_COUNT.
const EnvPrefix = "fixture"

// Config represents the fixturegen configuration.
type Config struct {
	ItemCount   int    `envconfig:"ITEM_COUNT" default:"100" yaml:"item_count" json:"item_count"`
	PageWidth   int    `envconfig:"PAGE_WIDTH" default:"10" yaml:"page_width" json:"page_width"`
	Scheme      string `envconfig:"SCHEME" default:"page_id" yaml:"scheme" json:"scheme"`
	Windowing   string `envconfig:"WINDOWING" default:"disjoint" yaml:"windowing" json:"windowing"`
	Lightweight bool   `envconfig:"LIGHTWEIGHT" default:"false" yaml:"lightweight" json:"lightweight"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level" json:"log_level"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false" yaml:"log_pretty" json:"log_pretty"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:"localhost:6379" yaml:"redis_addr" json:"redis_addr"`
	RedisDB   int           `envconfig:"REDIS_DB" default:"0" yaml:"redis_db" json:"redis_db"`
	Namespace string        `envconfig:"NAMESPACE" yaml:"namespace" json:"namespace"`
	TTL       time.Duration `envconfig:"TTL" default:"1h" yaml:"ttl" json:"ttl"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		ItemCount: 100,
		PageWidth: 10,
		Scheme:    string(fixture.SchemePageID),
		Windowing: string(fixture.WindowingDisjoint),
		LogLevel:  string(logging.LevelInfo),
		RedisAddr: "localhost:6379",
		TTL:       time.Hour,
	}
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	config := new(Config)
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile reads a YAML configuration. Keys missing from the file keep
// their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes cfg as YAML.
func SaveToFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FixtureConfig converts the build settings into a fixture.Config.
// Unknown scheme or windowing names are rejected.
func (c *Config) FixtureConfig() (fixture.Config, error) {
	scheme, err := fixture.ParseScheme(c.Scheme)
	if err != nil {
		return fixture.Config{}, err
	}
	windowing, err := fixture.ParseWindowing(c.Windowing)
	if err != nil {
		return fixture.Config{}, err
	}
	cfg := fixture.Config{
		ItemCount:          c.ItemCount,
		PageWidth:          c.PageWidth,
		Scheme:             scheme,
		Windowing:          windowing,
		IncludeLightweight: c.Lightweight,
	}
	return cfg, cfg.Validate()
}

// LoggingConfig converts the log settings into a logging.Config.
func (c *Config) LoggingConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, err
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Pretty = c.LogPretty
	return cfg, nil
}
