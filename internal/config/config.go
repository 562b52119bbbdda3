// Package config loads the server configuration from a yaml file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values like "5m" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the application configuration
type Config struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	DatasetPath string `yaml:"dataset_path"`
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`
	OpenAIKey   string `yaml:"openai_key"`
	LogLevel    string `yaml:"log_level"`

	Cache struct {
		Enabled    bool     `yaml:"enabled"`
		Expiration Duration `yaml:"expiration"`
	} `yaml:"cache"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads the yaml config file and applies environment overrides.
// A missing file is not an error; defaults still apply so the server
// can run against a local dataset with no config at all.
func Load(path string) (*Config, error) {
	config := defaults()

	contents, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(contents, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Secrets come from the environment, never from the file on disk.
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.OpenAIKey = key
	}
	if secret := os.Getenv("LAUDURE_JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if path := os.Getenv("LAUDURE_DATASET_PATH"); path != "" {
		config.DatasetPath = path
	}

	return config, nil
}

func defaults() *Config {
	config := &Config{
		Port:        8080,
		MetricsPort: 9090,
		DatasetPath: "data/augmented-fine-dining-dataset.json",
		DatabaseURL: "laudure.db",
		LogLevel:    "info",
	}
	config.Cache.Enabled = true
	config.Cache.Expiration = Duration(5 * time.Minute)
	config.CORS.AllowOrigins = []string{"*"}
	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"
	return config
}
