// Package config loads and validates the screensift configuration from a
// YAML file, environment variables, and defaults, in that precedence order.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
)

// Default configuration values.
const (
	defaultServiceName    = "screensift"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8074
	defaultConcurrency    = 4
	defaultDatabasePath   = "screensift.db"
	defaultOCRLanguage    = "eng"
)

// Config holds all configuration for screensift.
type Config struct {
	Service        ServiceConfig        `mapstructure:"service" yaml:"service"`
	Database       DatabaseConfig       `mapstructure:"database" yaml:"database"`
	OCR            OCRConfig            `mapstructure:"ocr" yaml:"ocr"`
	Classification ClassificationConfig `mapstructure:"classification" yaml:"classification"`
	Logging        logger.Config        `mapstructure:"logging" yaml:"logging"`
}

type ServiceConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Version     string `mapstructure:"version" yaml:"version"`
	Port        int    `mapstructure:"port" yaml:"port"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type OCRConfig struct {
	Languages []string `mapstructure:"languages" yaml:"languages"`
}

// ClassificationConfig is the tuning surface: the shared decision threshold,
// optional per-category overrides, and every rule weight.
type ClassificationConfig struct {
	Threshold  float64            `mapstructure:"threshold" yaml:"threshold"`
	Thresholds map[string]float64 `mapstructure:"thresholds" yaml:"thresholds"`
	Weights    classifier.Weights `mapstructure:"weights" yaml:"weights"`
}

// Load reads configuration from the given file, the SCREENSIFT_* environment,
// and built-in defaults. An empty path falls back to ./config.yaml and is
// optional; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("SCREENSIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		// No config file found; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Service.Concurrency == 0 {
		c.Service.Concurrency = defaultConcurrency
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDatabasePath
	}
	if len(c.OCR.Languages) == 0 {
		c.OCR.Languages = []string{defaultOCRLanguage}
	}
	if c.Classification.Threshold == 0 {
		c.Classification.Threshold = classifier.DefaultThreshold
	}
	if c.Classification.Weights == (classifier.Weights{}) {
		c.Classification.Weights = classifier.DefaultWeights()
	}
	c.Logging.SetDefaults()
}

// Validate checks the configuration for values that would silently corrupt a
// run, such as a threshold override keyed on an unknown label.
func (c *Config) Validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("service.port %d out of range", c.Service.Port)
	}
	if c.Classification.Threshold < 0 {
		return fmt.Errorf("classification.threshold must be non-negative")
	}
	for key := range c.Classification.Thresholds {
		if _, err := domain.ParseLabel(key); err != nil {
			return fmt.Errorf("classification.thresholds: %w", err)
		}
	}
	return nil
}

// DecisionThresholds converts the configured thresholds into the
// classifier's representation.
func (c *Config) DecisionThresholds() classifier.Thresholds {
	t := classifier.NewThresholds(c.Classification.Threshold)
	if len(c.Classification.Thresholds) > 0 {
		t.PerLabel = make(map[domain.Label]float64, len(c.Classification.Thresholds))
		for key, value := range c.Classification.Thresholds {
			label, err := domain.ParseLabel(key)
			if err != nil {
				continue
			}
			t.PerLabel[label] = value
		}
	}
	return t
}
