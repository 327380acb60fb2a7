package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/domain"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, "screensift", cfg.Service.Name)
	assert.Equal(t, 8074, cfg.Service.Port)
	assert.Equal(t, 4, cfg.Service.Concurrency)
	assert.Equal(t, "screensift.db", cfg.Database.Path)
	assert.Equal(t, []string{"eng"}, cfg.OCR.Languages)
	assert.Equal(t, classifier.DefaultThreshold, cfg.Classification.Threshold)
	assert.Equal(t, classifier.DefaultWeights(), cfg.Classification.Weights)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSetDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Classification.Threshold = 7.5
	cfg.Classification.Weights.Recipe.IngredientSection = 9
	cfg.SetDefaults()

	assert.Equal(t, 7.5, cfg.Classification.Threshold)
	// A partially set weight block is taken as-is, not overwritten.
	assert.Equal(t, 9.0, cfg.Classification.Weights.Recipe.IngredientSection)
	assert.Zero(t, cfg.Classification.Weights.Quote.Attribution)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"negative threshold", func(c *Config) { c.Classification.Threshold = -1 }, true},
		{"port out of range", func(c *Config) { c.Service.Port = 70000 }, true},
		{"unknown threshold label", func(c *Config) {
			c.Classification.Thresholds = map[string]float64{"banana": 3}
		}, true},
		{"known threshold label", func(c *Config) {
			c.Classification.Thresholds = map[string]float64{"quote": 3}
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.SetDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
service:
  port: 9000
  concurrency: 8
classification:
  threshold: 6
  thresholds:
    quote: 3
logging:
  level: debug
  format: console
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Service.Port)
	assert.Equal(t, 8, cfg.Service.Concurrency)
	assert.Equal(t, 6.0, cfg.Classification.Threshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset sections still pick up defaults.
	assert.Equal(t, "screensift.db", cfg.Database.Path)
	assert.Equal(t, classifier.DefaultWeights(), cfg.Classification.Weights)

	thresholds := cfg.DecisionThresholds()
	assert.Equal(t, 6.0, thresholds.For(domain.LabelRecipe))
	assert.Equal(t, 3.0, thresholds.For(domain.LabelQuote))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDecisionThresholds_NoOverrides(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	th := cfg.DecisionThresholds()
	assert.Equal(t, classifier.DefaultThreshold, th.Default)
	assert.Nil(t, th.PerLabel)
}
