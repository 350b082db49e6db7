package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run outside any config.yaml so only defaults apply
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data", cfg.Data.Directory)
	assert.Equal(t, "training-categories.yaml", cfg.Corpus.File)
	assert.Equal(t, "categories.yaml", cfg.Corpus.CategoriesFile)
	assert.Equal(t, "models", cfg.Model.Directory)
	assert.Equal(t, 0.3, cfg.Categorization.ConfidenceThreshold)
	assert.Equal(t, 0.85, cfg.Categorization.FuzzyMinRatio)
	assert.Equal(t, 1, cfg.Training.MinDocumentFrequency)
	assert.Equal(t, 0.2, cfg.Training.HoldoutFraction)
	assert.True(t, cfg.Training.Augment)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_LOG_LEVEL", "debug")
	t.Setenv("TXN_CATEGORIZATION_CONFIDENCE_THRESHOLD", "0.5")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.5, cfg.Categorization.ConfidenceThreshold)
}

func TestInitializeConfig_InvalidThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_CATEGORIZATION_CONFIDENCE_THRESHOLD", "1.5")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_LOG_LEVEL", "loud")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_AIRequiresKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_APIKeyFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidateConfig_FuzzyRatio(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_CATEGORIZATION_FUZZY_MIN_RATIO", "2.0")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig_HoldoutFraction(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TXN_TRAINING_HOLDOUT_FRACTION", "1.0")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestConfigPaths(t *testing.T) {
	var cfg Config
	cfg.Data.Directory = "data"
	cfg.Corpus.File = "training-categories.yaml"
	cfg.Corpus.CategoriesFile = "categories.yaml"
	cfg.Model.Directory = "models"

	assert.Equal(t, filepath.Join("data", "training-categories.yaml"), cfg.CorpusPath())
	assert.Equal(t, filepath.Join("data", "categories.yaml"), cfg.CategoriesPath())
	assert.Equal(t, filepath.Join("data", "models"), cfg.ModelDir())
}

func TestConfigPaths_AbsoluteWins(t *testing.T) {
	var cfg Config
	cfg.Data.Directory = "data"
	cfg.Corpus.File = "/etc/txn/corpus.yaml"

	assert.Equal(t, "/etc/txn/corpus.yaml", cfg.CorpusPath())
}
