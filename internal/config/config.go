// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/txn-classify/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Corpus struct {
		File           string `mapstructure:"file" yaml:"file"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"corpus" yaml:"corpus"`

	Model struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"model" yaml:"model"`

	Categorization struct {
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
		FuzzyMinRatio       float64 `mapstructure:"fuzzy_min_ratio" yaml:"fuzzy_min_ratio"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Training struct {
		MinDocumentFrequency int     `mapstructure:"min_document_frequency" yaml:"min_document_frequency"`
		HoldoutFraction      float64 `mapstructure:"holdout_fraction" yaml:"holdout_fraction"`
		Augment              bool    `mapstructure:"augment" yaml:"augment"`
	} `mapstructure:"training" yaml:"training"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// CorpusPath returns the corpus file resolved against the data directory.
func (c *Config) CorpusPath() string {
	return resolvePath(c.Data.Directory, c.Corpus.File)
}

// CategoriesPath returns the categories file resolved against the data directory.
func (c *Config) CategoriesPath() string {
	return resolvePath(c.Data.Directory, c.Corpus.CategoriesFile)
}

// ModelDir returns the model directory resolved against the data directory.
func (c *Config) ModelDir() string {
	return resolvePath(c.Data.Directory, c.Model.Directory)
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// LoadEnv loads environment variables from a .env file if one exists. Missing
// files are fine; real environment variables always win.
func LoadEnv() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.txn-classify")
	v.AddConfigPath(".txn-classify")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TXN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars, but tell the user
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the unprefixed environment variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("corpus.file", "training-categories.yaml")
	v.SetDefault("corpus.categories_file", "categories.yaml")
	v.SetDefault("model.directory", "models")

	v.SetDefault("categorization.confidence_threshold", 0.3)
	v.SetDefault("categorization.fuzzy_min_ratio", 0.85)

	v.SetDefault("training.min_document_frequency", 1)
	v.SetDefault("training.holdout_fraction", 0.2)
	v.SetDefault("training.augment", true)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if t := config.Categorization.ConfidenceThreshold; t < 0.0 || t > 1.0 {
		return fmt.Errorf("categorization.confidence_threshold must be between 0.0 and 1.0, got: %f", t)
	}

	if r := config.Categorization.FuzzyMinRatio; r < 0.0 || r > 1.0 {
		return fmt.Errorf("categorization.fuzzy_min_ratio must be between 0.0 and 1.0, got: %f", r)
	}

	if config.Training.MinDocumentFrequency < 1 {
		return fmt.Errorf("training.min_document_frequency must be at least 1, got: %d",
			config.Training.MinDocumentFrequency)
	}

	if f := config.Training.HoldoutFraction; f < 0.0 || f >= 1.0 {
		return fmt.Errorf("training.holdout_fraction must be in [0.0, 1.0), got: %f", f)
	}

	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
	}

	return nil
}

// NewLogger builds the application logger from the Log section.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
