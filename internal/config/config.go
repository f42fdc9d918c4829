// Package config provides configuration management for the text cleaning stage.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iryzhkov/nlp-pipeline/internal/corpus"
)

// EnvPrefix prefixes every environment override, e.g. NLP_TMP_PATH.
const EnvPrefix = "NLP_"

// Configuration validation errors.
var (
	ErrMissingTmpPath       = errors.New("pipeline.tmp_path is required")
	ErrSuffixCollision      = errors.New("pipeline.raw_suffix and pipeline.clean_suffix must differ")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidPreviewWidth  = errors.New("logging.preview_width must be at least 10")
	ErrInvalidJoinerSpacing = errors.New("cleaning.joiners must not contain whitespace")
)

// Config represents the complete stage configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains file layout settings shared by pipeline stages.
type PipelineConfig struct {
	TmpPath     string `yaml:"tmp_path" env:"TMP_PATH"`
	RawSuffix   string `yaml:"raw_suffix" env:"RAW_SUFFIX"`
	CleanSuffix string `yaml:"clean_suffix" env:"CLEAN_SUFFIX"`
}

// CleaningConfig contains token-level settings.
type CleaningConfig struct {
	Joiners   string `yaml:"joiners" env:"JOINERS"`
	Lemmatize bool   `yaml:"lemmatize" env:"LEMMATIZE"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level" env:"LOG_LEVEL"`
	PreviewWidth int    `yaml:"preview_width" env:"PREVIEW_WIDTH"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			TmpPath:     "./tmp",
			RawSuffix:   corpus.RawSuffix,
			CleanSuffix: corpus.CleanSuffix,
		},
		Cleaning: CleaningConfig{
			Joiners:   "=-",
			Lemmatize: true,
		},
		Logging: LoggingConfig{
			Level:        "info",
			PreviewWidth: 80,
		},
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// at path and NLP_* environment variables, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from NLP_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.TmpPath == "" {
		return ErrMissingTmpPath
	}

	if c.Pipeline.RawSuffix != "" && c.Pipeline.RawSuffix == c.Pipeline.CleanSuffix {
		return ErrSuffixCollision
	}

	for _, r := range c.Cleaning.Joiners {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return ErrInvalidJoinerSpacing
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.PreviewWidth < 10 {
		return ErrInvalidPreviewWidth
	}

	return nil
}

// TopicPaths returns the input and output paths for topic.
func (c *Config) TopicPaths(topic string) (corpus.Paths, error) {
	return corpus.TopicPaths(c.Pipeline.TmpPath, topic, c.Pipeline.RawSuffix, c.Pipeline.CleanSuffix)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{TmpPath: %s, Lemmatize: %t, LogLevel: %s}",
		c.Pipeline.TmpPath,
		c.Cleaning.Lemmatize,
		c.Logging.Level,
	)
}
