package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/notegen/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	SourceDir      string
	OutputDir      string
	MediaDir       string
	MediaRequired  bool
	SourceRepo     string
	RepoCacheDir   string
	TreeDepth      int
	HighlightStyle string
	ServerPort     string
	Logging        logger.Config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SOURCE_DIR", "docs/")
	v.SetDefault("OUTPUT_DIR", "html/")
	v.SetDefault("MEDIA_DIR", "Notes/media")
	v.SetDefault("MEDIA_REQUIRED", false)
	v.SetDefault("SOURCE_REPO", "")
	v.SetDefault("REPO_CACHE_DIR", ".notegen/repos")
	v.SetDefault("TREE_DEPTH", 2)
	v.SetDefault("HIGHLIGHT_STYLE", "monokai")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("LOG_FILE", "")
}

// LoadConfig reads configuration from the global viper instance, which the CLI
// binds to flags, NOTEGEN_ environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from v after applying defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		SourceDir:      v.GetString("SOURCE_DIR"),
		OutputDir:      v.GetString("OUTPUT_DIR"),
		MediaDir:       v.GetString("MEDIA_DIR"),
		MediaRequired:  v.GetBool("MEDIA_REQUIRED"),
		SourceRepo:     v.GetString("SOURCE_REPO"),
		RepoCacheDir:   v.GetString("REPO_CACHE_DIR"),
		TreeDepth:      v.GetInt("TREE_DEPTH"),
		HighlightStyle: v.GetString("HIGHLIGHT_STYLE"),
		ServerPort:     v.GetString("SERVER_PORT"),
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late in a build.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" && c.SourceRepo == "" {
		return fmt.Errorf("SOURCE_DIR or SOURCE_REPO must be set")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("OUTPUT_DIR must be set")
	}
	if c.TreeDepth < 0 {
		return fmt.Errorf("TREE_DEPTH must not be negative, got %d", c.TreeDepth)
	}
	return nil
}
