package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SiteConfigFile is the optional per-site settings file in the source root.
const SiteConfigFile = ".notegen.yml"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// SiteConfig represents the structure of the .notegen.yml file.
type SiteConfig struct {
	// Title is shown in build summaries.
	Title string `yaml:"title"`

	// Glob patterns, relative to the source root, of entries to leave out.
	// Example: ["drafts", "**/private"]
	Exclude []string `yaml:"exclude"`

	// Skip entries whose name starts with a dot (.git, .obsidian, ...).
	SkipHidden bool `yaml:"skip_hidden"`

	// Order entries by name instead of the directory listing order.
	SortEntries bool `yaml:"sort_entries"`

	// Fail the build when two notes publish to the same output filename.
	StrictFilenames bool `yaml:"strict_filenames"`

	// Write the code highlighting stylesheet referenced by page headers.
	WriteStylesheet bool `yaml:"write_stylesheet"`
}

// DefaultSiteConfig returns a config with default values.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Exclude:         []string{},
		SkipHidden:      true,
		WriteStylesheet: true,
	}
}

// LoadSiteConfig loads and parses the .notegen.yml file from a source directory.
// A missing file yields the defaults together with ErrConfigNotFound.
func LoadSiteConfig(sourceDir string) (*SiteConfig, error) {
	configPath := filepath.Join(sourceDir, SiteConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSiteConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", SiteConfigFile, err)
	}

	config := DefaultSiteConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return config, nil
}
