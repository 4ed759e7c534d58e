// Package config loads the bookcat YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Catalog CatalogConfig `yaml:"catalog"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// LexiconConfig points at the word list files driving capitalization.
// Empty paths fall back to the embedded default lists.
type LexiconConfig struct {
	LowercaseTitleWords  string `yaml:"lowercase_title_words,omitempty"`
	LowercaseAuthorWords string `yaml:"lowercase_author_words,omitempty"`
	MacSurnames          string `yaml:"mac_surnames,omitempty"`
	AuthorTitles         string `yaml:"author_titles,omitempty"`
	// DisableMcPrefix turns off the Mc/Mac embedded-capital rule.
	DisableMcPrefix bool `yaml:"disable_mc_prefix,omitempty"`
	// Watch reloads the word list files on change in serve mode.
	Watch bool `yaml:"watch,omitempty"`
}

// CatalogConfig configures the catalogue store.
type CatalogConfig struct {
	// Database is the SQLite path; ":memory:" keeps the catalogue in memory.
	Database string `yaml:"database"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Listen  string `yaml:"listen"`
	Metrics bool   `yaml:"metrics"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load loads configuration from the specified file. A missing file is
// not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	loadEnvFile()

	config := &Config{}
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog.Database == "" {
		c.Catalog.Database = "bookcat.db"
	}
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks field values that have a closed set of options and
// that configured word list files exist.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q (want text or json)", c.Logging.Format)
	}

	for name, path := range map[string]string{
		"lowercase_title_words":  c.Lexicon.LowercaseTitleWords,
		"lowercase_author_words": c.Lexicon.LowercaseAuthorWords,
		"mac_surnames":           c.Lexicon.MacSurnames,
		"author_titles":          c.Lexicon.AuthorTitles,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("lexicon file %s: %w", name, err)
		}
	}
	return nil
}

const exampleConfig = `# bookcat configuration
lexicon:
  # One word per line; empty paths use the built-in lists.
  # lowercase_title_words: ./lowercase_title_words.txt
  # lowercase_author_words: ./lowercase_author_words.txt
  # mac_surnames: ./mac_surnames.txt
  # author_titles: ./author_titles.txt
  disable_mc_prefix: false
  watch: false

catalog:
  database: bookcat.db

server:
  listen: ":8080"
  metrics: true

logging:
  level: info
  format: text
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
