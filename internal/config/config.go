// Package config handles the run configuration: which bibliography databases
// to process and where their generated artifacts go.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sagemath/pubparse/internal/parse"
)

// Styles for the generated HTML artifact.
const (
	// StyleMarkers splices ordered lists into an existing HTML page between
	// marker comment pairs.
	StyleMarkers = "markers"
	// StyleMacros writes a template-macro file defining one macro per
	// section.
	StyleMacros = "macros"
)

// Database describes one bibliography database and its outputs.
type Database struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title,omitempty"` // BibTeX file header, defaults to Name
	Input     string `yaml:"input"`
	Format    string `yaml:"format"` // flat or bibtex
	HTML      string `yaml:"html,omitempty"`
	HTMLStyle string `yaml:"html_style,omitempty"` // markers or macros
	BibTeX    string `yaml:"bibtex,omitempty"`
}

// Config is the top-level pubparse.yml structure.
type Config struct {
	Databases []Database `yaml:"databases"`
	Chmod     bool       `yaml:"chmod,omitempty"`
	Mode      string     `yaml:"mode,omitempty"`  // octal file mode, default 0755
	Index     string     `yaml:"index,omitempty"` // path of the SQLite index
}

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "pubparse.yml"

// DefaultIndex is the SQLite index path used when the config does not set one.
const DefaultIndex = "publications.db"

// DefaultPath returns the configuration file path, honoring the
// PUBPARSE_CONFIG environment variable.
func DefaultPath() string {
	if p := os.Getenv("PUBPARSE_CONFIG"); p != "" {
		return p
	}
	return DefaultFile
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for contradictions before any database
// is touched.
func (c *Config) Validate() error {
	if len(c.Databases) == 0 {
		return fmt.Errorf("no databases configured")
	}
	seen := make(map[string]bool)
	for i, db := range c.Databases {
		if db.Name == "" {
			return fmt.Errorf("database %d has no name", i)
		}
		if seen[db.Name] {
			return fmt.Errorf("duplicate database name %q", db.Name)
		}
		seen[db.Name] = true
		if db.Input == "" {
			return fmt.Errorf("database %q has no input file", db.Name)
		}
		if _, err := parse.ParseFormat(db.Format); err != nil {
			return fmt.Errorf("database %q: %w", db.Name, err)
		}
		if db.HTML == "" && db.BibTeX == "" {
			return fmt.Errorf("database %q has no outputs", db.Name)
		}
		switch db.HTMLStyle {
		case "", StyleMarkers, StyleMacros:
		default:
			return fmt.Errorf("database %q: unknown html_style %q (want markers or macros)", db.Name, db.HTMLStyle)
		}
	}
	if c.Mode != "" {
		if _, err := strconv.ParseUint(c.Mode, 8, 32); err != nil {
			return fmt.Errorf("invalid mode %q: %w", c.Mode, err)
		}
	}
	return nil
}

// FileMode returns the permission bits to enforce on outputs.
func (c *Config) FileMode() os.FileMode {
	if c.Mode == "" {
		return 0755
	}
	n, err := strconv.ParseUint(c.Mode, 8, 32)
	if err != nil {
		return 0755
	}
	return os.FileMode(n)
}

// IndexPath returns the SQLite index location.
func (c *Config) IndexPath() string {
	if c.Index == "" {
		return DefaultIndex
	}
	return c.Index
}

// Find returns the named database.
func (c *Config) Find(name string) (*Database, error) {
	for i := range c.Databases {
		if c.Databases[i].Name == name {
			return &c.Databases[i], nil
		}
	}
	return nil, fmt.Errorf("no database named %q in config", name)
}

// Style returns the effective HTML style, defaulting to marker splicing.
func (d *Database) Style() string {
	if d.HTMLStyle == "" {
		return StyleMarkers
	}
	return d.HTMLStyle
}

// HeaderTitle returns the BibTeX file header title.
func (d *Database) HeaderTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name + " publications"
}
