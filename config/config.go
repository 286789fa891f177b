// Package config holds the watch run configuration, assembled from CLI
// flags and an optional YAML file.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is the number of seconds between checks when no interval
// is configured.
const DefaultInterval = 0.1

// Config describes one watch run: which paths to discover, how often to
// look, and what to run when something changes.
type Config struct {
	// Exact lists literal paths to watch.
	Exact []string `yaml:"exact"`

	// Glob lists extended glob patterns to watch.
	Glob []string `yaml:"glob"`

	// Interval is the number of seconds between checks while nothing is
	// changing.
	Interval float64 `yaml:"interval"`

	// Sleep is the number of seconds to pause after the command has run,
	// during which no checks happen. When nil it defaults to Interval.
	Sleep *float64 `yaml:"sleep"`

	// Command is the command to run when a change is detected. The tokens
	// are joined with spaces and executed through the shell, after
	// substituting $diff, $path and $mtime placeholders.
	Command []string `yaml:"command"`
}

// Load reads a watch configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize fills in defaults for unset fields.
func (c *Config) Normalize() {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.Sleep == nil {
		sleep := c.Interval
		c.Sleep = &sleep
	}
}

// Validate reports the first configuration problem, if any. It does not
// check glob syntax; explorer construction does that with better context.
func (c *Config) Validate() error {
	if len(c.Command) == 0 {
		return errors.New("no command was given")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be a positive number of seconds")
	}
	if c.Sleep != nil && *c.Sleep <= 0 {
		return errors.New("sleep must be a positive number of seconds")
	}
	if len(c.Exact)+len(c.Glob) == 0 {
		return errors.New("empty path discovery list")
	}
	return nil
}
