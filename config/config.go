// Package config loads the foliar configuration from YAML. Values missing
// from the file keep their defaults; command-line flags override both.
package config

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/foliar/orient"
)

// Config is the complete foliar configuration.
type Config struct {
	Solver  Solver  `yaml:"solver"`
	Search  Search  `yaml:"search"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Solver selects the SAT backend.
type Solver struct {
	Backend string `yaml:"backend"`
}

// Search bounds the search.
type Search struct {
	Workers           int `yaml:"workers"`
	MaxOrientations   int `yaml:"max_orientations"`
	MaxTriangulations int `yaml:"max_triangulations"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Metrics toggles printing the counters at exit.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: Solver{Backend: orient.DefaultBackend},
		Search: Search{Workers: 4, MaxTriangulations: 10},
		Log:    Log{Level: logrus.InfoLevel.String()},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err = Parse(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML data into cfg, which should hold the defaults, and
// validates the result. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding yaml")
	}

	return cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if !slices.Contains(orient.Backends(), c.Solver.Backend) {
		return errors.Errorf("solver.backend: unknown backend %q", c.Solver.Backend)
	}
	if c.Search.Workers < 1 {
		return errors.Errorf("search.workers: must be >= 1, got %d", c.Search.Workers)
	}
	if c.Search.MaxOrientations < 0 {
		return errors.Errorf("search.max_orientations: must be >= 0, got %d", c.Search.MaxOrientations)
	}
	if c.Search.MaxTriangulations < 0 {
		return errors.Errorf("search.max_triangulations: must be >= 0, got %d", c.Search.MaxTriangulations)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}

	return nil
}
