// Package config loads machine definitions from yaml files and provides
// the built-in preset machines.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marioveld/turmac/internal/machine"
	"github.com/marioveld/turmac/internal/notation"
)

const DefaultMaxSteps = 100000

// Config is a machine definition: a program in pattern notation, an
// initial tape, and a defensive step bound for runs.
type Config struct {
	Name     string   `yaml:"name"`
	Program  []string `yaml:"program"`
	Tape     string   `yaml:"tape"`
	MaxSteps int      `yaml:"max_steps"`
}

func Default() *Config {
	return &Config{
		Tape:     "o",
		MaxSteps: DefaultMaxSteps,
	}
}

// Load reads a machine definition from a yaml file. Missing fields keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a machine definition to a yaml file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build parses the definition into an executable machine.
func (c *Config) Build() (*machine.Machine, error) {
	if len(c.Program) == 0 {
		return nil, fmt.Errorf("config %q has no program", c.Name)
	}
	prog, err := notation.ParseProgram(c.Program)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", c.Name, err)
	}

	tapePattern := c.Tape
	if tapePattern == "" {
		tapePattern = "o"
	}
	symbols, err := notation.ParseTape(tapePattern)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", c.Name, err)
	}

	return machine.New(machine.NewTape(symbols...), prog), nil
}
