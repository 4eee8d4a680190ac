package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, loaded from YAML with environment
// overrides applied on top.
type Config struct {
	Addr string     `yaml:"addr" json:"addr"`
	Seed []SeedTask `yaml:"seed" json:"seed"`
}

// SeedTask describes a task created at boot. Optional fields left empty are
// skipped; the values pass through the normal validated constructors, so a
// bad seed fails startup with the precise field error.
type SeedTask struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Status      string `yaml:"status,omitempty" json:"status,omitempty"`
	DueDate     string `yaml:"due_date,omitempty" json:"due_date,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr: ":8080",
	}
}

// Load reads and parses a YAML config file, filling unset fields from the
// defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = Default().Addr
	}
}
