package config

import (
	"os"
	"strings"
)

// ApplyEnv overlays environment overrides onto the config. Falls back to the
// existing values when a variable is not set.
func (c *Config) ApplyEnv() {
	if addr := strings.TrimSpace(os.Getenv("CRUDDY_ADDR")); addr != "" {
		c.Addr = addr
	}
}
