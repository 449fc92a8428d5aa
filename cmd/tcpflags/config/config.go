// Package config holds the options of the tcpflags command line tool
package config

import (
	"fmt"

	"github.com/els0r/tcpflags/pkg/results"
	"github.com/els0r/tcpflags/pkg/tcpflags"
)

// Config selects the flag set and output format. It is populated from command line
// flags, environment variables and an optional configuration file
type Config struct {
	RFC3540 bool   `mapstructure:"rfc3540" yaml:"rfc3540"` // RFC3540: include the ECN-nonce (NS) flag
	Short   bool   `mapstructure:"short" yaml:"short"`     // Short: abbreviate flag names to their first letter
	Format  string `mapstructure:"format" yaml:"format"`   // Format: output format. Example: txt
}

// New returns a configuration with default values
func New() *Config {
	return &Config{
		Format: results.DefaultFormat,
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if err := results.ValidateFormat(c.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	return nil
}

// FlagSet returns the flag set selected by the configuration
func (c *Config) FlagSet() tcpflags.FlagSet {
	flags := tcpflags.Select(c.RFC3540)
	if c.Short {
		return flags.Short()
	}
	return flags
}
