package config

import (
	"fmt"
	"time"
)

// Config represents the settings of a single invocation
type Config struct {
	Timeout   time.Duration // zero disables the client-side timeout
	Insecure  bool          // skip TLS certificate verification
	NoColor   bool
	Verbose   bool
	UserAgent string
}

// Validate reports settings that cannot be used to build a client
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	// Negative values are carried over so Validate can reject them
	if other.Timeout != 0 {
		result.Timeout = other.Timeout
	}
	if other.UserAgent != "" {
		result.UserAgent = other.UserAgent
	}

	// Boolean flags only ever switch behavior on
	result.Insecure = result.Insecure || other.Insecure
	result.NoColor = result.NoColor || other.NoColor
	result.Verbose = result.Verbose || other.Verbose

	return &result
}
