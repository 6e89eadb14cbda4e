package config

// DefaultUserAgent is sent when no version-specific agent is configured
const DefaultUserAgent = "httpie/dev"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:   0, // wait as long as the transport does
		Insecure:  false,
		NoColor:   false,
		Verbose:   false,
		UserAgent: DefaultUserAgent,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	return *c == *DefaultConfig()
}
