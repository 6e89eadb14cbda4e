package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.False(t, cfg.Insecure)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.True(t, cfg.IsDefault())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg.Timeout = 5 * time.Second
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	merged := base.Merge(&Config{Timeout: 2 * time.Second, Verbose: true, UserAgent: "httpie/1.0.0"})

	assert.Equal(t, 2*time.Second, merged.Timeout)
	assert.True(t, merged.Verbose)
	assert.False(t, merged.Insecure)
	assert.Equal(t, "httpie/1.0.0", merged.UserAgent)
	assert.False(t, merged.IsDefault())

	// base is untouched
	assert.True(t, base.IsDefault())
}

func TestConfig_MergeNil(t *testing.T) {
	base := DefaultConfig()
	assert.Same(t, base, base.Merge(nil))
}

func TestConfig_MergeKeepsNegativeTimeoutForValidate(t *testing.T) {
	merged := DefaultConfig().Merge(&Config{Timeout: -time.Second})

	assert.Equal(t, -time.Second, merged.Timeout)
	assert.Error(t, merged.Validate())
}
