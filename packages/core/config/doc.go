// Package config holds the runtime settings for an httpie invocation.
//
// Settings come from command-line flags only. The package provides
// default values and validation.
package config
