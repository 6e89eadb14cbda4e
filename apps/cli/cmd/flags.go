package cmd

import (
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/spf13/pflag"
)

// clientFlags are shared by every request command
type clientFlags struct {
	timeout  time.Duration
	insecure bool
	noColor  bool
	verbose  bool
}

var flags clientFlags

func addClientFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&flags.timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m); 0 waits as long as the transport does")
	fs.BoolVarP(&flags.insecure, "insecure", "k", false, "Disable SSL certificate validation")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "Log request diagnostics to stderr")
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig().Merge(&config.Config{
		Timeout:   flags.timeout,
		Insecure:  flags.insecure,
		NoColor:   flags.noColor,
		Verbose:   flags.verbose,
		UserAgent: "httpie/" + version,
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
