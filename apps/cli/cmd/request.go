package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/abdul-hamid-achik/httpie/packages/logger"
	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/spf13/cobra"
)

// runRequest dispatches command and renders the response to the command's stdout.
func runRequest(cmd *cobra.Command, command parser.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = log.Sync() }()

	client := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithValidateSSL(!cfg.Insecure),
		http.WithUserAgent(cfg.UserAgent),
		http.WithLogger(log),
	)

	resp, err := client.Dispatch(cmd.Context(), command)
	if err != nil {
		return err
	}
	log.Debugw("rendering response", "status", resp.StatusCode, "duration_ms", resp.DurationMs())

	renderer := output.NewResponseRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(cfg.NoColor),
	)
	return renderer.Render(resp)
}
