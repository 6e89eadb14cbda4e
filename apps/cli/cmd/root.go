package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var errMissingCommand = errors.New("missing command: use get or post")

var rootCmd = &cobra.Command{
	Use:   "httpie",
	Short: "A tiny HTTP client for the terminal.",
	Long: `httpie sends one GET or POST request and prints the response:
the status line, every header, and the body. JSON bodies are
pretty-printed.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errMissingCommand
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.Version = version
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		output.FormatError(stderr, err)
	}
	return exitCodeFor(err)
}

func init() {
	addClientFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(versionCmd)
}
