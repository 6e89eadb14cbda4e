package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Send a GET request and print the response",
	Long: `Send a GET request to the URL and print the response.

Examples:
  httpie get https://httpbin.org/get
  httpie get https://httpbin.org/get --timeout 5s`,
	Args: cobra.ExactArgs(1),
	RunE: getCommand,
}

func getCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	command, err := parser.ParseGet(args)
	if err != nil {
		return err
	}
	return runRequest(cmd, command)
}
