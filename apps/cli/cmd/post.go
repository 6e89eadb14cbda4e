package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <url> [key=value...]",
	Short: "POST key=value pairs as JSON and print the response",
	Long: `Send the key=value pairs as a JSON object to the URL and print the response.
Values are always strings. When a key repeats, the last value wins.

Examples:
  httpie post https://httpbin.org/post a=1 b=2
  httpie post https://httpbin.org/post name="John Doe" empty=`,
	Args: cobra.MinimumNArgs(1),
	RunE: postCommand,
}

func postCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	command, err := parser.ParsePost(args)
	if err != nil {
		return err
	}
	return runRequest(cmd, command)
}
