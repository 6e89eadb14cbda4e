package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/abdul-hamid-achik/httpie/packages/output"
)

// Exit codes for httpie CLI
const (
	// ExitSuccess indicates the response was received and rendered
	ExitSuccess = 0

	// ExitParseError indicates a malformed key=value pair or an invalid URL
	ExitParseError = 2

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitRenderError indicates the response could not be rendered
	ExitRenderError = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

func exitCodeFor(err error) int {
	var parseErr *parser.ParseError
	var renderErr *output.RenderError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.Is(err, http.ErrTransport):
		return ExitNetworkError
	case errors.As(err, &renderErr):
		return ExitRenderError
	default:
		return ExitUsageError
	}
}
