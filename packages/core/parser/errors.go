package parser

import "fmt"

// ErrorKind identifies why a command-line token was rejected.
type ErrorKind int

const (
	// MalformedPair means a body token has no '=' separator.
	MalformedPair ErrorKind = iota
	// InvalidURL means a token is not a syntactically valid absolute URL.
	InvalidURL
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedPair:
		return "malformed pair"
	case InvalidURL:
		return "invalid URL"
	default:
		return "unknown"
	}
}

// ParseError reports a token that could not be turned into part of a Command.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
