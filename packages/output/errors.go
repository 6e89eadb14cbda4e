package output

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContentType matches a Content-Type header that is not a valid media type.
	ErrInvalidContentType = errors.New("invalid content type")
	// ErrMalformedJSONBody matches a body declared as JSON that does not parse.
	ErrMalformedJSONBody = errors.New("malformed JSON body")
)

// RenderError reports why a response could not be rendered.
type RenderError struct {
	Kind  error // ErrInvalidContentType or ErrMalformedJSONBody
	Value string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%v", e.Kind)
}

func (e *RenderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
