package http

import (
	"errors"
	"fmt"
)

// ErrTransport matches every failure raised while sending a request or reading
// its response: DNS, connect, TLS, timeout, cancellation or I/O.
var ErrTransport = errors.New("transport failure")

// RequestError describes a request that did not produce a response.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
