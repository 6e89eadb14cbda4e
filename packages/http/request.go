package http

import (
	"fmt"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any // marshaled according to the Content-Type header
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body any) *Request {
	r.Body = body
	return r
}

// BuildRequest converts a parsed command into a request. Post bodies become a
// JSON object of the command's pairs.
func BuildRequest(cmd parser.Command) (*Request, error) {
	switch c := cmd.(type) {
	case parser.Get:
		return NewRequest(c.Method(), c.URL.String()), nil
	case parser.Post:
		return NewRequest(c.Method(), c.URL.String()).
			SetHeader("Content-Type", "application/json").
			SetBody(c.JSONBody()), nil
	default:
		return nil, fmt.Errorf("unsupported command %T", cmd)
	}
}
