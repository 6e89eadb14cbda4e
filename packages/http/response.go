package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type Response struct {
	Proto      string // e.g. "HTTP/1.1"
	StatusCode int
	Status     string // e.g. "200 OK"
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

func newResponse(resp *resty.Response) *Response {
	headers := resp.Header().Clone()
	if headers == nil {
		headers = make(http.Header)
	}
	return &Response{
		Proto:      resp.Proto(),
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Headers:    headers,
		Body:       resp.Body(),
		Duration:   resp.Time(),
	}
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

// Header returns the first value of the named header, case-insensitively
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// ContentType returns the raw Content-Type value and whether the header was sent
func (r *Response) ContentType() (string, bool) {
	values := r.Headers.Values("Content-Type")
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// StatusLine formats the protocol version and status, e.g. "HTTP/1.1 200 OK"
func (r *Response) StatusLine() string {
	proto := r.Proto
	if proto == "" {
		proto = "HTTP/1.1"
	}
	status := r.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
	}
	return proto + " " + status
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
