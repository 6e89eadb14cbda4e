package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse_StatusLineFallbacks(t *testing.T) {
	resp := &Response{StatusCode: 404}
	assert.Equal(t, "HTTP/1.1 404 Not Found", resp.StatusLine())

	resp = &Response{Proto: "HTTP/2.0", StatusCode: 200, Status: "200 OK"}
	assert.Equal(t, "HTTP/2.0 200 OK", resp.StatusLine())
}

func TestResponse_ContentType(t *testing.T) {
	resp := &Response{Headers: http.Header{}}
	_, ok := resp.ContentType()
	assert.False(t, ok)

	resp.Headers.Set("Content-Type", "")
	ct, ok := resp.ContentType()
	assert.True(t, ok)
	assert.Equal(t, "", ct)

	resp.Headers.Set("content-type", "text/html; charset=utf-8")
	ct, ok = resp.ContentType()
	assert.True(t, ok)
	assert.Equal(t, "text/html; charset=utf-8", ct)
}
