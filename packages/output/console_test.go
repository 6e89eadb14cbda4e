package output

import (
	"bytes"
	"errors"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(buf *bytes.Buffer) *ResponseRenderer {
	return NewResponseRenderer(WithWriter(buf), WithNoColor(true))
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers: nethttp.Header{
			"Content-Type":   {"application/json"},
			"Content-Length": {"17"},
			"Date":           {"Wed, 14 Oct 2026 10:00:00 GMT"},
		},
		Body: []byte(body),
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := newTestRenderer(&buf).Render(jsonResponse(`{"a":"1","b":"2"}`))
	require.NoError(t, err)

	expected := "HTTP/1.1 200 OK\n" +
		"Content-Length: 17\n" +
		"Content-Type: application/json\n" +
		"Date: Wed, 14 Oct 2026 10:00:00 GMT\n" +
		"\n" +
		"{\n  \"a\": \"1\",\n  \"b\": \"2\"\n}\n"
	assert.Equal(t, expected, buf.String())
}

func TestRender_JSONWithParameters(t *testing.T) {
	resp := jsonResponse(`{"ok":true}`)
	resp.Headers.Set("Content-Type", "Application/JSON; charset=utf-8")

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(resp))
	assert.True(t, strings.HasSuffix(buf.String(), "{\n  \"ok\": true\n}\n"))
}

func TestRender_PlainText(t *testing.T) {
	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 404,
		Status:     "404 Not Found",
		Headers:    nethttp.Header{"Content-Type": {"text/plain; charset=utf-8"}},
		Body:       []byte(`{"a":1}`),
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(resp))
	assert.Equal(t, "HTTP/1.1 404 Not Found\nContent-Type: text/plain; charset=utf-8\n\n{\"a\":1}\n", buf.String())
}

func TestRender_NoContentType(t *testing.T) {
	resp := &http.Response{StatusCode: 200, Headers: nethttp.Header{}, Body: []byte("not json {")}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(resp))
	assert.Equal(t, "HTTP/1.1 200 OK\n\nnot json {\n", buf.String())
}

func TestRender_JSONSuffixTypeIsRaw(t *testing.T) {
	resp := jsonResponse(`{"a":1}`)
	resp.Headers.Set("Content-Type", "application/problem+json")

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(resp))
	assert.True(t, strings.HasSuffix(buf.String(), "\n\n{\"a\":1}\n"))
}

func TestRender_MalformedJSON(t *testing.T) {
	body := `{"a": 1,`
	var buf bytes.Buffer
	err := newTestRenderer(&buf).Render(jsonResponse(body))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedJSONBody))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)

	// status and headers are out, the body is not
	assert.Contains(t, buf.String(), "HTTP/1.1 200 OK\n")
	assert.NotContains(t, buf.String(), body)
}

func TestRender_InvalidContentType(t *testing.T) {
	for _, ct := range []string{"", "not a mime", "application/", "json", "abc", "application", "/json"} {
		t.Run(ct, func(t *testing.T) {
			resp := jsonResponse(`{}`)
			resp.Headers.Set("Content-Type", ct)

			var buf bytes.Buffer
			err := newTestRenderer(&buf).Render(resp)
			assert.ErrorIs(t, err, ErrInvalidContentType)
			assert.NotContains(t, buf.String(), "{}")
		})
	}
}

func TestRender_JSONArraysExpanded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(jsonResponse(`{"z":[1,2],"e":[],"a":{"b":null}}`)))

	expected := "{\n" +
		"  \"z\": [\n" +
		"    1,\n" +
		"    2\n" +
		"  ],\n" +
		"  \"e\": [],\n" +
		"  \"a\": {\n" +
		"    \"b\": null\n" +
		"  }\n" +
		"}\n"
	assert.True(t, strings.HasSuffix(buf.String(), "GMT\n\n"+expected), buf.String())
}

func TestRender_EmptyJSONBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(jsonResponse("")))
	assert.True(t, strings.HasSuffix(buf.String(), "GMT\n\n\n"))
}

func TestRender_RepeatedHeaderValues(t *testing.T) {
	resp := &http.Response{
		StatusCode: 200,
		Headers:    nethttp.Header{"Set-Cookie": {"b=2", "a=1"}},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(&buf).Render(resp))
	assert.Equal(t, "HTTP/1.1 200 OK\nSet-Cookie: b=2\nSet-Cookie: a=1\n\n\n", buf.String())
}

func TestRender_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, newTestRenderer(&first).Render(jsonResponse(`{"z":[1,2],"a":{"b":null}}`)))
	require.NoError(t, newTestRenderer(&second).Render(jsonResponse(`{"z":[1,2],"a":{"b":null}}`)))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRender_Colored(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	color.NoColor = false

	var buf bytes.Buffer
	r := &ResponseRenderer{writer: &buf}
	require.NoError(t, r.Render(jsonResponse(`{"a":"1"}`)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[34mHTTP/1.1 200 OK\x1b[0m")
	assert.Contains(t, out, "\x1b[32mContent-Type\x1b[0m: application/json")
	assert.Contains(t, out, "\x1b[36m{")
}

func TestFormatError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom")
}
