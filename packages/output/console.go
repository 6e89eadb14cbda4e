package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const jsonMediaType = "application/json"

var errNotTypeSubtype = errors.New("expected type/subtype")

// jsonLayout expands every array and object, one element per line
var jsonLayout = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

type ResponseRenderer struct {
	writer  io.Writer
	noColor bool
}

type RendererOption func(*ResponseRenderer)

func NewResponseRenderer(opts ...RendererOption) *ResponseRenderer {
	r := &ResponseRenderer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) RendererOption {
	return func(r *ResponseRenderer) {
		r.writer = w
	}
}

func WithNoColor(nc bool) RendererOption {
	return func(r *ResponseRenderer) {
		r.noColor = nc
	}
}

// Render writes status line, headers and body. The body is only written once
// it has been fully classified, so a failed render never prints part of it.
func (r *ResponseRenderer) Render(resp *http.Response) error {
	r.renderStatus(resp)
	r.renderHeaders(resp)

	body, err := formatBody(resp)
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.writer, body)
	return err
}

func (r *ResponseRenderer) renderStatus(resp *http.Response) {
	blue := color.New(color.FgBlue).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", blue(resp.StatusLine()))
}

// Header names are sorted so identical responses always render identically.
// Repeated headers keep their received value order.
func (r *ResponseRenderer) renderHeaders(resp *http.Response) {
	green := color.New(color.FgGreen).SprintFunc()

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range resp.Headers[name] {
			fmt.Fprintf(r.writer, "%s: %s\n", green(name), value)
		}
	}
	fmt.Fprintf(r.writer, "\n")
}

func formatBody(resp *http.Response) (string, error) {
	isJSON, err := isJSONResponse(resp)
	if err != nil {
		return "", err
	}
	if !isJSON || len(bytes.TrimSpace(resp.Body)) == 0 {
		return resp.BodyString() + "\n", nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return "", &RenderError{Kind: ErrMalformedJSONBody}
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	return cyan(string(pretty.PrettyOptions(resp.Body, jsonLayout))), nil
}

// isJSONResponse reports whether the declared media type's essence is exactly
// application/json. A missing header means plain text.
func isJSONResponse(resp *http.Response) (bool, error) {
	contentType, ok := resp.ContentType()
	if !ok {
		return false, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false, &RenderError{Kind: ErrInvalidContentType, Value: contentType, Err: err}
	}

	// ParseMediaType also accepts bare tokens such as "json"
	mainType, subType, found := strings.Cut(mediaType, "/")
	if !found || mainType == "" || subType == "" {
		return false, &RenderError{Kind: ErrInvalidContentType, Value: contentType, Err: errNotTypeSubtype}
	}
	return mediaType == jsonMediaType, nil
}

// FormatError prints a top-level failure.
func FormatError(w io.Writer, err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
}
