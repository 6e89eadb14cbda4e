package http

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// DefaultUserAgent is sent when WithUserAgent is not used
	DefaultUserAgent = "httpie/dev"
)

type Client struct {
	rc          *resty.Client
	timeout     time.Duration
	validateSSL bool
	userAgent   string
	logger      *zap.SugaredLogger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		validateSSL: true,
		userAgent:   DefaultUserAgent,
		logger:      zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(c)
	}

	rc := resty.New()
	rc.SetLogger(c.logger)
	rc.SetHeader("User-Agent", c.userAgent)

	// Zero leaves the transport defaults in charge
	if c.timeout > 0 {
		rc.SetTimeout(c.timeout)
	}

	// Configure TLS verification
	if !c.validateSSL {
		rc.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})
	}

	log := c.logger
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		log.Debugw("sending request", "method", req.Method, "url", req.URL)
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debugw("received response",
			"status", resp.StatusCode(),
			"proto", resp.Proto(),
			"bytes", len(resp.Body()),
			"duration", resp.Time(),
		)
		return nil
	})

	c.rc = rc
	return c
}

// WithTimeout bounds the whole exchange. Zero means no client-side limit.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithValidateSSL enables or disables SSL certificate validation
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func WithLogger(l *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Dispatch sends the one request cmd describes and waits for the full body.
func (c *Client) Dispatch(ctx context.Context, cmd parser.Command) (*Response, error) {
	req, err := BuildRequest(cmd)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	r := c.rc.R().SetContext(ctx)

	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		c.logger.Debugw("request failed", "method", req.Method, "url", req.URL, "error", err)
		return nil, &RequestError{Method: req.Method, URL: req.URL, Err: err}
	}

	return newResponse(resp), nil
}
