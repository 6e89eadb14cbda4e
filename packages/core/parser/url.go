package parser

import (
	"errors"
	neturl "net/url"
	"strings"
)

var (
	errNotAbsolute = errors.New("relative URL without a scheme")
	errMissingHost = errors.New("empty host")
)

// ValidatedURL is a URL string that passed ValidateURL. It is used verbatim.
type ValidatedURL string

func (u ValidatedURL) String() string {
	return string(u)
}

// ValidateURL checks that token parses as an absolute URL and returns it
// unchanged. Any scheme is accepted; http and https additionally need a host.
func ValidateURL(token string) (ValidatedURL, error) {
	u, err := neturl.Parse(token)
	if err != nil {
		var urlErr *neturl.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", &ParseError{Kind: InvalidURL, Input: token, Err: err}
	}

	if !u.IsAbs() {
		return "", &ParseError{Kind: InvalidURL, Input: token, Err: errNotAbsolute}
	}

	scheme := strings.ToLower(u.Scheme)
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return "", &ParseError{Kind: InvalidURL, Input: token, Err: errMissingHost}
	}

	return ValidatedURL(token), nil
}
