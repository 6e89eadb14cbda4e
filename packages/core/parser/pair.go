package parser

import (
	"errors"
	"strings"
)

var errMissingSeparator = errors.New("expected key=value")

// KVPair is a key=value argument destined for a JSON request body.
type KVPair struct {
	Key   string
	Value string
}

// ParsePair splits token on its first '='. Everything after that separator,
// including further '=' characters, is the value. An empty value is valid.
func ParsePair(token string) (KVPair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KVPair{}, &ParseError{Kind: MalformedPair, Input: token, Err: errMissingSeparator}
	}
	return KVPair{Key: key, Value: value}, nil
}

// ParsePairs parses tokens in order and stops at the first malformed one.
func ParsePairs(tokens []string) ([]KVPair, error) {
	pairs := make([]KVPair, 0, len(tokens))
	for _, token := range tokens {
		pair, err := ParsePair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
