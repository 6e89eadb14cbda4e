package parser

import "fmt"

// Command is one request to issue. The only implementations are Get and Post;
// callers switch on the concrete type.
type Command interface {
	Method() string
	Target() ValidatedURL
	isCommand()
}

// Get fetches URL with no request body.
type Get struct {
	URL ValidatedURL
}

// Post sends Body as a JSON object to URL.
type Post struct {
	URL  ValidatedURL
	Body []KVPair
}

func (Get) Method() string  { return "GET" }
func (Post) Method() string { return "POST" }

func (g Get) Target() ValidatedURL  { return g.URL }
func (p Post) Target() ValidatedURL { return p.URL }

func (Get) isCommand()  {}
func (Post) isCommand() {}

// JSONBody builds the request body mapping. Duplicate keys keep the last value.
func (p Post) JSONBody() map[string]string {
	body := make(map[string]string, len(p.Body))
	for _, pair := range p.Body {
		body[pair.Key] = pair.Value
	}
	return body
}

// ParseGet builds a Get from the positional arguments of the get command.
func ParseGet(args []string) (Get, error) {
	if len(args) != 1 {
		return Get{}, fmt.Errorf("get expects exactly one URL, got %d arguments", len(args))
	}
	u, err := ValidateURL(args[0])
	if err != nil {
		return Get{}, err
	}
	return Get{URL: u}, nil
}

// ParsePost builds a Post from a URL followed by zero or more key=value tokens.
func ParsePost(args []string) (Post, error) {
	if len(args) < 1 {
		return Post{}, fmt.Errorf("post expects a URL")
	}
	u, err := ValidateURL(args[0])
	if err != nil {
		return Post{}, err
	}
	pairs, err := ParsePairs(args[1:])
	if err != nil {
		return Post{}, err
	}
	return Post{URL: u, Body: pairs}, nil
}
