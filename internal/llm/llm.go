// Package llm describes provider-agnostic generation requests and the
// recovery of structured payloads from provider responses.
package llm

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// Request is a single generation call.
//
// With Schema set the provider is contracted to return JSON matching it.
// With Search set the provider may consult web search; providers that
// cannot combine search with a schema ignore the schema and the caller
// recovers JSON from free text.
type Request struct {
	System      string
	Prompt      string
	Schema      *Schema
	Search      bool
	MaxTokens   int
	Temperature *float32
}

// Response is the provider's answer.
type Response struct {
	Text      string
	Citations []Citation
}

// Citation is a grounding source reported alongside a response.
type Citation struct {
	URL   string
	Title string
}

// Host returns the lowercased host of the citation URL without "www.".
func (c Citation) Host() string {
	u, err := url.Parse(strings.TrimSpace(c.URL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// ErrNoText is returned by providers when a call succeeds but the model
// produced no text.
var ErrNoText = errors.New("no text in response")

// Provider generates text.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
