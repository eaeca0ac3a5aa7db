// Package gemini implements llm.Provider on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/michaelwsd/lingualift/internal/llm"
)

// modelsAPI is the slice of genai.Models the provider uses.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// groundingRedirectHost serves the opaque links Gemini puts in grounding
// chunks; each redirects to the cited page.
const groundingRedirectHost = "vertexaisearch.cloud.google.com"

// Provider sends requests to a Gemini model.
type Provider struct {
	models        modelsAPI
	model         string
	httpClient    *http.Client
	redirectHosts map[string]bool
	log           *slog.Logger
}

// NewProvider creates a Provider for the Gemini Developer API.
func NewProvider(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newProvider(client.Models, model, logger), nil
}

func newProvider(models modelsAPI, model string, logger *slog.Logger) *Provider {
	return &Provider{
		models: models,
		model:  model,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		redirectHosts: map[string]bool{groundingRedirectHost: true},
		log:           logger.With("adapter", "gemini"),
	}
}

// Generate implements llm.Provider.
//
// Search requests enable Google Search grounding and cannot be combined with
// a response schema, so the schema is dropped and the caller recovers JSON
// from the text.
func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	switch {
	case req.Search:
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	case req.Schema != nil:
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toSchema(req.Schema)
	}

	p.log.DebugContext(ctx, "gemini request",
		slog.String("model", p.model),
		slog.Bool("search", req.Search),
		slog.Bool("schema", req.Schema != nil),
	)

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: %w (no candidates)", llm.ErrNoText)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		reason := ""
		if c := resp.Candidates[0]; c != nil {
			reason = string(c.FinishReason)
		}
		return nil, fmt.Errorf("gemini: %w (finish reason %q)", llm.ErrNoText, reason)
	}

	out := &llm.Response{Text: text, Citations: citations(resp)}
	p.resolveRedirects(ctx, out.Citations)

	p.log.DebugContext(ctx, "gemini response",
		slog.Int("chars", len(text)),
		slog.Int("citations", len(out.Citations)),
	)
	return out, nil
}

// citations collects web grounding chunks from every candidate, dropping
// duplicates by URL.
func citations(resp *genai.GenerateContentResponse) []llm.Citation {
	var out []llm.Citation
	seen := make(map[string]bool)
	for _, c := range resp.Candidates {
		if c == nil || c.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range c.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || seen[chunk.Web.URI] {
				continue
			}
			seen[chunk.Web.URI] = true
			out = append(out, llm.Citation{URL: chunk.Web.URI, Title: chunk.Web.Title})
		}
	}
	return out
}

// resolveRedirects replaces grounding redirect links with the address they
// point at. A link that cannot be resolved is kept as is; it still works in
// a browser.
func (p *Provider) resolveRedirects(ctx context.Context, cs []llm.Citation) {
	for i := range cs {
		if !p.redirectHosts[cs[i].Host()] {
			continue
		}
		target, err := p.location(ctx, cs[i].URL)
		if err != nil {
			p.log.DebugContext(ctx, "grounding redirect not resolved",
				slog.String("title", cs[i].Title),
				slog.String("error", err.Error()),
			)
			continue
		}
		cs[i].URL = target
	}
}

func (p *Provider) location(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	resp.Body.Close()

	loc, err := resp.Location()
	if err != nil {
		return "", fmt.Errorf("status %d: %w", resp.StatusCode, err)
	}
	if loc.Scheme != "http" && loc.Scheme != "https" {
		return "", fmt.Errorf("unexpected redirect target %q", loc.String())
	}
	return loc.String(), nil
}

func toSchema(s *llm.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
		out.PropertyOrdering = s.Order
	}
	if s.MinItems > 0 {
		out.MinItems = genai.Ptr(int64(s.MinItems))
	}
	if s.MaxItems > 0 {
		out.MaxItems = genai.Ptr(int64(s.MaxItems))
	}
	return out
}

func toType(t llm.Type) genai.Type {
	switch t {
	case llm.TypeObject:
		return genai.TypeObject
	case llm.TypeArray:
		return genai.TypeArray
	case llm.TypeInteger:
		return genai.TypeInteger
	case llm.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
