// Package anthropic implements llm.Provider on the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/michaelwsd/lingualift/internal/llm"
)

const defaultMaxTokens = 4096

// messagesAPI is the slice of anthropic.MessageService the provider uses.
type messagesAPI interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Provider sends requests to a Claude model.
type Provider struct {
	messages messagesAPI
	model    string
	log      *slog.Logger
}

// NewProvider creates a Provider authenticated with apiKey.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return newProvider(&client.Messages, model, logger)
}

func newProvider(messages messagesAPI, model string, logger *slog.Logger) *Provider {
	return &Provider{
		messages: messages,
		model:    model,
		log:      logger.With("adapter", "anthropic"),
	}
}

// Generate implements llm.Provider. The Messages API has no response schema
// and no built-in search here: a schema is appended to the prompt as an
// instruction and Search is ignored, so responses never carry citations.
func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	prompt := req.Prompt
	if req.Schema != nil {
		instr, err := schemaInstruction(req.Schema)
		if err != nil {
			return nil, fmt.Errorf("anthropic: %w", err)
		}
		prompt += "\n\n" + instr
	}

	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(float64(*req.Temperature))
	}

	p.log.DebugContext(ctx, "anthropic request",
		slog.String("model", p.model),
		slog.Bool("schema", req.Schema != nil),
		slog.Bool("search_ignored", req.Search),
	)

	msg, err := p.messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: messages: %w", err)
	}
	if msg == nil || len(msg.Content) == 0 {
		return nil, fmt.Errorf("anthropic: %w (empty content)", llm.ErrNoText)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, fmt.Errorf("anthropic: %w (stop reason %q)", llm.ErrNoText, msg.StopReason)
	}

	p.log.DebugContext(ctx, "anthropic response", slog.Int("chars", len(text)))
	return &llm.Response{Text: text}, nil
}

func schemaInstruction(s *llm.Schema) (string, error) {
	raw, err := json.MarshalIndent(s.JSON(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return "Output ONLY a valid JSON object matching this JSON schema, no markdown, no explanations:\n" + string(raw), nil
}
