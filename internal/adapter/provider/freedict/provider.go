// Package freedict looks words up in the FreeDictionary API. It backs the
// definition lookup when the language provider fails.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Entry is the merged dictionary data for a word.
type Entry struct {
	Word     string
	Senses   []Sense
	Synonyms []string
}

// Sense is a single definition with its part of speech.
type Sense struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "freedict"),
	}
}

// Define returns the first definition of word, or "" if the word is unknown.
func (p *Provider) Define(ctx context.Context, word string) (string, error) {
	entry, err := p.FetchEntry(ctx, word)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", nil
	}
	for _, s := range entry.Senses {
		if d := strings.TrimSpace(s.Definition); d != "" {
			return d, nil
		}
	}
	return "", nil
}

// FetchEntry fetches a dictionary entry for the given word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) FetchEntry(ctx context.Context, word string) (*Entry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(word)))

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	entry := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("senses", len(entry.Senses)),
	)
	return entry, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	return p.httpClient.Do(req)
}

// mapAPIResponse merges all entries: senses are concatenated in order and
// synonyms are deduplicated case-insensitively.
func mapAPIResponse(entries []apiEntry) *Entry {
	entry := &Entry{Senses: []Sense{}}
	if len(entries) == 0 {
		return entry
	}
	entry.Word = entries[0].Word

	seen := make(map[string]bool)
	addSynonyms := func(words []string) {
		for _, w := range words {
			key := strings.ToLower(strings.TrimSpace(w))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			entry.Synonyms = append(entry.Synonyms, w)
		}
	}

	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				entry.Senses = append(entry.Senses, Sense{
					PartOfSpeech: m.PartOfSpeech,
					Definition:   d.Definition,
					Example:      d.Example,
				})
				addSynonyms(d.Synonyms)
			}
			addSynonyms(m.Synonyms)
		}
	}
	return entry
}
