package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/adapter/cache"
	"github.com/michaelwsd/lingualift/internal/adapter/memory"
	"github.com/michaelwsd/lingualift/internal/adapter/postgres"
	pgcollection "github.com/michaelwsd/lingualift/internal/adapter/postgres/collection"
	"github.com/michaelwsd/lingualift/internal/adapter/provider/anthropic"
	"github.com/michaelwsd/lingualift/internal/adapter/provider/freedict"
	"github.com/michaelwsd/lingualift/internal/adapter/provider/gemini"
	"github.com/michaelwsd/lingualift/internal/config"
	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
	"github.com/michaelwsd/lingualift/internal/service/collection"
	"github.com/michaelwsd/lingualift/internal/service/generation"
)

// NewProvider builds the generative provider selected by cfg.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (llm.Provider, error) {
	switch cfg.ProviderName() {
	case "gemini":
		return gemini.NewProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	case "anthropic":
		return anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// Limits converts the provider settings into per-request defaults.
func Limits(cfg config.LLMConfig) llm.Limits {
	return llm.Limits{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.RequestTimeout,
	}
}

// lookupCache is the definition cache with a health check.
type lookupCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}

func newLookupCache(ctx context.Context, cfg config.LookupConfig) (lookupCache, func(), error) {
	if cfg.Cache != "redis" {
		return cache.NewMemory(cfg.CacheSize, cfg.CacheTTL), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedis(client, cfg.CacheTTL), func() { client.Close() }, nil
}

// Generators bundles the provider-backed services.
type Generators struct {
	Provider llm.Provider
	Content  *generation.Service

	cache      lookupCache
	closeCache func()
}

// Close releases the definition cache.
func (g *Generators) Close() { g.closeCache() }

// NewGenerators builds the provider and the generation service with its
// dictionary fallback and definition cache.
func NewGenerators(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Generators, error) {
	provider, err := NewProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}

	defCache, closeCache, err := newLookupCache(ctx, cfg.Lookup)
	if err != nil {
		return nil, fmt.Errorf("lookup cache: %w", err)
	}

	var content *generation.Service
	if cfg.Lookup.DictionaryOff {
		content = generation.NewService(logger, provider, nil, defCache, Limits(cfg.LLM))
	} else {
		dict := freedict.NewProviderWithURL(cfg.Lookup.DictionaryURL, logger)
		content = generation.NewService(logger, provider, dict, defCache, Limits(cfg.LLM))
	}
	return &Generators{
		Provider:   provider,
		Content:    content,
		cache:      defCache,
		closeCache: closeCache,
	}, nil
}

// wordStore is the saved-word repository with a health check.
type wordStore interface {
	Create(ctx context.Context, userID uuid.UUID, word *domain.SavedWord) (*domain.SavedWord, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedWord, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Ping(ctx context.Context) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func newWordStore(ctx context.Context, cfg config.CollectionConfig, session config.SessionConfig, logger *slog.Logger) (wordStore, txRunner, func(), error) {
	if cfg.Store != "postgres" {
		return memory.NewCollectionRepo(session.MaxSessions, session.TTL), &memory.TxManager{}, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return pgcollection.New(pool), postgres.NewTxManager(pool), pool.Close, nil
}

// collectionScope keeps the in-memory collection per login. Postgres rows
// belong to the user and outlive sessions.
func collectionScope(cfg config.CollectionConfig) collection.Scope {
	if cfg.Store == "postgres" {
		return collection.ScopeUser
	}
	return collection.ScopeSession
}
