package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.Username) == "" {
		return fmt.Errorf("auth.username is required")
	}
	if c.Auth.PasswordHash == "" && c.Auth.Password == "" {
		return fmt.Errorf("auth.password or auth.password_hash is required")
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if err := c.Collection.validate(); err != nil {
		return fmt.Errorf("collection: %w", err)
	}

	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be > 0 (got %d)", c.Session.MaxSessions)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rate and burst must be > 0")
	}

	return nil
}

func (l LLMConfig) validate() error {
	switch l.ProviderName() {
	case "gemini":
		if l.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required for provider gemini")
		}
	case "anthropic":
		if l.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider anthropic")
		}
	default:
		return fmt.Errorf("unknown provider %q (want gemini or anthropic)", l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	return nil
}

func (l LookupConfig) validate() error {
	switch l.Cache {
	case "memory":
		if l.CacheSize <= 0 {
			return fmt.Errorf("cache_size must be > 0 (got %d)", l.CacheSize)
		}
	case "redis":
		if l.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for redis cache")
		}
	default:
		return fmt.Errorf("unknown cache %q (want memory or redis)", l.Cache)
	}
	return nil
}

func (c CollectionConfig) validate() error {
	switch c.Store {
	case "memory":
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q (want memory or postgres)", c.Store)
	}
	if c.MaxWords <= 0 {
		return fmt.Errorf("max_words must be > 0 (got %d)", c.MaxWords)
	}
	return nil
}
