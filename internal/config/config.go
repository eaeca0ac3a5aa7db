package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Collection CollectionConfig `yaml:"collection"`
	Session    SessionConfig    `yaml:"session"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds the login gate and token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"lingualift"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	Username       string        `yaml:"username"         env:"AUTH_USERNAME"         env-default:"teacher"`
	// PasswordHash is a bcrypt hash. When empty, Password is hashed at startup.
	PasswordHash string `yaml:"password_hash" env:"AUTH_PASSWORD_HASH"`
	Password     string `yaml:"password"      env:"AUTH_PASSWORD"`
}

// LLMConfig selects and tunes the generative provider.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"gemini"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEMINI_MODEL"          env-default:"gemini-2.5-flash"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens       int           `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"        env-default:"8192"`
	Temperature     float32       `yaml:"temperature"       env:"LLM_TEMPERATURE"       env-default:"0.7"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"LLM_REQUEST_TIMEOUT"   env-default:"90s"`
}

// LookupConfig configures definition lookups and their cache.
type LookupConfig struct {
	Cache           string        `yaml:"cache"             env:"LOOKUP_CACHE"             env-default:"memory"`
	CacheSize       int           `yaml:"cache_size"        env:"LOOKUP_CACHE_SIZE"        env-default:"2048"`
	CacheTTL        time.Duration `yaml:"cache_ttl"         env:"LOOKUP_CACHE_TTL"         env-default:"24h"`
	RedisAddr       string        `yaml:"redis_addr"        env:"LOOKUP_REDIS_ADDR"        env-default:"localhost:6379"`
	RedisPassword   string        `yaml:"redis_password"    env:"LOOKUP_REDIS_PASSWORD"`
	RedisDB         int           `yaml:"redis_db"          env:"LOOKUP_REDIS_DB"          env-default:"0"`
	DictionaryURL   string        `yaml:"dictionary_url"    env:"LOOKUP_DICTIONARY_URL"    env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	DictionaryOff   bool          `yaml:"dictionary_off"    env:"LOOKUP_DICTIONARY_OFF"    env-default:"false"`
	PopoverWaitTime time.Duration `yaml:"popover_wait_time" env:"LOOKUP_POPOVER_WAIT_TIME" env-default:"30s"`
}

// CollectionConfig selects the saved-word store.
type CollectionConfig struct {
	Store    string         `yaml:"store"    env:"COLLECTION_STORE"    env-default:"memory"`
	MaxWords int            `yaml:"max_words" env:"COLLECTION_MAX_WORDS" env-default:"500"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SessionConfig bounds the per-session workspace kept in memory.
type SessionConfig struct {
	MaxSessions int           `yaml:"max_sessions" env:"SESSION_MAX_SESSIONS" env-default:"1000"`
	TTL         time.Duration `yaml:"ttl"          env:"SESSION_TTL"          env-default:"12h"`
}

// RateLimitConfig holds the per-client token bucket settings.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Rate    float64 `yaml:"rate"    env:"RATE_LIMIT_RATE"    env-default:"2"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ProviderName returns the normalized provider name.
func (c LLMConfig) ProviderName() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}
