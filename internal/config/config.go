package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Identity  IdentityConfig  `yaml:"identity"`
	Email     EmailConfig     `yaml:"email"`
	Cache     CacheConfig     `yaml:"cache"`
	Fanout    FanoutConfig    `yaml:"fanout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// IdentityConfig holds identity-provider and invite-link settings.
// An empty SecretKey disables the identity bridge.
type IdentityConfig struct {
	SecretKey         string        `yaml:"secret_key"          env:"CLERK_SECRET_KEY"`
	APIURL            string        `yaml:"api_url"             env:"CLERK_API_URL"`
	SessionKeyPEM     string        `yaml:"session_key_pem"     env:"CLERK_JWT_KEY"`
	InviteRedirectURL string        `yaml:"invite_redirect_url" env:"INVITE_REDIRECT_URL"`
	InviteLinkSecret  string        `yaml:"invite_link_secret"  env:"INVITE_LINK_SECRET"`
	InviteLinkTTL     time.Duration `yaml:"invite_link_ttl"     env:"INVITE_LINK_TTL"     env-default:"168h"`
	AppBaseURL        string        `yaml:"app_base_url"        env:"APP_BASE_URL"        env-default:"http://localhost:5173"`
}

// Enabled reports whether the identity bridge is configured.
func (c IdentityConfig) Enabled() bool { return c.SecretKey != "" }

// SessionAuthEnabled reports whether session tokens can be verified.
func (c IdentityConfig) SessionAuthEnabled() bool { return c.SessionKeyPEM != "" }

// InviteLinksEnabled reports whether signed invite links can be issued.
func (c IdentityConfig) InviteLinksEnabled() bool { return c.InviteLinkSecret != "" }

// EmailConfig holds transactional email settings.
// An empty APIKey disables email sending.
type EmailConfig struct {
	APIKey string `yaml:"api_key" env:"RESEND_API_KEY"`
	From   string `yaml:"from"    env:"EMAIL_FROM"     env-default:"onboarding@resend.dev"`
	APIURL string `yaml:"api_url" env:"RESEND_API_URL"`
}

// Enabled reports whether email delivery is configured.
func (c EmailConfig) Enabled() bool { return c.APIKey != "" }

// CacheConfig holds the Redis profile cache settings.
// An empty URL disables the cache.
type CacheConfig struct {
	RedisURL   string        `yaml:"redis_url"   env:"REDIS_URL"`
	ProfileTTL time.Duration `yaml:"profile_ttl" env:"PROFILE_CACHE_TTL" env-default:"10m"`
}

// Enabled reports whether the profile cache is configured.
func (c CacheConfig) Enabled() bool { return c.RedisURL != "" }

// FanoutConfig bounds concurrent reads in aggregation paths.
type FanoutConfig struct {
	OverviewMaxConcurrency int `yaml:"overview_max_concurrency" env:"OVERVIEW_MAX_CONCURRENCY" env-default:"8"`
	RosterMaxConcurrency   int `yaml:"roster_max_concurrency"   env:"ROSTER_MAX_CONCURRENCY"   env-default:"8"`
}

// RateLimitConfig holds per-IP limits for sensitive routes.
type RateLimitConfig struct {
	InvitesPerMinute int           `yaml:"invites_per_minute" env:"RATE_LIMIT_INVITES_PER_MINUTE" env-default:"20"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
