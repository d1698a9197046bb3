package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 5000},
		Database:  DatabaseConfig{DSN: "postgres://localhost/db", MaxConns: 10, MinConns: 2},
		Identity:  IdentityConfig{AppBaseURL: "http://localhost:5173"},
		Email:     EmailConfig{From: "onboarding@resend.dev"},
		Fanout:    FanoutConfig{OverviewMaxConcurrency: 8, RosterMaxConcurrency: 8},
		RateLimit: RateLimitConfig{InvitesPerMinute: 20},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

identity:
  secret_key: "sk_test_123"
  invite_link_secret: "this-is-a-very-long-invite-secret-for-tests"
  app_base_url: "https://app.example.com"

email:
  api_key: "re_test_123"
  from: "team@example.com"

cache:
  redis_url: "redis://localhost:6379/0"
  profile_ttl: "2m"

fanout:
  overview_max_concurrency: 4
  roster_max_concurrency: 3

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.Identity.Enabled() {
		t.Error("identity should be enabled when secret_key is set")
	}
	if !cfg.Identity.InviteLinksEnabled() {
		t.Error("invite links should be enabled when invite_link_secret is set")
	}
	if cfg.Identity.SessionAuthEnabled() {
		t.Error("session auth should be disabled without a key")
	}
	if !cfg.Email.Enabled() || cfg.Email.From != "team@example.com" {
		t.Errorf("email = %+v", cfg.Email)
	}
	if cfg.Cache.ProfileTTL != 2*time.Minute {
		t.Errorf("cache.profile_ttl = %v, want 2m", cfg.Cache.ProfileTTL)
	}
	if cfg.Fanout.OverviewMaxConcurrency != 4 || cfg.Fanout.RosterMaxConcurrency != 3 {
		t.Errorf("fanout = %+v", cfg.Fanout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("server.port = %d, want 5000 (default)", cfg.Server.Port)
	}
	if cfg.Identity.Enabled() {
		t.Error("identity must be disabled when CLERK_SECRET_KEY is unset")
	}
	if cfg.Email.Enabled() {
		t.Error("email must be disabled when RESEND_API_KEY is unset")
	}
	if cfg.Cache.Enabled() {
		t.Error("cache must be disabled when REDIS_URL is unset")
	}
	if cfg.Email.From != "onboarding@resend.dev" {
		t.Errorf("email.from = %q, want default", cfg.Email.From)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 20 }, true},
		{"invite secret too short", func(c *Config) { c.Identity.InviteLinkSecret = "short" }, true},
		{"invite secret ok", func(c *Config) {
			c.Identity.InviteLinkSecret = "0123456789abcdef0123456789abcdef"
		}, false},
		{"invite secret with bad base url", func(c *Config) {
			c.Identity.InviteLinkSecret = "0123456789abcdef0123456789abcdef"
			c.Identity.AppBaseURL = "not a url"
		}, true},
		{"session key not pem", func(c *Config) { c.Identity.SessionKeyPEM = "abc" }, true},
		{"email from invalid", func(c *Config) {
			c.Email.APIKey = "re_123"
			c.Email.From = "nobody"
		}, true},
		{"email from ignored when disabled", func(c *Config) { c.Email.From = "nobody" }, false},
		{"overview concurrency zero", func(c *Config) { c.Fanout.OverviewMaxConcurrency = 0 }, true},
		{"roster concurrency zero", func(c *Config) { c.Fanout.RosterMaxConcurrency = 0 }, true},
		{"rate limit zero", func(c *Config) { c.RateLimit.InvitesPerMinute = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFrom_OptionalMissingFallsBackToENV(t *testing.T) {
	validEnv(t)
	t.Setenv("PORT", "7070")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port: got %d, want 7070", cfg.Server.Port)
	}
}

func TestLoadFrom_RequiredMissing(t *testing.T) {
	validEnv(t)

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Fatal("expected error for missing required config file")
	}
}
