package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if c.Email.Enabled() && !strings.Contains(c.Email.From, "@") {
		return fmt.Errorf("email.from must be an email address (got %q)", c.Email.From)
	}

	if c.Fanout.OverviewMaxConcurrency < 1 {
		return fmt.Errorf("fanout.overview_max_concurrency must be >= 1 (got %d)", c.Fanout.OverviewMaxConcurrency)
	}
	if c.Fanout.RosterMaxConcurrency < 1 {
		return fmt.Errorf("fanout.roster_max_concurrency must be >= 1 (got %d)", c.Fanout.RosterMaxConcurrency)
	}

	if c.RateLimit.InvitesPerMinute < 1 {
		return fmt.Errorf("rate_limit.invites_per_minute must be >= 1 (got %d)", c.RateLimit.InvitesPerMinute)
	}

	return nil
}

func (c *IdentityConfig) validate() error {
	if c.InviteLinkSecret != "" && len(c.InviteLinkSecret) < 32 {
		return fmt.Errorf("invite_link_secret must be at least 32 characters (got %d)", len(c.InviteLinkSecret))
	}
	if c.InviteLinksEnabled() {
		if _, err := url.ParseRequestURI(c.AppBaseURL); err != nil {
			return fmt.Errorf("app_base_url: %w", err)
		}
	}
	if c.SessionKeyPEM != "" && !strings.Contains(c.SessionKeyPEM, "PUBLIC KEY") {
		return fmt.Errorf("session_key_pem must be a PEM encoded public key")
	}
	return nil
}
