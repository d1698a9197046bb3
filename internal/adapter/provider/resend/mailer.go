// Package resend sends transactional email through the Resend API.
package resend

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

var invitationTmpl = template.Must(template.New("invitation").Parse(`<!doctype html>
<html>
<body style="font-family: sans-serif; color: #1f2933;">
  <h2>You're invited to join {{.WorkspaceName}}</h2>
  <p>You have been invited to collaborate on <strong>{{.WorkspaceName}}</strong> as {{.Role}}.</p>
  {{if .AcceptURL}}<p><a href="{{.AcceptURL}}">Accept the invitation</a></p>{{end}}
  <p>If you were not expecting this email you can ignore it.</p>
</body>
</html>`))

// Mailer sends email via Resend.
type Mailer struct {
	client *resend.Client
	from   string
	log    *slog.Logger
}

// NewMailer creates a Resend mailer. An empty apiURL uses Resend's default
// endpoint.
func NewMailer(apiKey, from, apiURL string, logger *slog.Logger) (*Mailer, error) {
	client := resend.NewClient(apiKey)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		u, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("resend: parse api url: %w", err)
		}
		client.BaseURL = u
	}

	return &Mailer{
		client: client,
		from:   from,
		log:    logger.With("adapter", "resend"),
	}, nil
}

// SendInvitation emails an invitation to inv.To.
func (m *Mailer) SendInvitation(ctx context.Context, inv domain.InvitationEmail) error {
	var body bytes.Buffer
	if err := invitationTmpl.Execute(&body, inv); err != nil {
		return fmt.Errorf("resend: render invitation: %w", err)
	}

	resp, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{inv.To},
		Subject: fmt.Sprintf("You're invited to join %s", inv.WorkspaceName),
		Html:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("resend: send invitation: %w", err)
	}

	m.log.InfoContext(ctx, "invitation email sent", slog.String("email_id", resp.Id))
	return nil
}

// Disabled drops every message. It is used when no API key is configured.
type Disabled struct{}

// SendInvitation does nothing.
func (Disabled) SendInvitation(context.Context, domain.InvitationEmail) error { return nil }
