package notify

import (
	"context"
	"fmt"

	"github.com/codewithdark-git/khanana/pkg/config"
	"github.com/resend/resend-go/v2"
)

// ResendSender delivers admin emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendSender returns nil when no API key is configured, which the
// Deliverer treats as "provider unconfigured".
func NewResendSender(cfg *config.EmailConfig) *ResendSender {
	if cfg.APIKey == "" {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = "Khanana Orders <onboarding@resend.dev>"
	}
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   from,
		to:     cfg.AdminEmail,
	}
}

func (s *ResendSender) Send(ctx context.Context, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend delivery failed: %w", err)
	}
	return nil
}
