// Package email delivers transactional mail through Brevo's HTTP API or a
// plain SMTP server, selected by configuration. With EMAIL_PROVIDER=off the
// NoopSender is wired instead so the rest of the app never branches.
package email

import (
	"context"
	"fmt"

	"leadgen_backend/platform/config"
)

// NewLeadEmailParams carries the lead details shown in the notification mail.
type NewLeadEmailParams struct {
	LeadID    string
	Role      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	ZipCode   string
	Timeline  string
	Score     int
}

type Sender interface {
	SendNewLeadEmail(ctx context.Context, toEmail string, params NewLeadEmailParams) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

type NoopSender struct{}

func (NoopSender) SendNewLeadEmail(ctx context.Context, toEmail string, params NewLeadEmailParams) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

// NewSender builds the Sender matching the configured provider.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	switch cfg.GetEmailProvider() {
	case config.EmailProviderOff:
		return NoopSender{}, nil
	case config.EmailProviderBrevo:
		return NewBrevoSender(cfg.GetBrevoAPIKey(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName()), nil
	case config.EmailProviderSMTP:
		return NewSMTPSender(
			cfg.GetSMTPHost(), cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(), cfg.GetEmailFromName(),
		), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}
