package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendSender sends mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	cfg    Config
}

func NewResendSender(cfg Config) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *ResendSender) SendPasswordReset(ctx context.Context, msg PasswordReset) error {
	html, err := renderPasswordReset(s.cfg.AppURL, msg)
	if err != nil {
		return err
	}

	_, err = s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fromAddress(s.cfg),
		To:      []string{msg.To},
		Subject: resetSubject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
