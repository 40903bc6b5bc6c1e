package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender sends mail through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	cfg    Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword),
		cfg:    cfg,
	}
}

func (s *SMTPSender) buildMessage(msg PasswordReset) (*gomail.Message, error) {
	html, err := renderPasswordReset(s.cfg.AppURL, msg)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", resetSubject)
	m.SetBody("text/html", html)
	return m, nil
}

// SendPasswordReset dials the relay for every message. gomail has no
// context support, so ctx is only checked before dialing.
func (s *SMTPSender) SendPasswordReset(ctx context.Context, msg PasswordReset) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
