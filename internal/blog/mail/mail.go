// Package mail delivers password reset links.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"
)

// Sender delivers a password reset link to a user.
type Sender interface {
	SendPasswordReset(ctx context.Context, msg PasswordReset) error
}

// PasswordReset is what a reset mail needs to know.
type PasswordReset struct {
	To    string
	Name  string
	Token string
	TTL   time.Duration
}

// Config selects and configures a Sender.
type Config struct {
	FromEmail string
	FromName  string
	AppURL    string

	ResendAPIKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

const resetSubject = "Reset your password"

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;">
  <p>Hi {{.Name}},</p>
  <p>We received a request to reset your password. Use the link below to choose a new one.</p>
  <p><a href="{{.Link}}">Reset password</a></p>
  <p>The link expires in {{.Hours}} hours. If you did not ask for a reset you can ignore this email.</p>
  <p style="color:#666;word-break:break-all;">{{.Link}}</p>
</body>
</html>`))

// ResetLink builds {appURL}/reset-password?token=...
func ResetLink(appURL, token string) string {
	return strings.TrimSuffix(appURL, "/") + "/reset-password?" + url.Values{"token": {token}}.Encode()
}

func renderPasswordReset(appURL string, msg PasswordReset) (string, error) {
	name := msg.Name
	if name == "" {
		name = "there"
	}

	var buf bytes.Buffer
	err := resetTemplate.Execute(&buf, struct {
		Name  string
		Link  string
		Hours int
	}{
		Name:  name,
		Link:  ResetLink(appURL, msg.Token),
		Hours: int(msg.TTL.Hours()),
	})
	if err != nil {
		return "", fmt.Errorf("render reset mail: %w", err)
	}
	return buf.String(), nil
}

func fromAddress(cfg Config) string {
	if cfg.FromName == "" {
		return cfg.FromEmail
	}
	return fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
}

// New picks a Sender: Resend when an API key is set, SMTP when a host is
// set, otherwise a Sender that only logs.
func New(cfg Config) Sender {
	switch {
	case cfg.ResendAPIKey != "":
		return NewResendSender(cfg)
	case cfg.SMTPHost != "":
		return NewSMTPSender(cfg)
	default:
		return NewLogSender(cfg.AppURL)
	}
}
