package mail

import (
	"context"

	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// LogSender writes the reset link to the debug log instead of sending it.
// It is the default when no mail transport is configured.
type LogSender struct {
	appURL string
}

func NewLogSender(appURL string) *LogSender {
	return &LogSender{appURL: appURL}
}

func (s *LogSender) SendPasswordReset(ctx context.Context, msg PasswordReset) error {
	log := slogx.FromContext(ctx)
	log.Info("password reset mail not sent, no mail transport configured", "to", msg.To)
	log.Debug("password reset link", "link", ResetLink(s.appURL, msg.Token))
	return nil
}
