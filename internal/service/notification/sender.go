package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/DIX2580/salon-website/internal/email"
)

// LogSender writes the alert to the log. Used when no provider is configured.
type LogSender struct {
	logger *zerolog.Logger
}

func NewLogSender(logger *zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Channel() string   { return "log" }
func (s *LogSender) Recipient() string { return "log" }

func (s *LogSender) Send(_ context.Context, subject, body string) (string, error) {
	s.logger.Info().Str("subject", subject).Str("body", body).Msg("booking notification")
	return "", nil
}

type EmailSender struct {
	svc email.Service
	to  string
}

func NewEmailSender(svc email.Service, to string) *EmailSender {
	return &EmailSender{svc: svc, to: to}
}

func (s *EmailSender) Channel() string   { return "email" }
func (s *EmailSender) Recipient() string { return s.to }

func (s *EmailSender) Send(ctx context.Context, subject, body string) (string, error) {
	return "", s.svc.SendCustom(ctx, s.to, subject, body)
}
