package notification

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type WhatsAppConfig struct {
	AccountSID   string
	APIKeySID    string
	APIKeySecret string
	// From and To carry the "whatsapp:" prefix.
	From string
	To   string
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsAppSender sends through the Twilio Messages API.
type WhatsAppSender struct {
	api  messageCreator
	from string
	to   string
}

func NewWhatsAppSender(cfg WhatsAppConfig) *WhatsAppSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.APIKeySID,
		Password:   cfg.APIKeySecret,
		AccountSid: cfg.AccountSID,
	})
	return &WhatsAppSender{api: client.Api, from: cfg.From, to: cfg.To}
}

func (s *WhatsAppSender) Channel() string   { return "whatsapp" }
func (s *WhatsAppSender) Recipient() string { return s.to }

// Send ignores subject; WhatsApp messages carry only a body.
func (s *WhatsAppSender) Send(ctx context.Context, _ string, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(s.to)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	if msg != nil && msg.Sid != nil {
		return *msg.Sid, nil
	}
	return "", nil
}
