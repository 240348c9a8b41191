package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// ResendMechanism delivers through the Resend transactional API.
type ResendMechanism struct {
	client *resend.Client
	from   string
}

func NewResendMechanism(apiKey, from string) *ResendMechanism {
	return &ResendMechanism{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMechanism) Name() string { return "resend" }

func (m *ResendMechanism) Attempt(ctx context.Context, msg Message) (Outcome, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Delivered: true, Mechanism: m.Name(), ProviderID: sent.Id}, nil
}
