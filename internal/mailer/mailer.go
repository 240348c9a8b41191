package mailer

import (
	"context"
	"log"
)

// Message is a fully composed candidate notification.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Outcome is the uniform result of a delivery attempt sequence.
type Outcome struct {
	Delivered  bool   `json:"delivered"`
	Mechanism  string `json:"mechanism"`
	PreviewURL string `json:"previewUrl,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
}

// Mechanism is one concrete way of transmitting an email.
type Mechanism interface {
	Name() string
	Attempt(ctx context.Context, msg Message) (Outcome, error)
}

// SMTPConfig holds relay credentials.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
}

// Config declares which mechanisms are available. Absent credentials
// disable the mechanism rather than failing at send time.
type Config struct {
	From         string
	ResendAPIKey string
	SMTP         *SMTPConfig
}

// Sequencer tries a prioritized list of mechanisms until one succeeds.
// This is a fallback chain, not a retry loop: each mechanism runs at
// most once, and a failure advances immediately to the next.
type Sequencer struct {
	chain []Mechanism
}

// NewSequencer assembles the chain from configured credentials:
// Resend when an API key exists, SMTP when a relay exists, and the
// Ethereal sandbox always, so development environments still produce a
// previewable message.
func NewSequencer(cfg Config) *Sequencer {
	var chain []Mechanism
	if cfg.ResendAPIKey != "" {
		chain = append(chain, NewResendMechanism(cfg.ResendAPIKey, cfg.From))
	}
	if cfg.SMTP != nil && cfg.SMTP.Host != "" && cfg.SMTP.User != "" {
		chain = append(chain, NewSMTPMechanism(*cfg.SMTP, cfg.From))
	}
	chain = append(chain, NewSandboxMechanism(cfg.From))
	return &Sequencer{chain: chain}
}

// NewSequencerWith builds a sequencer over an explicit chain. Used in
// tests and anywhere the standard chain does not apply.
func NewSequencerWith(mechanisms ...Mechanism) *Sequencer {
	return &Sequencer{chain: mechanisms}
}

// Deliver walks the chain. Mechanism errors are logged and swallowed;
// when every mechanism fails the message is recorded as logged-only.
// Deliver never returns an error: some outcome, even "logged", is an
// acceptable resolution of a send request.
func (s *Sequencer) Deliver(ctx context.Context, msg Message) Outcome {
	for _, m := range s.chain {
		outcome, err := m.Attempt(ctx, msg)
		if err != nil {
			log.Printf("mailer: %s failed: %v", m.Name(), err)
			continue
		}
		log.Printf("mailer: delivered to %s via %s", msg.To, m.Name())
		return outcome
	}

	log.Println("=== Candidate message (logged, no delivery mechanism succeeded) ===")
	log.Println("To:", msg.To)
	log.Println("Subject:", msg.Subject)
	log.Println("Body:", msg.HTML)
	log.Println("==================================================================")
	return Outcome{Delivered: false, Mechanism: "logged"}
}
