package mailer

import (
	"context"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMechanism delivers through a configured SMTP relay.
type SMTPMechanism struct {
	cfg  SMTPConfig
	from string
}

func NewSMTPMechanism(cfg SMTPConfig, from string) *SMTPMechanism {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPMechanism{cfg: cfg, from: from}
}

func (m *SMTPMechanism) Name() string { return "smtp" }

func (m *SMTPMechanism) Attempt(_ context.Context, msg Message) (Outcome, error) {
	if err := sendSMTP(m.cfg, m.from, msg); err != nil {
		return Outcome{}, err
	}
	return Outcome{Delivered: true, Mechanism: m.Name()}, nil
}

func sendSMTP(cfg SMTPConfig, from string, msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return dialer.DialAndSend(mail)
}
