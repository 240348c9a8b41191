package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMechanism struct {
	name    string
	outcome Outcome
	err     error
	calls   int
}

func (s *stubMechanism) Name() string { return s.name }

func (s *stubMechanism) Attempt(_ context.Context, _ Message) (Outcome, error) {
	s.calls++
	return s.outcome, s.err
}

func testMessage() Message {
	return Message{To: "jane@example.com", Subject: "Hello", HTML: "<p>Hi</p>"}
}

func TestDeliverFirstSuccessShortCircuits(t *testing.T) {
	first := &stubMechanism{name: "resend", outcome: Outcome{Delivered: true, Mechanism: "resend", ProviderID: "abc"}}
	second := &stubMechanism{name: "smtp"}
	seq := NewSequencerWith(first, second)

	outcome := seq.Deliver(context.Background(), testMessage())
	require.True(t, outcome.Delivered)
	assert.Equal(t, "resend", outcome.Mechanism)
	assert.Equal(t, "abc", outcome.ProviderID)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestDeliverAdvancesPastFailures(t *testing.T) {
	primary := &stubMechanism{name: "resend", err: errors.New("credential error")}
	sandbox := &stubMechanism{name: "sandbox", outcome: Outcome{
		Delivered:  true,
		Mechanism:  "sandbox",
		PreviewURL: "https://ethereal.email/messages",
	}}
	seq := NewSequencerWith(primary, sandbox)

	outcome := seq.Deliver(context.Background(), testMessage())
	require.True(t, outcome.Delivered)
	assert.Equal(t, "sandbox", outcome.Mechanism)
	assert.NotEmpty(t, outcome.PreviewURL)
	// no retries: the failed mechanism ran exactly once
	assert.Equal(t, 1, primary.calls)
}

func TestDeliverAllFailedDegradesToLogged(t *testing.T) {
	a := &stubMechanism{name: "resend", err: errors.New("network error")}
	b := &stubMechanism{name: "smtp", err: errors.New("auth error")}
	c := &stubMechanism{name: "sandbox", err: errors.New("provisioning failed")}
	seq := NewSequencerWith(a, b, c)

	outcome := seq.Deliver(context.Background(), testMessage())
	assert.False(t, outcome.Delivered)
	assert.Equal(t, "logged", outcome.Mechanism)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
}

func TestDeliverEmptyChainIsLoggedOnly(t *testing.T) {
	seq := NewSequencerWith()

	outcome := seq.Deliver(context.Background(), testMessage())
	assert.False(t, outcome.Delivered)
	assert.Equal(t, "logged", outcome.Mechanism)
}

func TestNewSequencerChainSelection(t *testing.T) {
	// nothing configured: sandbox only
	seq := NewSequencer(Config{From: "no-reply@example.com"})
	require.Len(t, seq.chain, 1)
	assert.Equal(t, "sandbox", seq.chain[0].Name())

	// everything configured: resend, then smtp, then sandbox
	seq = NewSequencer(Config{
		From:         "no-reply@example.com",
		ResendAPIKey: "re_test",
		SMTP:         &SMTPConfig{Host: "smtp.example.com", User: "mailer"},
	})
	require.Len(t, seq.chain, 3)
	assert.Equal(t, "resend", seq.chain[0].Name())
	assert.Equal(t, "smtp", seq.chain[1].Name())
	assert.Equal(t, "sandbox", seq.chain[2].Name())
}
