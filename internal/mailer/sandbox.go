package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	etherealAPI     = "https://api.nodemailer.com/user"
	etherealMailbox = "https://ethereal.email/messages"
)

// SandboxMechanism provisions a throwaway Ethereal test account and
// sends through its SMTP endpoint. Nothing actually leaves Ethereal;
// the message lands in a web-viewable mailbox instead.
type SandboxMechanism struct {
	from   string
	apiURL string
	client *http.Client

	// one account per process; the sequencer is shared by all request
	// goroutines, so the cache is guarded
	mu      sync.Mutex
	account *sandboxAccount
}

type sandboxAccount struct {
	User string `json:"user"`
	Pass string `json:"pass"`
	SMTP struct {
		Host   string `json:"host"`
		Port   int    `json:"port"`
		Secure bool   `json:"secure"`
	} `json:"smtp"`
	Web string `json:"web"`
}

func NewSandboxMechanism(from string) *SandboxMechanism {
	return &SandboxMechanism{
		from:   from,
		apiURL: etherealAPI,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *SandboxMechanism) Name() string { return "sandbox" }

func (m *SandboxMechanism) Attempt(ctx context.Context, msg Message) (Outcome, error) {
	account, err := m.provision(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("provision sandbox account: %w", err)
	}

	cfg := SMTPConfig{
		Host: account.SMTP.Host,
		Port: account.SMTP.Port,
		User: account.User,
		Pass: account.Pass,
	}
	from := m.from
	if from == "" {
		from = account.User
	}
	if err := sendSMTP(cfg, from, msg); err != nil {
		return Outcome{}, err
	}

	preview := account.Web
	if preview == "" {
		preview = etherealMailbox
	}
	log.Printf("mailer: sandbox message stored; mailbox %s (user %s)", preview, account.User)
	return Outcome{Delivered: true, Mechanism: m.Name(), PreviewURL: preview}, nil
}

func (m *SandboxMechanism) provision(ctx context.Context) (*sandboxAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.account != nil {
		return m.account, nil
	}

	payload, _ := json.Marshal(map[string]string{"requestor": "jobboard", "version": "1"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var account sandboxAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, err
	}
	if account.User == "" || account.SMTP.Host == "" {
		return nil, fmt.Errorf("incomplete sandbox account response")
	}

	m.account = &account
	return m.account, nil
}
