package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sandboxAPIServer(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": "sandbox@ethereal.email",
			"pass": "hunter2",
			"smtp": {"host": "smtp.ethereal.email", "port": 587, "secure": false},
			"web": "https://ethereal.email/messages"
		}`))
	}))
}

func TestProvisionCachesAccount(t *testing.T) {
	var calls atomic.Int64
	srv := sandboxAPIServer(t, &calls)
	defer srv.Close()

	m := NewSandboxMechanism("no-reply@example.com")
	m.apiURL = srv.URL

	first, err := m.provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sandbox@ethereal.email", first.User)
	assert.Equal(t, "smtp.ethereal.email", first.SMTP.Host)

	second, err := m.provision(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), calls.Load())
}

// Concurrent sends all funnel through one provisioning call; meaningful
// under the race detector since every goroutine touches the shared cache.
func TestProvisionConcurrent(t *testing.T) {
	var calls atomic.Int64
	srv := sandboxAPIServer(t, &calls)
	defer srv.Close()

	m := NewSandboxMechanism("no-reply@example.com")
	m.apiURL = srv.URL

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			account, err := m.provision(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, account)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}

func TestProvisionRejectsIncompleteAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user": ""}`))
	}))
	defer srv.Close()

	m := NewSandboxMechanism("")
	m.apiURL = srv.URL

	_, err := m.provision(context.Background())
	assert.Error(t, err)
}

func TestProvisionRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m := NewSandboxMechanism("")
	m.apiURL = srv.URL

	_, err := m.provision(context.Background())
	assert.Error(t, err)
}
