package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", HealthCheck)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API is running")
}

func TestMessageForOutcomes(t *testing.T) {
	cases := map[string]mailer.Outcome{
		"Email sent via Resend": {Delivered: true, Mechanism: "resend"},
		"Email sent":            {Delivered: true, Mechanism: "smtp"},
		"Test email sent":       {Delivered: true, Mechanism: "sandbox", PreviewURL: "https://ethereal.email/messages"},
		"Message logged (no delivery mechanism available)": {Delivered: false, Mechanism: "logged"},
	}
	for want, outcome := range cases {
		assert.Equal(t, want, messageFor(outcome))
	}
}

func TestParseIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things/:id", func(c *gin.Context) {
		if _, ok := parseID(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/12", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
