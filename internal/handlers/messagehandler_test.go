package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/lharari/jobboard/internal/models"
	"github.com/lharari/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeApplicationGetter struct {
	app *models.Application
}

func (f *fakeApplicationGetter) Get(_ context.Context, _ uint) (*models.Application, error) {
	if f.app == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.app, nil
}

type fakeMechanism struct {
	outcome mailer.Outcome
	err     error
}

func (f *fakeMechanism) Name() string { return "resend" }

func (f *fakeMechanism) Attempt(_ context.Context, _ mailer.Message) (mailer.Outcome, error) {
	return f.outcome, f.err
}

type nopTemplateFinder struct{}

func (nopTemplateFinder) FindByID(_ context.Context, _ uint) (*models.Template, error) {
	return nil, gorm.ErrRecordNotFound
}

func directSendRouter(h *MessageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/messages/resend", h.SendDirect)
	return r
}

func postDirect(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/messages/resend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func directTestApp() *models.Application {
	return &models.Application{
		ID:        1,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Job:       models.Job{Title: "Backend Engineer"},
	}
}

func TestSendDirectProviderFailureIs502(t *testing.T) {
	h := NewMessageHandler(
		&fakeApplicationGetter{app: directTestApp()},
		services.NewMessageService(nopTemplateFinder{}, ""),
		&fakeMechanism{err: errors.New("provider rejected the request")},
	)

	w := postDirect(t, directSendRouter(h), `{"applicationId": 1, "subject": "Hi"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Resend email error")
}

func TestSendDirectUnconfiguredIs503(t *testing.T) {
	h := NewMessageHandler(&fakeApplicationGetter{}, services.NewMessageService(nopTemplateFinder{}, ""), nil)

	w := postDirect(t, directSendRouter(h), `{"applicationId": 1}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSendDirectSuccess(t *testing.T) {
	h := NewMessageHandler(
		&fakeApplicationGetter{app: directTestApp()},
		services.NewMessageService(nopTemplateFinder{}, ""),
		&fakeMechanism{outcome: mailer.Outcome{Delivered: true, Mechanism: "resend", ProviderID: "abc"}},
	)

	w := postDirect(t, directSendRouter(h), `{"applicationId": 1, "subject": "Hi {{name}}"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email sent via Resend")
}

func TestSendDirectUnknownApplicationIs404(t *testing.T) {
	h := NewMessageHandler(
		&fakeApplicationGetter{},
		services.NewMessageService(nopTemplateFinder{}, ""),
		&fakeMechanism{},
	)

	w := postDirect(t, directSendRouter(h), `{"applicationId": 99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendDirectInvalidOverrideEmailIs400(t *testing.T) {
	h := NewMessageHandler(
		&fakeApplicationGetter{app: directTestApp()},
		services.NewMessageService(nopTemplateFinder{}, ""),
		&fakeMechanism{},
	)

	w := postDirect(t, directSendRouter(h), `{"applicationId": 1, "email": "not an email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
