package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/lharari/jobboard/internal/models"
	"github.com/lharari/jobboard/internal/services"
	"gorm.io/gorm"
)

// ApplicationGetter resolves one application with its job preloaded.
type ApplicationGetter interface {
	Get(ctx context.Context, id uint) (*models.Application, error)
}

// MessageComposer produces the final message for an application.
type MessageComposer interface {
	Compose(ctx context.Context, app *models.Application, req dtos.MessageRequest) (mailer.Message, error)
}

// MessageHandler serves the provider-only send route. Unlike the
// fallback-chain endpoint, a primary-provider failure here surfaces as
// an error response instead of degrading.
type MessageHandler struct {
	Applications ApplicationGetter
	Messages     MessageComposer
	Primary      mailer.Mechanism
}

func NewMessageHandler(apps ApplicationGetter, msgs MessageComposer, primary mailer.Mechanism) *MessageHandler {
	return &MessageHandler{
		Applications: apps,
		Messages:     msgs,
		Primary:      primary,
	}
}

// SendDirect is the protected POST /messages/resend endpoint.
func (h *MessageHandler) SendDirect(c *gin.Context) {
	if h.Primary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Resend is not configured"})
		return
	}

	var req dtos.DirectMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload: " + err.Error()})
		return
	}

	app, err := h.Applications.Get(c.Request.Context(), req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	msg, err := h.Messages.Compose(c.Request.Context(), app, dtos.MessageRequest{
		Subject:    req.Subject,
		Body:       req.Body,
		TemplateID: req.TemplateID,
		Email:      req.Email,
	})
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	case errors.Is(err, services.ErrNoRecipient):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No recipient email"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	outcome, err := h.Primary.Attempt(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Resend email error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent via Resend", "result": outcome})
}
