package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/lharari/jobboard/internal/services"
	"github.com/lharari/jobboard/internal/storage"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Messages     *services.MessageService
	Mailer       *mailer.Sequencer
}

func NewApplicationHandler(apps *services.ApplicationService, msgs *services.MessageService, seq *mailer.Sequencer) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: apps,
		Messages:     msgs,
		Mailer:       seq,
	}
}

// Apply is the public POST /jobs/:id/apply endpoint (multipart form).
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing name or email fields"})
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing resume PDF"})
		return
	}

	_, err = h.Applications.Apply(c.Request.Context(), id, &req, resume)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "Application saved"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
	case errors.Is(err, storage.ErrNotPDF):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF allowed"})
	case errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds 5MB limit"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// List is the protected GET /applications endpoint.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListForJob is the protected GET /jobs/:id/applications endpoint.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	apps, err := h.Applications.ListForJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// DownloadResume is the protected GET /applications/:id/resume endpoint.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	path := h.Applications.Files.Path(app.FilePath)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resume file not found"})
		return
	}
	c.FileAttachment(path, app.FilePath)
}

// Delete is the protected DELETE /applications/:id endpoint.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Applications.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

// SetStatus is the protected PATCH /applications/:id/status endpoint.
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	app, err := h.Applications.SetStatus(c.Request.Context(), id, req.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, app)
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// SendMessage is the protected POST /applications/:id/message endpoint.
// Delivery degradation is not an error: as long as a recipient exists the
// response is 200, with an explicit delivered flag and mechanism.
func (h *ApplicationHandler) SendMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload: " + err.Error()})
		return
	}

	app, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	msg, err := h.Messages.Compose(c.Request.Context(), app, req)
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

	outcome := h.Mailer.Deliver(c.Request.Context(), msg)

	response := gin.H{
		"message":   messageFor(outcome),
		"delivered": outcome.Delivered,
		"mechanism": outcome.Mechanism,
	}
	if outcome.PreviewURL != "" {
		response["previewUrl"] = outcome.PreviewURL
	}
	c.JSON(http.StatusOK, response)
}

func messageFor(outcome mailer.Outcome) string {
	switch outcome.Mechanism {
	case "resend":
		return "Email sent via Resend"
	case "smtp":
		return "Email sent"
	case "sandbox":
		return "Test email sent"
	default:
		return "Message logged (no delivery mechanism available)"
	}
}
