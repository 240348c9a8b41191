package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/services"
)

type AIHandler struct {
	AI *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{AI: ai}
}

// Summarize is the POST /ai/summarize endpoint.
func (h *AIHandler) Summarize(c *gin.Context) {
	var req dtos.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from PDF"})
		return
	}

	summary, err := h.AI.SummarizeResume(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrAIDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI summary is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize PDF"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
