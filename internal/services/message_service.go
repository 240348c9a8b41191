package services

import (
	"context"
	"errors"
	"log"

	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/lharari/jobboard/internal/models"
	"gorm.io/gorm"
)

// ErrNoRecipient means no address could be resolved at all: no override,
// nothing stored on the application, no configured default. Treated as a
// client error, never as a degraded success.
var ErrNoRecipient = errors.New("no recipient email")

// TemplateFinder is the one store lookup composition depends on.
type TemplateFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Template, error)
}

// MessageService composes candidate notifications. Composition is pure
// apart from the template lookup: the caller pre-resolves the
// application (with its job preloaded) before calling Compose.
type MessageService struct {
	Templates        TemplateFinder
	DefaultRecipient string
}

func NewMessageService(templates TemplateFinder, defaultRecipient string) *MessageService {
	return &MessageService{
		Templates:        templates,
		DefaultRecipient: defaultRecipient,
	}
}

// Compose produces the final {to, subject, html} message for an
// application. When req.TemplateID resolves to a stored template, the
// template's subject and body win over any literal ones in the request.
// A template id that resolves to nothing falls back to the literals.
func (s *MessageService) Compose(ctx context.Context, app *models.Application, req dtos.MessageRequest) (mailer.Message, error) {
	if req.Email != "" && !IsValidEmail(req.Email) {
		return mailer.Message{}, ErrInvalidEmail
	}

	finalSubject := req.Subject
	finalBody := req.Body

	if req.TemplateID != nil {
		tpl, err := s.Templates.FindByID(ctx, *req.TemplateID)
		switch {
		case err == nil:
			finalSubject = tpl.Subject
			finalBody = tpl.Body
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("messages: template %d not found, using literal subject/body", *req.TemplateID)
		default:
			return mailer.Message{}, err
		}
	}

	pctx := PlaceholderContext{
		CandidateName: app.CandidateName(),
		JobTitle:      app.Job.Title,
	}
	finalSubject = ResolvePlaceholders(finalSubject, pctx)
	finalBody = ResolvePlaceholders(finalBody, pctx)

	to := req.Email
	if to == "" {
		to = app.Email
	}
	if to == "" {
		to = s.DefaultRecipient
	}
	if to == "" {
		return mailer.Message{}, ErrNoRecipient
	}

	return mailer.Message{To: to, Subject: finalSubject, HTML: finalBody}, nil
}
