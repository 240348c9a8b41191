package dtos

type TemplateCreationRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// TemplateUpdateRequest carries partial edits; nil fields are left untouched.
type TemplateUpdateRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}
