package dtos

// ApplyRequest is bound from the multipart form on the public apply
// endpoint; the resume PDF itself arrives as the "resume" file part.
type ApplyRequest struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// MessageRequest is the recruiter-facing message payload. All fields are
// optional: when TemplateID resolves to a stored template, its subject and
// body override the literal ones.
type MessageRequest struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	TemplateID *uint  `json:"templateId"`
	Email      string `json:"email"`
}

// DirectMessageRequest is MessageRequest plus the target application,
// used by the provider-only send endpoint.
type DirectMessageRequest struct {
	ApplicationID uint   `json:"applicationId" binding:"required"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	TemplateID    *uint  `json:"templateId"`
	Email         string `json:"email"`
}
