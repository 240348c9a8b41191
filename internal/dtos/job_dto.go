package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Type        string `json:"type" binding:"required"`

	// Optional Fields
	Salary *int64 `json:"salary"`
}

// JobUpdateRequest carries partial edits; nil fields are left untouched.
type JobUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Level       *string `json:"level"`
	Type        *string `json:"type"`
	Salary      *int64  `json:"salary"`
}

// JobSearchRequest is bound from query parameters on the search endpoint.
type JobSearchRequest struct {
	Query     string `form:"q"`
	Location  string `form:"location"`
	Level     string `form:"level"`
	Type      string `form:"type"`
	MinSalary int64  `form:"minSalary"`
	Size      int    `form:"size"`
}
