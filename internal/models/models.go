package models

import (
	"strings"
	"time"
)

// Roles accepted by the authorization middleware.
const (
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'recruiter'" json:"role"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `gorm:"not null" json:"location"`
	Level       string `gorm:"not null" json:"level"`
	Type        string `gorm:"not null" json:"type"`
	Salary      *int64 `json:"salary,omitempty"`
}

// Application statuses. The gate is a whitelist, not a workflow graph:
// any recruiter/admin may set any status at any time, so a candidate
// can be reconsidered after rejection.
const (
	StatusNew         = "new"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusInterview   = "interview"
	StatusAccepted    = "accepted"
)

// ApplicationStatuses is the fixed status vocabulary.
var ApplicationStatuses = []string{
	StatusNew,
	StatusShortlisted,
	StatusRejected,
	StatusInterview,
	StatusAccepted,
}

// IsValidStatus reports whether s belongs to the fixed status vocabulary.
func IsValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// Foreign Key
	JobID uint `json:"job_id"`
	// Association: GORM needs Preload() to fill this
	Job Job `json:"job"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	FilePath  string `gorm:"not null" json:"filePath"`
	Status    string `gorm:"default:'new'" json:"status"`
}

// CandidateName is the display name used for {{name}} substitution.
// Empty when both halves are empty.
func (a *Application) CandidateName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type Template struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"not null" json:"name"`
	Subject string `gorm:"not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
}
