package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, IsValidStatus(s), s)
	}

	for _, s := range []string{"", "New", "SHORTLISTED", "hired", "pending", "rejected "} {
		assert.False(t, IsValidStatus(s), s)
	}
}

func TestCandidateName(t *testing.T) {
	app := &Application{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", app.CandidateName())

	assert.Equal(t, "Jane", (&Application{FirstName: "Jane"}).CandidateName())
	assert.Equal(t, "Doe", (&Application{LastName: "Doe"}).CandidateName())
	assert.Equal(t, "", (&Application{}).CandidateName())
}
