package services

import "strings"

// PlaceholderContext carries the values substituted into template text.
type PlaceholderContext struct {
	CandidateName string
	JobTitle      string
}

// ResolvePlaceholders substitutes every literal {{name}} and {{jobTitle}}
// occurrence. Substitution is global and case-sensitive; unknown tokens
// pass through untouched. Missing values substitute as empty strings
// rather than leaving a literal token behind.
func ResolvePlaceholders(text string, ctx PlaceholderContext) string {
	text = strings.ReplaceAll(text, "{{name}}", ctx.CandidateName)
	text = strings.ReplaceAll(text, "{{jobTitle}}", ctx.JobTitle)
	return text
}
