package usecase

import "strings"

const (
	minTitleLen       = 4
	maxTitleLen       = 200
	minDescriptionLen = 10
	maxDescriptionLen = 10000
)

// ValidateJobTitle checks the posting title length bounds.
func ValidateJobTitle(title string) bool {
	n := len(strings.TrimSpace(title))
	return n >= minTitleLen && n <= maxTitleLen
}

// ValidateJobDescription checks the posting description length bounds.
func ValidateJobDescription(description string) bool {
	n := len(strings.TrimSpace(description))
	return n >= minDescriptionLen && n <= maxDescriptionLen
}
