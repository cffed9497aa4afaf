package usecase_test

import (
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
	"strings"
	"testing"
)

func TestValidateJobTitle(t *testing.T) {
	valid := []string{
		"Essay",
		"Blog post about testing",
		strings.Repeat("a", 200),
	}
	for _, title := range valid {
		if !usecase.ValidateJobTitle(title) {
			t.Fatalf("expected title %q to be valid", title)
		}
	}

	invalid := []string{"", "abc", "   ab   ", strings.Repeat("a", 201)}
	for _, title := range invalid {
		if usecase.ValidateJobTitle(title) {
			t.Fatalf("expected title %q to be invalid", title)
		}
	}
}

func TestValidateJobDescription(t *testing.T) {
	valid := []string{
		"ten chars!",
		strings.Repeat("a", 10000),
	}
	for _, description := range valid {
		if !usecase.ValidateJobDescription(description) {
			t.Fatalf("expected description of %d chars to be valid", len(description))
		}
	}

	invalid := []string{"", "too short", strings.Repeat("a", 10001)}
	for _, description := range invalid {
		if usecase.ValidateJobDescription(description) {
			t.Fatalf("expected description of %d chars to be invalid", len(description))
		}
	}
}
