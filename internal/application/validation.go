package application

import (
	"fmt"
	"strings"

	"storyseq/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateStoryID checks that id is a canonical story identifier (MS-<n>)
func ValidateStoryID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if _, err := domain.ParseStoryID(id); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected MS-<number>, got: %s", id),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "storyID" -> "story ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"storyID":     "story ID",
		"runID":       "run ID",
		"planningDir": "planning directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
