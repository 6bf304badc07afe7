package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		errMsg  string
	}{
		{name: "present", field: "runID", value: "abc", wantErr: false},
		{name: "empty", field: "runID", value: "", wantErr: true, errMsg: "run ID is required"},
		{name: "whitespace", field: "storyID", value: "  ", wantErr: true, errMsg: "story ID is required"},
		{name: "unknown field name", field: "other", value: "", wantErr: true, errMsg: "other is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStoryID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "MS-10", wantErr: false},
		{id: "MS-TBD", wantErr: true},
		{id: "", wantErr: true},
		{id: "10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateStoryID("storyID", tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStoryID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestConfigurationError_Is(t *testing.T) {
	err := &ConfigurationError{Path: "/x/planning", Reason: "planning directory not found"}
	if !errors.Is(err, ErrPlanningDirMissing) {
		t.Error("expected ConfigurationError to match ErrPlanningDirMissing")
	}
	if !strings.Contains(err.Error(), "/x/planning") {
		t.Errorf("expected path in message, got %q", err.Error())
	}
}

func TestNotFoundError_Is(t *testing.T) {
	err := &NotFoundError{Kind: "story", ID: "MS-99"}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected NotFoundError to match ErrNotFound")
	}
	if err.Error() != "story MS-99 not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
