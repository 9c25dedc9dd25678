package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "DB_ERROR",
				Message: "insert failed",
			},
			expected: "[DB_ERROR] insert failed",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "insert failed",
			},
			expected: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestValidationErrorError(t *testing.T) {
	withField := &ValidationError{Field: "storeId", Message: "must be a positive store reference"}
	if got := withField.Error(); got != "validation failed for field 'storeId': must be a positive store reference" {
		t.Errorf("unexpected message: %q", got)
	}

	withoutField := &ValidationError{Message: "payload cannot be nil"}
	if got := withoutField.Error(); got != "validation failed: payload cannot be nil" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestNewValidationErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError("firstName", "cannot be empty")
	if !errors.Is(err, ErrValidation) {
		t.Error("expected error to wrap ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError in chain")
	}
	if ve.Field != "firstName" {
		t.Errorf("expected field firstName, got %q", ve.Field)
	}
}

func TestWrapDatabaseErrorKeepsCause(t *testing.T) {
	cause := errors.New("broken pipe")
	err := WrapDatabaseError(cause, "saving customer")

	if !errors.Is(err, ErrDatabase) {
		t.Error("expected error to wrap ErrDatabase")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to keep the original cause")
	}
}
