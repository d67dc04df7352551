package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "Booking not found",
			},
			expected: "NOT_FOUND: Booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "Failed to list bookings",
				Err:     errors.New("server selection timeout"),
			},
			expected: "INTERNAL_ERROR: Failed to list bookings (caused by: server selection timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Internal("wrapped", originalErr)

	if errors.Unwrap(appErr) != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Salary", "65a1f0c2e4b0a1b2c3d4e5f6")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.StatusCode())
	}
	if err.Message != "Salary not found" {
		t.Errorf("expected message 'Salary not found', got %s", err.Message)
	}
	if err.Details["id"] != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected id detail, got %v", err.Details["id"])
	}
}

func TestValidationIsBadRequest(t *testing.T) {
	err := Validation("Expense validation failed", map[string]any{"date": "date is required"})

	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode())
	}
	if err.Details["date"] != "date is required" {
		t.Errorf("expected date detail, got %v", err.Details["date"])
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("Invalid request body")

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode())
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	wrapped := fmt.Errorf("context: %w", appErr)
	if AsAppError(wrapped) != appErr {
		t.Errorf("AsAppError() should find a wrapped AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should see through wrapping")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
	if IsAppError(regularErr) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	err := MethodNotAllowed("PATCH", "/bookings/abc")

	if err.StatusCode() != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", err.StatusCode())
	}
	if err.Code != CodeMethodNotAllowed {
		t.Errorf("expected code %s, got %s", CodeMethodNotAllowed, err.Code)
	}
	if err.Message != "Method PATCH not allowed on /bookings/abc" {
		t.Errorf("unexpected message %q", err.Message)
	}
}
