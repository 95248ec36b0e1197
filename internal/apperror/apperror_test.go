package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("movie"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("title", "title is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Conflict wraps ErrConflict",
			err:       Conflict("username or email already registered"),
			target:    ErrConflict,
			wantMatch: true,
		},
		{
			name:      "Forbidden wraps ErrForbidden",
			err:       Forbidden("not authorized"),
			target:    ErrForbidden,
			wantMatch: true,
		},
		{
			name:      "Unauthorized wraps ErrUnauthorized",
			err:       Unauthorized("incorrect username or password"),
			target:    ErrUnauthorized,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrForbidden",
			err:       NotFound("movie"),
			target:    ErrForbidden,
			wantMatch: false,
		},
		{
			name:      "Unauthorized does NOT match ErrForbidden",
			err:       Unauthorized("nope"),
			target:    ErrForbidden,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorsIs_ThroughWrapping(t *testing.T) {
	// Services wrap repository errors with fmt.Errorf("...: %w", err);
	// the sentinel must still be reachable through the chain.
	inner := NotFound("comment")
	wrapped := fmt.Errorf("deleting comment: %w", inner)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is should find ErrNotFound through fmt.Errorf wrapping")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError through fmt.Errorf wrapping")
	}
	if appErr.Message != "comment not found" {
		t.Errorf("Message = %q, want %q", appErr.Message, "comment not found")
	}
}

func TestAppError_Message(t *testing.T) {
	err := ValidationFailed("title", "title is required")

	if err.Error() != "title is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "title is required")
	}
	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
}
