package apperror_test

import (
	"errors"
	"testing"

	"BlogGolang/pkg/apperror"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperror.Error
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", apperror.NewUnauthorized(), 401, "unauthorized"},
		{"forbidden", apperror.NewForbidden(), 403, "forbidden"},
		{"not found", apperror.NewNotFound("Blog", "42"), 404, "not found"},
		{"method not allowed", apperror.NewMethodNotAllowed(), 405, "method not allowed"},
		{"request timeout", apperror.NewRequestTimeout(), 408, "request timeout"},
		{"validation", apperror.NewValidation(nil), 422, "validation error"},
		{"token invalid", apperror.NewTokenInvalid("access token", "bad signature"), 401, "token invalid"},
		{"token expired", apperror.NewTokenExpired(), 401, "token expired"},
		{"refresh token expired", apperror.NewRefreshTokenExpired(), 401, "refresh token expired"},
		{"resource created", apperror.NewResourceCreated("created"), 201, "resource created"},
		{"internal", apperror.NewInternal("boom", nil), 500, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("want status %d, got %d", tt.wantStatus, tt.err.Status)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("want code %q, got %q", tt.wantCode, tt.err.Code)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := apperror.NewNotFound("Blog", "abc")

	if want := "Blog with id abc not found"; err.Message != want {
		t.Errorf("want message %q, got %q", want, err.Message)
	}
}

func TestValidationCarriesFieldErrors(t *testing.T) {
	fieldErrors := map[string][]string{
		"title":   {"Title is required."},
		"content": {"Content is required."},
	}
	err := apperror.NewValidation(fieldErrors)

	if len(err.Errors) != 2 {
		t.Fatalf("want 2 field entries, got %d", len(err.Errors))
	}
	if got := err.Errors["title"][0]; got != "Title is required." {
		t.Errorf("want title message, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps unexpected errors as internal", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := apperror.Wrap("Failed to save blog", cause)

		appErr, ok := apperror.As(err)
		if !ok {
			t.Fatal("want *apperror.Error")
		}
		if appErr.Status != 500 {
			t.Errorf("want status 500, got %d", appErr.Status)
		}
		if got := appErr.Details["error"]; got != "connection refused" {
			t.Errorf("want cause in details, got %v", got)
		}
	})

	t.Run("not found passes through unwrapped", func(t *testing.T) {
		original := apperror.NewNotFound("Blog", "1")
		err := apperror.Wrap("Failed to save blog", original)

		appErr, ok := apperror.As(err)
		if !ok || appErr != original {
			t.Errorf("want original not found error, got %v", err)
		}
	})

	t.Run("request timeout passes through unwrapped", func(t *testing.T) {
		original := apperror.NewRequestTimeout()
		err := apperror.Wrap("Failed to save blog", original)

		appErr, ok := apperror.As(err)
		if !ok || appErr.Code != apperror.CodeRequestTimeout {
			t.Errorf("want request timeout, got %v", err)
		}
	})

	t.Run("other typed errors are wrapped", func(t *testing.T) {
		err := apperror.Wrap("Failed to save blog", apperror.NewForbidden())

		appErr, ok := apperror.As(err)
		if !ok || appErr.Status != 500 {
			t.Errorf("want internal error, got %v", err)
		}
	})
}

func TestIs(t *testing.T) {
	if !errors.Is(apperror.NewTokenExpired(), apperror.NewTokenExpired()) {
		t.Error("want same-variant errors to match")
	}
	if errors.Is(apperror.NewTokenExpired(), apperror.NewTokenInvalid("access token", "x")) {
		t.Error("want different variants not to match")
	}
}
