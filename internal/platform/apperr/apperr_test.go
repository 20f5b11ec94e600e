package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("unit", "unknown unit %q", "furlongs"), http.StatusBadRequest},
		{"not_found", NotFound("biomarker", "abc-123"), http.StatusNotFound},
		{"conflict", Conflict("alias", "already mapped"), http.StatusConflict},
		{"wrapped", fmt.Errorf("resolve: %w", NotFound("alias", "TESTO")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil-ish", fmt.Errorf("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("add alias: %w", Conflict("alias", "CHOL already mapped to another biomarker"))

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatal("expected errors.As to find ConflictError")
	}
	if ce.Entity != "alias" {
		t.Errorf("expected entity alias, got %s", ce.Entity)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := Validation("gender", "must be MALE or FEMALE, got %q", "OTHER")
	want := `validation failed on gender: must be MALE or FEMALE, got "OTHER"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
