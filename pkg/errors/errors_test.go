package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("duplicate key value violates unique constraint")
	err := Wrap(cause, CodeConflict, "email already registered")

	if !IsCode(err, CodeConflict) {
		t.Fatalf("expected conflict code, got %v", err)
	}
	if err.Unwrap() != cause {
		t.Fatal("expected wrapped cause to be preserved")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeInvalid:      http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeInternal:     http.StatusInternalServerError,
		CodeUnknown:      http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatus(New(code, "x")); got != want {
			t.Fatalf("code %s: expected %d, got %d", code, want, got)
		}
	}
	if got := HTTPStatus(fmt.Errorf("plain")); got != http.StatusInternalServerError {
		t.Fatalf("plain error: expected 500, got %d", got)
	}
}

func TestWithField(t *testing.T) {
	err := New(CodeInvalid, "validation failed").
		WithField("email", "email is required").
		WithField("subject", "subject is required")

	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field entries, got %d", len(err.Fields))
	}
	if err.Fields["email"] == "" {
		t.Fatal("expected email field detail")
	}
}
