package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestArkodeError_Error(t *testing.T) {
	err := &ArkodeError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "Project not found",
	}

	expected := "NOT_FOUND: Project not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("name is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "name is required" {
		t.Errorf("Message = %q, want %q", err.Message, "name is required")
	}
}

func TestNewInvalidCredentials(t *testing.T) {
	err := NewInvalidCredentials()

	if err.Status != 401 {
		t.Errorf("Status = %d, want 401", err.Status)
	}
	if err.Error() != "INVALID_CREDENTIALS: Invalid credentials" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("Project", "missing-id")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "Project not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Project not found")
	}
	if err.Details["id"] != "missing-id" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "missing-id")
	}
}

func TestNewHTTP(t *testing.T) {
	err := NewHTTP(503, "GET", "/workspaces", `{"detail":"down"}`)

	if err.Status != 503 {
		t.Errorf("Status = %d, want 503", err.Status)
	}
	if err.Message != "GET /workspaces -> 503" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Details["path"] != "/workspaces" {
		t.Errorf("Details[path] = %v", err.Details["path"])
	}
	if err.Details["body"] != `{"detail":"down"}` {
		t.Errorf("Details[body] = %v", err.Details["body"])
	}
}

func TestNewTransport_Unwraps(t *testing.T) {
	err := NewTransport("POST", "/auth/login", io.ErrUnexpectedEOF)

	if err.Code != ErrTransport {
		t.Errorf("Code = %q, want %q", err.Code, ErrTransport)
	}
	if err.Unwrap() != io.ErrUnexpectedEOF {
		t.Errorf("Unwrap() = %v, want io.ErrUnexpectedEOF", err.Unwrap())
	}
}

func TestNewInternal(t *testing.T) {
	if got := NewInternal(nil).Message; got != "internal error" {
		t.Errorf("Message = %q, want %q", got, "internal error")
	}
	if got := NewInternal(fmt.Errorf("boom")).Message; got != "boom" {
		t.Errorf("Message = %q, want %q", got, "boom")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", NewNotFound("Project", "x"), ErrNotFound, true},
		{"different code", NewNotFound("Project", "x"), ErrInternal, false},
		{"wrapped", Wrap(NewInvalidCredentials(), "login"), ErrInvalidCredentials, true},
		{"plain error", fmt.Errorf("boom"), ErrInternal, false},
		{"nil", nil, ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(NewNotFound("Article", "1")); got != 404 {
		t.Errorf("StatusOf(not found) = %d, want 404", got)
	}
	if got := StatusOf(fmt.Errorf("plain")); got != 500 {
		t.Errorf("StatusOf(plain) = %d, want 500", got)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}
