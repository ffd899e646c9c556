package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrPromptAborted    = errors.New("prompt aborted")
	ErrSettingsOutdated = errors.New("settings missing or outdated")
)

// TransportError reports a non-2xx status or an unreadable body for one API call.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Method, e.URL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrUnauthorized for 401 and 403 responses so callers can use errors.Is.
func (e *TransportError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type AuthStage string

const (
	AuthStageVerifyIdentity AuthStage = "verify identity"
	AuthStageLogin          AuthStage = "login"
	AuthStageMFA            AuthStage = "mfa"
)

// AuthError is terminal for the run.
type AuthError struct {
	Stage  AuthStage
	Status AuthStatus
	Hint   string
	Err    error
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("authentication failed at %s", e.Stage)
	if e.Status != "" {
		msg += fmt.Sprintf(" (status %s)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UnsupportedTaskError aborts the resolution of a single task.
type UnsupportedTaskError struct {
	TaskID string
	Reason string
}

func (e *UnsupportedTaskError) Error() string {
	return fmt.Sprintf("task %s not supported: %s", e.TaskID, e.Reason)
}

// NoChoiceError is returned when a required selection had no options or was aborted.
type NoChoiceError struct {
	Prompt string
	Err    error
}

func (e *NoChoiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no choice for %q: %v", e.Prompt, e.Err)
	}
	return fmt.Sprintf("no choice for %q", e.Prompt)
}

func (e *NoChoiceError) Unwrap() error {
	return e.Err
}
