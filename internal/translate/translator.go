// Package translate provides the translation capability interface and
// its OpenAI-backed implementation.
package translate

import (
	"context"
	"errors"
	"fmt"
)

// Code classifies a translation failure.
type Code string

const (
	// CodeFailed is any upstream error other than a deadline expiry.
	CodeFailed Code = "TRANSLATION_FAILED"
	// CodeTimeout is a deadline expiry on the upstream call.
	CodeTimeout Code = "TIMEOUT"
)

// Error is a typed translation failure carrying the upstream message.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("translate: %s", e.Code)
	}
	return fmt.Sprintf("translate: %s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a translation deadline expiry.
func IsTimeout(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == CodeTimeout
	}
	return false
}

// Translator converts text into a target language. Implementations may
// block on external I/O; callers pass a context for cancellation.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Disabled stands in when no upstream translator is configured. Every
// call fails with a typed error rather than a nil-dereference.
type Disabled struct{}

// Translate always fails with CodeFailed.
func (Disabled) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return "", &Error{Code: CodeFailed, Err: errors.New("translator not configured")}
}
