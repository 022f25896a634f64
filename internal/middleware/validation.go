package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateMessage validates chat message content. Empty messages are
// accepted: the dispatcher echoes them as a degenerate reply.
func ValidateMessage(message string) error {
	if len(message) > 100000 { // ~100KB limit
		return errors.New("message exceeds maximum length")
	}
	if !utf8.ValidString(message) {
		return errors.New("message must be valid UTF-8")
	}
	return nil
}

// ValidateTicketID validates a client-supplied ticket id. Unknown ids
// are legal (they create a ticket), so only shape is checked.
func ValidateTicketID(id string) error {
	if len(id) > 64 {
		return errors.New("ticket id exceeds maximum length")
	}
	if !utf8.ValidString(id) {
		return errors.New("ticket id must be valid UTF-8")
	}
	return nil
}

// ValidateText validates text submitted for translation.
func ValidateText(text string) error {
	if len(text) == 0 {
		return errors.New("text cannot be empty")
	}
	if len(text) > 100000 {
		return errors.New("text exceeds maximum length")
	}
	if !utf8.ValidString(text) {
		return errors.New("text must be valid UTF-8")
	}
	return nil
}

// ValidateLang validates a target language code or name.
func ValidateLang(lang string) error {
	if len(lang) > 32 {
		return errors.New("lang exceeds maximum length")
	}
	if !utf8.ValidString(lang) {
		return errors.New("lang must be valid UTF-8")
	}
	return nil
}
