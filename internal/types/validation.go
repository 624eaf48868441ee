package types

import (
	"fmt"
	"strings"
)

// Client-side checks only catch requests that could never succeed; the
// backend remains the authority on everything else.

const minPasswordLen = 6

// ValidateIDPresent rejects empty identifiers before a URL is built.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateEmail performs a minimal shape check.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email %q is not valid", email)
	}
	return nil
}

// ValidatePassword enforces the backend's minimum length so obviously bad
// registrations fail before a round trip.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// ValidateLogin checks credentials for presence.
func ValidateLogin(req LoginRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}

// ValidateRegister checks a registration request.
func ValidateRegister(req RegisterRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	return ValidatePassword(req.Password)
}
