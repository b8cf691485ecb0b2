package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrUnauthenticated            = errors.New("not authorized")
	ErrInvalidOrExpiredCode       = errors.New("invalid or expired OTP")
	ErrInvalidOrExpiredResetToken = errors.New("invalid or expired reset token")
	ErrDeliveryFailure            = errors.New("failed to send email")
	ErrRegistrationFailed         = errors.New("registration failed")
)

// ValidationError is malformed input tied to a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
