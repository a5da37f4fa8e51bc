package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrUnauthenticated   = errors.New("unauthenticated")

	ErrValidation         = errors.New("validation failed")
	ErrSymbolNotFound     = errors.New("symbol not found")
	ErrQuoteUnavailable   = errors.New("quote unavailable")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoShares           = errors.New("no shares of symbol")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// ValidationError ошибка пользовательского ввода. Message показывается юзеру как есть.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет проверять любую ValidationError через errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation //nolint:errorlint
}
