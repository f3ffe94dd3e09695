// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Source-related errors
	ErrEmptySource    = errors.New("source is empty")
	ErrSourceTooLarge = errors.New("source exceeds the configured size limit")

	// Lookup-related errors
	ErrDefinitionNotFound = errors.New("definition not found")
	ErrRuleNotFound       = errors.New("rule not found")
	ErrNotBinary          = errors.New("rule is not a binary expression")
)
