package parser

import (
	"errors"
	"fmt"

	"github.com/Nacorpio/Narser/grammar/token"
)

var (
	// ErrUnterminatedLiteral is returned when a literal never finds its closing delimiter
	ErrUnterminatedLiteral = errors.New("unterminated literal")

	// ErrUnexpectedToken is returned when the builder finds a token of the wrong kind
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEnd is returned when the token stream ends too early
	ErrUnexpectedEnd = errors.New("unexpected end of input")
)

// LexError is a fatal tokenizer error
type LexError struct {
	Kind  token.Kind // kind of the literal being scanned
	Start token.Location
	Err   error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: %s starting at line %d, column %d", e.Err, e.Kind, e.Start.Line, e.Start.Column)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// ParseError is a fatal structural error raised by the builder
type ParseError struct {
	Expected string
	Actual   token.Token
	AtEnd    bool
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("expected %s, got end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, got %s instead (line %d, column %d)",
		e.Expected, e.Actual.Kind, e.Actual.Start.Line, e.Actual.Start.Column)
}

func (e *ParseError) Unwrap() error {
	if e.AtEnd {
		return ErrUnexpectedEnd
	}
	return ErrUnexpectedToken
}
