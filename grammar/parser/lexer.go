// File: grammar/parser/lexer.go
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/token"
)

// DefaultIdentifierWhitelist holds the non-letter characters allowed inside identifiers
const DefaultIdentifierWhitelist = "-_"

// Lexer tokenizes input text
type Lexer struct {
	input       []rune
	idx         int            // index of the next rune to read
	loc         token.Location // location of the next rune to read
	whitelist   string
	sink        Sink
	diagnostics []Diagnostic
}

// LexerOption configures a Lexer
type LexerOption func(*Lexer)

// WithLexerSink forwards lexical diagnostics to sink
func WithLexerSink(sink Sink) LexerOption {
	return func(l *Lexer) {
		l.sink = sink
	}
}

// WithIdentifierWhitelist replaces the characters allowed inside identifiers
// besides letters
func WithIdentifierWhitelist(chars string) LexerOption {
	return func(l *Lexer) {
		l.whitelist = chars
	}
}

// NewLexer creates a new Lexer
func NewLexer(input string, opts ...LexerOption) *Lexer {
	l := &Lexer{
		input:     []rune(input),
		loc:       token.StartLocation,
		whitelist: DefaultIdentifierWhitelist,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize lexes input with default options
func Tokenize(input string) ([]token.Token, error) {
	return NewLexer(input).Tokenize()
}

// Diagnostics returns the lexical diagnostics reported so far
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// Location returns the location of the next character to be read
func (l *Lexer) Location() token.Location {
	return l.loc
}

// IsAtEnd reports whether the whole input has been consumed
func (l *Lexer) IsAtEnd() bool {
	return l.idx >= len(l.input)
}

// Tokenize consumes the remaining input and returns its tokens in source
// order. An unterminated literal stops the scan with a *LexError; the tokens
// produced before it are returned alongside.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for !l.IsAtEnd() {
		for l.peek() == ' ' {
			l.read()
		}
		if l.IsAtEnd() {
			break
		}

		ch := l.peek()
		switch {
		case ch == '\n' || ch == '\r':
			// each CR is its own newline, CRLF counts twice
			l.read()
		case ch == '"':
			tok, err := l.readLiteral('"', token.StringLiteral)
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case ch == '\'':
			tok, err := l.readCharLiteral()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case ch == '[':
			tok, err := l.readLiteral(']', token.CharacterClass)
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case unicode.IsLetter(ch):
			tokens = append(tokens, l.readIdentifier())
		default:
			if kind, ok := token.PunctuationKind(ch); ok {
				tokens = append(tokens, token.New(kind, l.loc))
			}
			l.read()
		}
	}

	return tokens, nil
}

// peek returns the next rune without consuming it, or -1 at the end
func (l *Lexer) peek() rune {
	if l.IsAtEnd() {
		return -1
	}
	return l.input[l.idx]
}

// read consumes one rune and advances the location
func (l *Lexer) read() rune {
	ch := l.input[l.idx]
	l.idx++
	l.loc.Position++
	if ch == '\n' || ch == '\r' {
		l.loc.Line++
		l.loc.Column = 1
	} else {
		l.loc.Column++
	}
	return ch
}

// readLiteral reads a literal from the current delimiter up to closing
func (l *Lexer) readLiteral(closing rune, kind token.Kind) (token.Token, error) {
	start := l.loc
	body, err := l.readDelimited(closing, kind)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{
		Kind:   kind,
		Value:  string(body),
		Start:  start,
		End:    l.loc,
		Length: len(body),
	}, nil
}

// readDelimited consumes the opening delimiter, the body and the closing
// delimiter, returning the body
func (l *Lexer) readDelimited(closing rune, kind token.Kind) ([]rune, error) {
	start := l.loc
	l.read()

	var body []rune
	for l.peek() != closing {
		if l.IsAtEnd() {
			return nil, &LexError{Kind: kind, Start: start, Err: ErrUnterminatedLiteral}
		}
		body = append(body, l.read())
	}
	l.read()

	return body, nil
}

// readCharLiteral reads a '.' literal. A malformed literal is reported and
// the opening quote is returned as a SingleQuote token, leaving the lexer
// right after it.
func (l *Lexer) readCharLiteral() (token.Token, error) {
	start := l.loc
	startIdx := l.idx

	body, err := l.readDelimited('\'', token.CharLiteral)
	if err != nil {
		return token.Token{}, err
	}

	value, msg := validateCharLiteral(body)
	if msg != "" {
		l.report(Diagnostic{Severity: SeverityError, Location: start, Message: msg})

		l.idx = startIdx
		l.loc = start
		l.read()
		return token.New(token.SingleQuote, start), nil
	}

	return token.Token{
		Kind:   token.CharLiteral,
		Value:  value,
		Start:  start,
		End:    l.loc,
		Length: len(body),
	}, nil
}

// validateCharLiteral returns the literal's value, or a message describing
// why the body is not a valid char literal
func validateCharLiteral(body []rune) (string, string) {
	if len(body) > 0 && body[0] == '\\' {
		if len(body) != 2 {
			return "", fmt.Sprintf("escaped char literal must have exactly one character after '\\', got %q", string(body))
		}
		if !model.IsEscapeChar(body[1]) {
			return "", fmt.Sprintf("invalid escape sequence '\\%c' in char literal", body[1])
		}
		return string(body[1]), ""
	}
	if len(body) != 1 {
		return "", fmt.Sprintf("char literal must contain exactly one character, got %q", string(body))
	}
	return string(body), ""
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() token.Token {
	start := l.loc

	var sb strings.Builder
	n := 0
	for !l.IsAtEnd() && (unicode.IsLetter(l.peek()) || strings.ContainsRune(l.whitelist, l.peek())) {
		sb.WriteRune(l.read())
		n++
	}
	text := sb.String()

	tok := token.Token{Start: start, End: l.loc, Length: n}
	switch kind, ok := token.Keywords[strings.ToLower(text)]; {
	case n == 0:
		tok.Kind = token.Undefined
	case ok:
		tok.Kind = kind
	default:
		tok.Kind = token.Identifier
		tok.Value = text
	}
	return tok
}

func (l *Lexer) report(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
	if l.sink != nil {
		l.sink.Report(d)
	}
}
