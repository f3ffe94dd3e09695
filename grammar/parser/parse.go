// File: grammar/parser/parse.go
package parser

import (
	"fmt"
	"os"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/token"
)

// Result is the output of the whole front end
type Result struct {
	Program     *model.Program
	Tokens      []token.Token
	Diagnostics []Diagnostic
}

type options struct {
	sink      Sink
	whitelist string
}

// Option configures Parse and ParseFile
type Option func(*options)

// WithSink forwards every diagnostic to sink as it is found
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithWhitelist sets the non-letter characters allowed inside identifiers
func WithWhitelist(chars string) Option {
	return func(o *options) {
		o.whitelist = chars
	}
}

// Parse lexes and builds a grammar source. Diagnostics collected before a
// fatal error are returned with it.
func Parse(input string, opts ...Option) (*Result, error) {
	o := options{whitelist: DefaultIdentifierWhitelist}
	for _, opt := range opts {
		opt(&o)
	}

	collector := &Collector{}
	sink := Tee(collector, o.sink)
	res := &Result{}

	lexer := NewLexer(input, WithLexerSink(sink), WithIdentifierWhitelist(o.whitelist))
	tokens, err := lexer.Tokenize()
	res.Tokens = tokens
	if err != nil {
		res.Diagnostics = collector.Diagnostics()
		return res, fmt.Errorf("tokenizing: %w", err)
	}

	program, err := NewBuilder(tokens, WithBuilderSink(sink)).Build()
	res.Diagnostics = collector.Diagnostics()
	if err != nil {
		return res, fmt.Errorf("building syntax: %w", err)
	}
	res.Program = program

	return res, nil
}

// ParseFile parses a grammar file
func ParseFile(filePath string, opts ...Option) (*Result, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	res, err := Parse(string(content), opts...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", filePath, err)
	}
	res.Program.Source = filePath

	return res, nil
}
