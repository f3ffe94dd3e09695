// File: grammar/parser/builder.go
package parser

import (
	"fmt"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/token"
)

// Builder builds definition nodes from a token stream
type Builder struct {
	c    cursor
	sink Sink
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithBuilderSink forwards recoverable build diagnostics to sink
func WithBuilderSink(sink Sink) BuilderOption {
	return func(b *Builder) {
		b.sink = sink
	}
}

// NewBuilder creates a new Builder over tokens. The slice is not modified.
func NewBuilder(tokens []token.Token, opts ...BuilderOption) *Builder {
	b := &Builder{c: cursor{tokens: tokens}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build builds a program from tokens with default options
func Build(tokens []token.Token) (*model.Program, error) {
	return NewBuilder(tokens).Build()
}

// Remaining returns the number of unconsumed tokens
func (b *Builder) Remaining() int {
	return len(b.c.tokens) - b.c.pos
}

// Peek returns the current token without consuming it
func (b *Builder) Peek() (token.Token, bool) {
	if b.c.atEnd() {
		return token.Token{}, false
	}
	return b.c.peek(), true
}

// Next consumes and returns the current token
func (b *Builder) Next() (token.Token, bool) {
	if b.c.atEnd() {
		return token.Token{}, false
	}
	return b.c.next(), true
}

// Expect consumes the current token if it is of the given kind
func (b *Builder) Expect(kind token.Kind) (token.Token, error) {
	return b.ExpectFunc(func(k token.Kind) bool { return k == kind }, kind.String(), true)
}

// ExpectFunc checks the current token against pred and consumes it when
// advance is set. expected describes pred in the error.
func (b *Builder) ExpectFunc(pred func(token.Kind) bool, expected string, advance bool) (token.Token, error) {
	tok, ok := b.Peek()
	if !ok {
		return token.Token{}, &ParseError{Expected: expected, AtEnd: true}
	}
	if !pred(tok.Kind) {
		return token.Token{}, &ParseError{Expected: expected, Actual: tok}
	}
	if advance {
		b.c.next()
	}
	return tok, nil
}

// Build consumes the whole stream and returns its definitions. The first
// structural error aborts the build.
func (b *Builder) Build() (*model.Program, error) {
	program := model.NewProgram()

	for !b.c.atEnd() {
		switch b.c.peek().Kind {
		case token.KeywordSyntaxDef:
			def, err := b.ParseSyntaxDef(program.NextID())
			if err != nil {
				return nil, err
			}
			program.AddDef(def)
		case token.KeywordTokenDef:
			def, err := b.ParseTokenDef(program.NextID())
			if err != nil {
				return nil, err
			}
			program.AddDef(def)
		default:
			// Skip any unexpected tokens at the top level
			tok := b.c.next()
			b.report(Diagnostic{
				Severity: SeverityWarning,
				Location: tok.Start,
				Message:  fmt.Sprintf("unexpected %s at top level, skipped", tok.Kind),
			})
		}
	}

	return program, nil
}

// ParseSyntaxDef parses a syntax definition that will be stored at id
func (b *Builder) ParseSyntaxDef(id model.NodeID) (*model.SyntaxDefNode, error) {
	kw, err := b.Expect(token.KeywordSyntaxDef)
	if err != nil {
		return nil, err
	}
	name, err := b.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	rules, err := b.parseBody()
	if err != nil {
		return nil, fmt.Errorf("syntaxdef %s: %w", name.Value, err)
	}

	return model.NewSyntaxDef(id, kw, name.Value, rules), nil
}

// ParseTokenDef parses a token definition that will be stored at id
func (b *Builder) ParseTokenDef(id model.NodeID) (*model.TokenDefNode, error) {
	kw, err := b.Expect(token.KeywordTokenDef)
	if err != nil {
		return nil, err
	}
	name, err := b.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	var inheritance string
	if b.c.peekIs(token.Identifier) {
		inheritance = b.c.next().Value
	}

	rules, err := b.parseBody()
	if err != nil {
		return nil, fmt.Errorf("tokendef %s: %w", name.Value, err)
	}

	return model.NewTokenDef(id, kw, name.Value, inheritance, rules), nil
}

// parseBody parses '(' rules ')' ';'
func (b *Builder) parseBody() ([]*model.RuleDefNode, error) {
	// '(' lexes as RBrace and ')' as LBrace
	if _, err := b.Expect(token.RBrace); err != nil {
		return nil, err
	}

	var rules []*model.RuleDefNode
	for {
		rule, ok, err := b.ParseRuleDef()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		rules = append(rules, rule)
	}

	if _, err := b.Expect(token.LBrace); err != nil {
		return nil, err
	}
	if _, err := b.Expect(token.Semicolon); err != nil {
		return nil, err
	}

	return rules, nil
}

// ParseRuleDef parses one rule. It returns false without consuming anything
// when the current token cannot start a rule. The rule's parent is set by
// the definition that adopts it.
func (b *Builder) ParseRuleDef() (*model.RuleDefNode, bool, error) {
	lead, ok := b.Peek()
	if !ok || !canStartRule(lead.Kind) {
		return nil, false, nil
	}
	b.c.next()

	start := b.c.pos
	for !b.c.atEnd() && b.c.peek().Kind != token.Semicolon {
		b.c.next()
	}
	body := b.c.tokens[start:b.c.pos]

	if _, err := b.Expect(token.Semicolon); err != nil {
		return nil, false, fmt.Errorf("rule %s: %w", lead.Value, err)
	}

	// A rule made of its leading token alone describes itself
	if len(body) == 0 {
		body = []token.Token{lead}
	}

	res := ParseComponents(body)
	if res.Stopped {
		b.report(Diagnostic{
			Severity: SeverityWarning,
			Location: res.StopToken.Start,
			Message:  fmt.Sprintf("rule %s: unexpected %s in rule body, rest of the body ignored", lead.Value, res.StopToken.Kind),
		})
	}

	return &model.RuleDefNode{
		Token:       lead,
		Name:        lead.Value,
		Declaration: model.NewDeclaration(res.Components),
		Parent:      model.NoParent,
	}, true, nil
}

func canStartRule(kind token.Kind) bool {
	return kind == token.Identifier || kind == token.StringLiteral || kind == token.CharLiteral
}

func (b *Builder) report(d Diagnostic) {
	if b.sink != nil {
		b.sink.Report(d)
	}
}
