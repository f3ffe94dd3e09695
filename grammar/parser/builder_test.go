package parser

import (
	"errors"
	"testing"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSource(t *testing.T, input string, opts ...BuilderOption) (*model.Program, error) {
	t.Helper()
	tokens, err := Tokenize(input)
	require.NoError(t, err)
	return NewBuilder(tokens, opts...).Build()
}

func TestBuildSingleStringRule(t *testing.T) {
	program, err := buildSource(t, `syntaxdef g ( "x"; ) ;`)
	require.NoError(t, err)
	require.Len(t, program.Defs, 1)

	syntax, ok := program.Defs[0].(*model.SyntaxDefNode)
	require.True(t, ok, "expected a syntax definition, got %T", program.Defs[0])
	assert.Equal(t, "g", syntax.Name)
	assert.Equal(t, token.KeywordSyntaxDef, syntax.Token.Kind)
	require.Len(t, syntax.Rules, 1)

	rule := syntax.Rules[0]
	assert.Equal(t, "x", rule.Name)
	require.Equal(t, 1, rule.Declaration.Len())

	lit, ok := rule.Declaration.At(0).(*model.StringLiteralComponent)
	require.True(t, ok)
	assert.Equal(t, "x", lit.Value)
}

func TestBuildNamedRules(t *testing.T) {
	input := `syntaxdef expr (
    digit [0-9];
    alpha [a-zA-Z];
    alpha-or-digit alpha | @digit;
    newline '\n' ;
);`

	program, err := buildSource(t, input)
	require.NoError(t, err)
	require.Len(t, program.Defs, 1)

	syntax := program.Defs[0].(*model.SyntaxDefNode)
	require.Len(t, syntax.Rules, 4)

	digit, ok := syntax.Rule("digit")
	require.True(t, ok)
	class, ok := digit.Declaration.At(0).(*model.CharacterClassComponent)
	require.True(t, ok)
	assert.Equal(t, []rune("0-9"), class.Values)

	alpha, ok := syntax.Rule("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, alpha.Declaration.Len())

	aod, ok := syntax.Rule("alpha-or-digit")
	require.True(t, ok)
	require.True(t, aod.Declaration.IsBinary())

	bin, ok := aod.Declaration.AsBinaryExpression()
	require.True(t, ok)
	assert.Equal(t, &model.IdentifierComponent{Token: bin.Left.Tok(), Name: "alpha"}, bin.Left)
	assert.Equal(t, model.BitwiseOr, bin.Operator.Operator)
	right, ok := bin.Right.(*model.IdentifierComponent)
	require.True(t, ok)
	assert.Equal(t, "digit", right.Name)
	assert.True(t, right.IsReference)
	assert.Equal(t, token.At, right.Token.Kind)

	newline, ok := syntax.Rule("newline")
	require.True(t, ok)
	ch, ok := newline.Declaration.At(0).(*model.CharLiteralComponent)
	require.True(t, ok)
	assert.True(t, ch.Escaped)
	assert.Equal(t, "n", ch.Value)
	assert.Equal(t, '\n', ch.Rune())

	_, ok = syntax.Rule("missing")
	assert.False(t, ok)
}

func TestBuildTokenDef(t *testing.T) {
	input := `tokendef digits base ( digit [0-9]; ); TokenDef plain ( 'a'; );`

	program, err := buildSource(t, input)
	require.NoError(t, err)
	require.Len(t, program.TokenDefs(), 2)

	digits := program.TokenDefs()[0]
	assert.Equal(t, "digits", digits.Name)
	assert.True(t, digits.HasInheritance)
	assert.Equal(t, "base", digits.Inheritance)
	_, ok := digits.Rule("digit")
	assert.True(t, ok)

	plain := program.TokenDefs()[1]
	assert.Equal(t, "plain", plain.Name)
	assert.False(t, plain.HasInheritance)
	rule, ok := plain.Rule("a")
	require.True(t, ok)
	assert.Equal(t, "'a'", rule.Declaration.String())
}

func TestBuildSetsParents(t *testing.T) {
	input := `syntaxdef first ( a "a"; ); tokendef second ( b "b"; c "c"; );`

	program, err := buildSource(t, input)
	require.NoError(t, err)
	require.Len(t, program.Defs, 2)

	for i, def := range program.Defs {
		assert.Equal(t, model.NoParent, def.ParentID())
		for _, rule := range def.RuleList() {
			assert.Equal(t, model.NodeID(i), rule.Parent)

			parent, ok := program.ParentOf(rule)
			require.True(t, ok)
			assert.Same(t, def, parent)
		}
	}

	rule, ok := program.FindRule("second", "c")
	require.True(t, ok)
	assert.Equal(t, "c", rule.Name)
}

func TestBuildEmptyBody(t *testing.T) {
	program, err := buildSource(t, `syntaxdef empty ( ) ;`)
	require.NoError(t, err)
	require.Len(t, program.Defs, 1)
	assert.Empty(t, program.Defs[0].RuleList())
}

func TestBuildStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"missing name", `syntaxdef ( ) ;`, ErrUnexpectedToken},
		{"curly body", `syntaxdef g { } ;`, ErrUnexpectedToken},
		{"missing close", `syntaxdef g ( "x";`, ErrUnexpectedEnd},
		{"missing semicolon", `syntaxdef g ( ) x`, ErrUnexpectedToken},
		{"rule without semicolon", `syntaxdef g ( r a ) ;`, ErrUnexpectedEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := buildSource(t, tt.input)
			require.Error(t, err)
			assert.Nil(t, program)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestParseErrorCarriesLocation(t *testing.T) {
	_, err := buildSource(t, "syntaxdef\n  ( ) ;")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Identifier", parseErr.Expected)
	assert.Equal(t, token.RBrace, parseErr.Actual.Kind)
	assert.Equal(t, 2, parseErr.Actual.Start.Line)
	assert.Equal(t, 3, parseErr.Actual.Start.Column)
	assert.Contains(t, err.Error(), "line 2, column 3")
}

func TestBuildSkipsUnexpectedTopLevelTokens(t *testing.T) {
	collector := &Collector{}
	program, err := buildSource(t, `; x syntaxdef g ( "x"; ) ;`, WithBuilderSink(collector))
	require.NoError(t, err)
	require.Len(t, program.Defs, 1)

	require.Len(t, collector.Diagnostics(), 2)
	for _, d := range collector.Diagnostics() {
		assert.Equal(t, SeverityWarning, d.Severity)
	}
	assert.False(t, collector.HasErrors())
}

func TestBuildKeepsPartialDeclaration(t *testing.T) {
	collector := &Collector{}
	program, err := buildSource(t, `syntaxdef g ( r a + b; next "n"; ) ;`, WithBuilderSink(collector))
	require.NoError(t, err)

	syntax := program.Defs[0].(*model.SyntaxDefNode)
	require.Len(t, syntax.Rules, 2)

	r, ok := syntax.Rule("r")
	require.True(t, ok)
	require.Equal(t, 1, r.Declaration.Len())
	assert.Equal(t, "a", r.Declaration.String())

	require.Len(t, collector.Diagnostics(), 1)
	assert.Contains(t, collector.Diagnostics()[0].Message, "Plus")
}

func TestBuildSeparatorIsPartOfTheBody(t *testing.T) {
	collector := &Collector{}
	program, err := buildSource(t, `syntaxdef g ( a = b; c : d; ) ;`, WithBuilderSink(collector))
	require.NoError(t, err)

	syntax := program.Defs[0].(*model.SyntaxDefNode)
	require.Len(t, syntax.Rules, 2)

	a, ok := syntax.Rule("a")
	require.True(t, ok)
	assert.Equal(t, 0, a.Declaration.Len())
	c, ok := syntax.Rule("c")
	require.True(t, ok)
	assert.Equal(t, 0, c.Declaration.Len())

	diags := collector.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "Equals")
	assert.Equal(t, 17, diags[0].Location.Column)
	assert.Equal(t, SeverityWarning, diags[1].Severity)
	assert.Contains(t, diags[1].Message, "Colon")
}

func TestBuilderPrimitives(t *testing.T) {
	tokens, err := Tokenize(`syntaxdef g`)
	require.NoError(t, err)

	b := NewBuilder(tokens)
	assert.Equal(t, 2, b.Remaining())

	tok, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, token.KeywordSyntaxDef, tok.Kind)

	_, err = b.ExpectFunc(func(k token.Kind) bool { return k.IsKeyword() }, "keyword", false)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Remaining())

	_, err = b.Expect(token.KeywordSyntaxDef)
	require.NoError(t, err)

	tok, ok = b.Next()
	require.True(t, ok)
	assert.Equal(t, "g", tok.Value)

	_, ok = b.Next()
	assert.False(t, ok)

	_, err = b.Expect(token.Semicolon)
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	// the builder reads but never modifies the stream it was given
	assert.Len(t, tokens, 2)
}
