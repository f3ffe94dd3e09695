package model

import (
	"regexp"

	"github.com/Nacorpio/Narser/grammar/token"
)

// Component is the smallest unit inside a rule body
type Component interface {
	Tok() token.Token
	String() string
	component()
}

// Operator is the operator carried by an OperatorComponent
type Operator int

const (
	BitwiseAnd Operator = iota
	BitwiseOr
)

func (o Operator) String() string {
	switch o {
	case BitwiseAnd:
		return "&"
	case BitwiseOr:
		return "|"
	default:
		return "?"
	}
}

// StringLiteralComponent is a "..." literal
type StringLiteralComponent struct {
	Token token.Token
	Value string
}

// Pattern compiles the literal as a regular expression. The result is not
// cached.
func (c *StringLiteralComponent) Pattern() (*regexp.Regexp, error) {
	return regexp.Compile(c.Value)
}

// CharLiteralComponent is a '.' literal. Value holds the single character, or
// the escape letter when Escaped is set ('\n' has Value "n").
type CharLiteralComponent struct {
	Token   token.Token
	Value   string
	Escaped bool
}

var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
	'?':  '?',
}

// IsEscapeChar reports whether ch may follow a backslash in a char literal
func IsEscapeChar(ch rune) bool {
	_, ok := escapes[ch]
	return ok
}

// Rune returns the character the literal denotes, resolving escapes
func (c *CharLiteralComponent) Rune() rune {
	var r rune
	for _, ch := range c.Value {
		r = ch
		break
	}
	if c.Escaped {
		if e, ok := escapes[r]; ok {
			return e
		}
	}
	return r
}

// CharacterClassComponent holds the raw contents of a [...] class
type CharacterClassComponent struct {
	Token  token.Token
	Values []rune
}

// IdentifierComponent names a rule; IsReference is set for @name
type IdentifierComponent struct {
	Token       token.Token
	Name        string
	IsReference bool
}

// OperatorComponent is an & or | between two components
type OperatorComponent struct {
	Token    token.Token
	Operator Operator
}

// BinaryExpressionComponent joins exactly two components with one operator
type BinaryExpressionComponent struct {
	Token    token.Token
	Left     Component
	Operator *OperatorComponent
	Right    Component
}

func (c *StringLiteralComponent) Tok() token.Token    { return c.Token }
func (c *CharLiteralComponent) Tok() token.Token      { return c.Token }
func (c *CharacterClassComponent) Tok() token.Token   { return c.Token }
func (c *IdentifierComponent) Tok() token.Token       { return c.Token }
func (c *OperatorComponent) Tok() token.Token         { return c.Token }
func (c *BinaryExpressionComponent) Tok() token.Token { return c.Token }

func (*StringLiteralComponent) component()    {}
func (*CharLiteralComponent) component()      {}
func (*CharacterClassComponent) component()   {}
func (*IdentifierComponent) component()       {}
func (*OperatorComponent) component()         {}
func (*BinaryExpressionComponent) component() {}

func (c *StringLiteralComponent) String() string {
	return `"` + c.Value + `"`
}

func (c *CharLiteralComponent) String() string {
	if c.Escaped {
		return `'\` + c.Value + `'`
	}
	return "'" + c.Value + "'"
}

func (c *CharacterClassComponent) String() string {
	return "[" + string(c.Values) + "]"
}

func (c *IdentifierComponent) String() string {
	if c.IsReference {
		return "@" + c.Name
	}
	return c.Name
}

func (c *OperatorComponent) String() string {
	return c.Operator.String()
}

func (c *BinaryExpressionComponent) String() string {
	return "(" + c.Left.String() + " " + c.Operator.String() + " " + c.Right.String() + ")"
}
