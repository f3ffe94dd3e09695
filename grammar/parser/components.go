package parser

import (
	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/token"
)

// ComponentResult is the outcome of parsing one rule body. Stopped is set
// when the body ended at a token no component starts with; the components
// read before it are kept.
type ComponentResult struct {
	Components []model.Component
	Stopped    bool
	StopToken  token.Token
}

// ParseComponents turns the tokens of one rule body into components
func ParseComponents(tokens []token.Token) ComponentResult {
	c := cursor{tokens: tokens}
	var res ComponentResult

	for !c.atEnd() {
		comp, ok := c.parseComponent()
		if !ok {
			res.Stopped = true
			res.StopToken = c.peek()
			break
		}
		res.Components = append(res.Components, comp)
	}

	return res
}

// cursor is a read position over an immutable token slice
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) peek() token.Token {
	return c.tokens[c.pos]
}

func (c *cursor) peekIs(kind token.Kind) bool {
	return !c.atEnd() && c.tokens[c.pos].Kind == kind
}

func (c *cursor) next() token.Token {
	t := c.tokens[c.pos]
	c.pos++
	return t
}

// parseComponent parses a single component, consuming nothing on failure
func (c *cursor) parseComponent() (model.Component, bool) {
	tok := c.peek()

	switch tok.Kind {
	case token.StringLiteral:
		c.next()
		return &model.StringLiteralComponent{Token: tok, Value: tok.Value}, true
	case token.CharLiteral:
		c.next()
		return &model.CharLiteralComponent{Token: tok, Value: tok.Value, Escaped: tok.Length > 1}, true
	case token.CharacterClass:
		c.next()
		return &model.CharacterClassComponent{Token: tok, Values: []rune(tok.Value)}, true
	case token.At:
		if c.pos+1 >= len(c.tokens) || c.tokens[c.pos+1].Kind != token.Identifier {
			return nil, false
		}
		c.next()
		ident := c.next()
		return &model.IdentifierComponent{Token: tok, Name: ident.Value, IsReference: true}, true
	case token.Identifier:
		c.next()
		return &model.IdentifierComponent{Token: tok, Name: tok.Value}, true
	case token.Pipe:
		c.next()
		return &model.OperatorComponent{Token: tok, Operator: model.BitwiseOr}, true
	case token.Ampersand:
		c.next()
		return &model.OperatorComponent{Token: tok, Operator: model.BitwiseAnd}, true
	}

	return nil, false
}
