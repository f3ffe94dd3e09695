package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationOrdering(t *testing.T) {
	a := Location{Position: 3, Column: 3, Line: 1}
	b := Location{Position: 7, Column: 1, Line: 2}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, a, Location{Position: 3, Column: 3, Line: 1})
	assert.Equal(t, "[1 @ 2]", b.String())
	assert.Equal(t, Location{Position: 1, Column: 1, Line: 1}, StartLocation)
}

func TestTokenOrdering(t *testing.T) {
	first := New(Semicolon, StartLocation)
	second := New(Comma, StartLocation.Advance(2))

	assert.True(t, first.Before(second))
	assert.False(t, second.Before(first))
	assert.Equal(t, 1, first.Length)
	assert.Equal(t, StartLocation.Advance(1), first.End)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "RBrace", RBrace.String())
	assert.Equal(t, "KeywordTokenDef", KeywordTokenDef.String())
	assert.Equal(t, "Kind(?)", Kind(-1).String())

	for k := Undefined; k <= KeywordTokenDef; k++ {
		assert.NotEmpty(t, k.String(), "kind %d has no name", int(k))
	}
}

func TestPunctuationIsBijective(t *testing.T) {
	seen := make(map[Kind]rune)
	for ch, k := range Punctuation {
		prev, dup := seen[k]
		assert.False(t, dup, "%s mapped from both %q and %q", k, prev, ch)
		seen[k] = ch
	}
}

func TestTokenText(t *testing.T) {
	assert.Equal(t, "abc", Token{Kind: Identifier, Value: "abc"}.Text())
	assert.Equal(t, "Semicolon", Token{Kind: Semicolon}.Text())
	assert.True(t, KeywordOr.IsKeyword())
	assert.False(t, Identifier.IsKeyword())
}
