package serializer_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/internal/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const source = `syntaxdef g (
  digit [0-9];
  alpha-or-digit alpha | @digit;
);
tokendef t base ( 'x'; );`

func parse(t *testing.T) *parser.Result {
	t.Helper()
	res, err := parser.Parse(source)
	require.NoError(t, err)
	return res
}

func TestProgramView(t *testing.T) {
	view := serializer.NewProgramView(parse(t).Program)
	require.Len(t, view.Defs, 2)

	g := view.Defs[0]
	assert.Equal(t, "syntaxdef", g.Kind)
	require.Len(t, g.Rules, 2)
	assert.Equal(t, "g", g.Rules[0].Parent)
	assert.Equal(t, "class", g.Rules[0].Components[0].Type)
	assert.Nil(t, g.Rules[0].Binary)

	bin := g.Rules[1].Binary
	require.NotNil(t, bin)
	assert.Equal(t, "binary", bin.Type)
	assert.Equal(t, "|", bin.Operator)
	assert.Equal(t, "alpha", bin.Left.Name)
	assert.True(t, bin.Right.Reference)

	tdef := view.Defs[1]
	assert.Equal(t, "tokendef", tdef.Kind)
	assert.Equal(t, "base", tdef.Inheritance)
	assert.Equal(t, "char", tdef.Rules[0].Components[0].Type)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serializer.Encode(serializer.FormatJSON, serializer.NewProgramView(parse(t).Program), &buf))

	var decoded serializer.ProgramView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, serializer.NewProgramView(parse(t).Program), decoded)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	tokens := serializer.NewTokenViews(parse(t).Tokens)
	require.NoError(t, serializer.Encode(serializer.FormatYAML, tokens, &buf))

	var decoded []serializer.TokenView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, len(tokens))
	assert.Equal(t, "KeywordSyntaxDef", decoded[0].Kind)
	assert.Nil(t, decoded[0].Value)
	require.NotNil(t, decoded[1].Value)
	assert.Equal(t, "g", *decoded[1].Value)
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := serializer.Encode("xml", struct{}{}, io.Discard)
	assert.Error(t, err)
	assert.Equal(t, []string{"json", "yaml"}, serializer.Formats())
}

func TestDiagnosticViews(t *testing.T) {
	res, err := parser.Parse(`; syntaxdef g ( ) ;`)
	require.NoError(t, err)

	views := serializer.NewDiagnosticViews(res.Diagnostics)
	require.Len(t, views, 1)
	assert.Equal(t, "warning", views[0].Severity)
	assert.Equal(t, 1, views[0].Location.Column)
}
