package parser_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/grammar/token"
	"github.com/Nacorpio/Narser/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLexerReportsToSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockSink(ctrl)

	var got parser.Diagnostic
	sink.EXPECT().
		Report(gomock.Any()).
		Do(func(d parser.Diagnostic) { got = d }).
		Times(1)

	l := parser.NewLexer(`a 'bc'd'`, parser.WithLexerSink(sink))
	_, err := l.Tokenize()
	require.NoError(t, err)

	assert.Equal(t, parser.SeverityError, got.Severity)
	assert.Equal(t, token.Location{Position: 3, Column: 3, Line: 1}, got.Location)
	assert.Equal(t, []parser.Diagnostic{got}, l.Diagnostics())
}

func TestParseForwardsAllDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Report(gomock.Cond(func(d any) bool {
			return d.(parser.Diagnostic).Severity == parser.SeverityError
		})),
		// SingleQuote, Identifier and CharLiteral are skipped at top level
		sink.EXPECT().Report(gomock.Cond(func(d any) bool {
			return d.(parser.Diagnostic).Severity == parser.SeverityWarning
		})).Times(3),
	)

	res, err := parser.Parse(`'xy'z' syntaxdef g ( "x"; ) ;`, parser.WithSink(sink))
	require.NoError(t, err)
	require.NotNil(t, res.Program)
	assert.Len(t, res.Program.Defs, 1)
	assert.Len(t, res.Diagnostics, 4)
}

func TestParseReturnsLexError(t *testing.T) {
	res, err := parser.Parse(`syntaxdef g ( "x ) ;`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnterminatedLiteral))
	require.NotNil(t, res)
	assert.Nil(t, res.Program)
	assert.Len(t, res.Tokens, 3)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.par")
	require.NoError(t, os.WriteFile(path, []byte("syntaxdef g (\n  digit [0-9];\n);\n"), 0o644))

	res, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, res.Program.Source)

	rule, ok := res.Program.FindRule("g", "digit")
	require.True(t, ok)
	assert.Equal(t, 2, rule.Token.Start.Line)

	_, err = parser.ParseFile(filepath.Join(t.TempDir(), "missing.par"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	parser.LogSink{Logger: logger}.Report(parser.Diagnostic{
		Severity: parser.SeverityError,
		Location: token.Location{Position: 7, Column: 2, Line: 3},
		Message:  "bad literal",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "bad literal", entry["msg"])
	assert.Equal(t, float64(3), entry["line"])
	assert.Equal(t, float64(2), entry["column"])
}
