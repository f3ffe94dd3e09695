package narser

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParse(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig(context.Background())
	cfg.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	res, err := cfg.Parse(`; syntaxdef g ( "x"; ) ;`)
	require.NoError(t, err)
	assert.Len(t, res.Program.Defs, 1)
	assert.Len(t, res.Diagnostics, 1)
	assert.Contains(t, buf.String(), "unexpected Semicolon at top level")
}

func TestConfigWhitelist(t *testing.T) {
	cfg := NewConfig(context.Background())
	cfg.SetIdentifierWhitelist("")

	res, err := cfg.Parse(`a-b`)
	require.NoError(t, err)
	assert.Len(t, res.Tokens, 3)
}

func TestConfigParseFileHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConfig(ctx).ParseFile("example.par")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigParseHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewConfig(ctx).Parse(`syntaxdef g ( "x"; ) ;`)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
