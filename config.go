package narser

import (
	"context"
	"log/slog"

	"github.com/Nacorpio/Narser/grammar/parser"
)

// Config holds the settings used to run the grammar front end.
type Config struct {
	// ctx is the context for all operations.
	ctx context.Context

	// logger receives diagnostics; nil disables logging.
	logger *slog.Logger

	// IdentifierWhitelist holds the non-letter characters allowed inside
	// identifiers.
	// Default is "-_".
	IdentifierWhitelist string
}

func NewConfig(ctx context.Context) *Config {
	return &Config{
		ctx:                 ctx,
		IdentifierWhitelist: parser.DefaultIdentifierWhitelist,
	}
}

// SetIdentifierWhitelist sets the non-letter identifier characters.
func (c *Config) SetIdentifierWhitelist(chars string) {
	c.IdentifierWhitelist = chars
}

// SetLogger sets the logger.
func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Parse runs the front end over source.
func (c *Config) Parse(source string) (*parser.Result, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return parser.Parse(source, c.options()...)
}

// ParseFile runs the front end over the file at path.
func (c *Config) ParseFile(path string) (*parser.Result, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return parser.ParseFile(path, c.options()...)
}

func (c *Config) options() []parser.Option {
	opts := []parser.Option{parser.WithWhitelist(c.IdentifierWhitelist)}
	if c.logger != nil {
		opts = append(opts, parser.WithSink(parser.LogSink{Logger: c.logger}))
	}
	return opts
}
