package main

import (
	"fmt"
	"io"
	"os"

	narser "github.com/Nacorpio/Narser"
	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/internal/domain"
	"github.com/Nacorpio/Narser/internal/serializer"
	"github.com/spf13/cobra"
)

const defaultGrammarFile = "example.par"

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a grammar file",
	Long:  `Parse a grammar file and display its definitions. Defaults to example.par.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := grammarPath(args)
		res, err := parseFile(cmd, path)
		if err != nil {
			return err
		}

		logger.Debug("grammar parsed", "file", path, "defs", len(res.Program.Defs), "tokens", len(res.Tokens))

		out := cmd.OutOrStdout()
		if format == "text" {
			renderProgram(out, res)
			return nil
		}
		return encode(out, serializer.NewProgramView(res.Program))
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a grammar file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readSource(grammarPath(args))
		if err != nil {
			return err
		}

		tokens, err := parser.NewLexer(content,
			parser.WithLexerSink(parser.LogSink{Logger: logger}),
			parser.WithIdentifierWhitelist(appCfg.Parser.IdentifierWhitelist),
		).Tokenize()

		out := cmd.OutOrStdout()
		if format == "text" {
			renderTokens(out, tokens)
		} else if encErr := encode(out, serializer.NewTokenViews(tokens)); encErr != nil {
			return encErr
		}
		if err != nil {
			return fmt.Errorf("tokenizing: %w", err)
		}
		return nil
	},
}

var ruleCmd = &cobra.Command{
	Use:   "rule <file> <def> <rule>",
	Short: "Show one rule of a definition",
	Long:  `Parse a grammar file and show a single rule, including its binary expression form when it has one.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, defName, ruleName := args[0], args[1], args[2]

		res, err := parseFile(cmd, path)
		if err != nil {
			return err
		}

		def, ok := res.Program.Lookup(defName)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, defName)
		}
		rule, ok := def.Rule(ruleName)
		if !ok {
			return fmt.Errorf("%w: %s in %s", domain.ErrRuleNotFound, ruleName, defName)
		}

		out := cmd.OutOrStdout()
		if format == "text" {
			renderRule(out, def.DefName(), rule)
			return nil
		}
		return encode(out, serializer.NewRuleView(res.Program, rule))
	},
}

func grammarPath(args []string) string {
	if len(args) == 0 {
		return defaultGrammarFile
	}
	return args[0]
}

func readSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > appCfg.Parser.MaxSourceBytes {
		return "", fmt.Errorf("%s: %w", path, domain.ErrSourceTooLarge)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%s: %w", path, domain.ErrEmptySource)
	}
	return string(content), nil
}

func parseFile(cmd *cobra.Command, path string) (*parser.Result, error) {
	content, err := readSource(path)
	if err != nil {
		return nil, err
	}

	cfg := narser.NewConfig(cmd.Context())
	cfg.SetIdentifierWhitelist(appCfg.Parser.IdentifierWhitelist)
	cfg.SetLogger(logger)

	res, err := cfg.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	res.Program.Source = path
	return res, nil
}

func encode(w io.Writer, v interface{}) error {
	return serializer.Encode(serializer.Format(format), v, w)
}
