package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/grammar/token"
)

func renderProgram(w io.Writer, res *parser.Result) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d definitions", res.Program.Source, len(res.Program.Defs))))

	for _, def := range res.Program.Defs {
		var b strings.Builder

		header := titleStyle.Render(def.DefName()) + " " + kindStyle.Render(defKind(def))
		if td, ok := def.(*model.TokenDefNode); ok && td.HasInheritance {
			header += kindStyle.Render(" : " + td.Inheritance)
		}
		b.WriteString(header)

		for _, rule := range def.RuleList() {
			b.WriteString("\n")
			b.WriteString(ruleLine(rule))
		}
		fmt.Fprintln(w, boxStyle.Render(b.String()))
	}

	renderDiagnostics(w, res.Diagnostics)
}

func renderRule(w io.Writer, defName string, rule *model.RuleDefNode) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(defName) + " " + ruleLine(rule))

	if bin, ok := rule.Declaration.AsBinaryExpression(); ok {
		fmt.Fprintf(&b, "\n  left     %s", bin.Left)
		fmt.Fprintf(&b, "\n  operator %s", operatorStyle.Render(bin.Operator.String()))
		fmt.Fprintf(&b, "\n  right    %s", bin.Right)
	}
	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

func renderTokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		line := fmt.Sprintf("%-18s", t.Kind)
		if t.HasValue() {
			line += fmt.Sprintf(" %q", t.Value)
		}
		fmt.Fprintln(w, line+" "+locationStyle.Render(t.Start.String()))
	}
}

func renderDiagnostics(w io.Writer, diags []parser.Diagnostic) {
	for _, d := range diags {
		style := warningStyle
		if d.Severity == parser.SeverityError {
			style = errorStyle
		}
		fmt.Fprintln(w, style.Render(d.Severity.String())+" "+d.Message+" "+locationStyle.Render(d.Location.String()))
	}
}

func ruleLine(rule *model.RuleDefNode) string {
	return fmt.Sprintf("%s %s %s",
		ruleNameStyle.Render(rule.Name),
		rule.Declaration,
		locationStyle.Render(rule.Token.Start.String()),
	)
}

func defKind(def model.Def) string {
	if _, ok := def.(*model.TokenDefNode); ok {
		return "tokendef"
	}
	return "syntaxdef"
}
