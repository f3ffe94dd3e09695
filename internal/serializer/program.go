package serializer

import (
	"fmt"

	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/grammar/token"
)

type LocationView struct {
	Position int `json:"position" yaml:"position"`
	Column   int `json:"column" yaml:"column"`
	Line     int `json:"line" yaml:"line"`
}

type TokenView struct {
	Kind   string       `json:"kind" yaml:"kind"`
	Value  *string      `json:"value,omitempty" yaml:"value,omitempty"`
	Start  LocationView `json:"start" yaml:"start"`
	End    LocationView `json:"end" yaml:"end"`
	Length int          `json:"length" yaml:"length"`
}

type ComponentView struct {
	Type      string         `json:"type" yaml:"type"`
	Value     string         `json:"value,omitempty" yaml:"value,omitempty"`
	Escaped   bool           `json:"escaped,omitempty" yaml:"escaped,omitempty"`
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Reference bool           `json:"reference,omitempty" yaml:"reference,omitempty"`
	Operator  string         `json:"operator,omitempty" yaml:"operator,omitempty"`
	Left      *ComponentView `json:"left,omitempty" yaml:"left,omitempty"`
	Right     *ComponentView `json:"right,omitempty" yaml:"right,omitempty"`
	Start     LocationView   `json:"start" yaml:"start"`
}

type RuleView struct {
	Name       string          `json:"name" yaml:"name"`
	Parent     string          `json:"parent,omitempty" yaml:"parent,omitempty"`
	Start      LocationView    `json:"start" yaml:"start"`
	Components []ComponentView `json:"components" yaml:"components"`
	Binary     *ComponentView  `json:"binary,omitempty" yaml:"binary,omitempty"`
}

type DefView struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Name        string       `json:"name" yaml:"name"`
	Inheritance string       `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
	Start       LocationView `json:"start" yaml:"start"`
	Rules       []RuleView   `json:"rules" yaml:"rules"`
}

type ProgramView struct {
	Source string    `json:"source,omitempty" yaml:"source,omitempty"`
	Defs   []DefView `json:"defs" yaml:"defs"`
}

type DiagnosticView struct {
	Severity string       `json:"severity" yaml:"severity"`
	Message  string       `json:"message" yaml:"message"`
	Location LocationView `json:"location" yaml:"location"`
}

func NewLocationView(l token.Location) LocationView {
	return LocationView{Position: l.Position, Column: l.Column, Line: l.Line}
}

func NewTokenViews(tokens []token.Token) []TokenView {
	out := make([]TokenView, len(tokens))
	for i, t := range tokens {
		out[i] = TokenView{
			Kind:   t.Kind.String(),
			Start:  NewLocationView(t.Start),
			End:    NewLocationView(t.End),
			Length: t.Length,
		}
		if t.HasValue() {
			v := t.Value
			out[i].Value = &v
		}
	}
	return out
}

// NewComponentView converts a component, recursing into binary expressions
func NewComponentView(c model.Component) ComponentView {
	v := ComponentView{Start: NewLocationView(c.Tok().Start)}

	switch c := c.(type) {
	case *model.StringLiteralComponent:
		v.Type = "string"
		v.Value = c.Value
	case *model.CharLiteralComponent:
		v.Type = "char"
		v.Value = c.Value
		v.Escaped = c.Escaped
	case *model.CharacterClassComponent:
		v.Type = "class"
		v.Value = string(c.Values)
	case *model.IdentifierComponent:
		v.Type = "identifier"
		v.Name = c.Name
		v.Reference = c.IsReference
	case *model.OperatorComponent:
		v.Type = "operator"
		v.Operator = c.Operator.String()
	case *model.BinaryExpressionComponent:
		left, right := NewComponentView(c.Left), NewComponentView(c.Right)
		v.Type = "binary"
		v.Operator = c.Operator.Operator.String()
		v.Left = &left
		v.Right = &right
	default:
		panic(fmt.Sprintf("serializer: unhandled component %T", c))
	}

	return v
}

// NewRuleView converts a rule; program resolves the parent name and may be nil
func NewRuleView(program *model.Program, rule *model.RuleDefNode) RuleView {
	v := RuleView{
		Name:       rule.Name,
		Start:      NewLocationView(rule.Token.Start),
		Components: make([]ComponentView, 0, rule.Declaration.Len()),
	}
	if program != nil {
		if parent, ok := program.ParentOf(rule); ok {
			v.Parent = parent.DefName()
		}
	}
	for _, c := range rule.Declaration.Components() {
		v.Components = append(v.Components, NewComponentView(c))
	}
	if bin, ok := rule.Declaration.AsBinaryExpression(); ok {
		b := NewComponentView(bin)
		v.Binary = &b
	}
	return v
}

func NewProgramView(program *model.Program) ProgramView {
	v := ProgramView{Source: program.Source, Defs: make([]DefView, 0, len(program.Defs))}

	for _, def := range program.Defs {
		d := DefView{
			Name:  def.DefName(),
			Start: NewLocationView(def.Tok().Start),
			Rules: make([]RuleView, 0, len(def.RuleList())),
		}
		switch def := def.(type) {
		case *model.SyntaxDefNode:
			d.Kind = "syntaxdef"
		case *model.TokenDefNode:
			d.Kind = "tokendef"
			d.Inheritance = def.Inheritance
		}
		for _, rule := range def.RuleList() {
			d.Rules = append(d.Rules, NewRuleView(program, rule))
		}
		v.Defs = append(v.Defs, d)
	}

	return v
}

func NewDiagnosticViews(diags []parser.Diagnostic) []DiagnosticView {
	out := make([]DiagnosticView, len(diags))
	for i, d := range diags {
		out[i] = DiagnosticView{
			Severity: d.Severity.String(),
			Message:  d.Message,
			Location: NewLocationView(d.Location),
		}
	}
	return out
}
