package model

import "github.com/Nacorpio/Narser/grammar/token"

// NodeID indexes a definition inside a Program
type NodeID int

// NoParent marks a node without a parent
const NoParent NodeID = -1

// Node is any syntax node
type Node interface {
	Tok() token.Token
	ParentID() NodeID
	node()
}

// Def is a top-level definition: *SyntaxDefNode or *TokenDefNode
type Def interface {
	Node
	DefName() string
	RuleList() []*RuleDefNode
	Rule(name string) (*RuleDefNode, bool)
	def()
}

// SyntaxDefNode represents a syntaxdef block
type SyntaxDefNode struct {
	Token token.Token
	Name  string
	Rules []*RuleDefNode
}

// TokenDefNode represents a tokendef block
type TokenDefNode struct {
	Token          token.Token
	Name           string
	Inheritance    string
	HasInheritance bool
	Rules          []*RuleDefNode
}

// RuleDefNode represents one named rule inside a definition
type RuleDefNode struct {
	Token       token.Token
	Name        string
	Declaration Declaration
	Parent      NodeID
}

// NewSyntaxDef creates a syntax definition that will live at index id and
// points every rule at it.
func NewSyntaxDef(id NodeID, tok token.Token, name string, rules []*RuleDefNode) *SyntaxDefNode {
	adopt(id, rules)
	return &SyntaxDefNode{Token: tok, Name: name, Rules: rules}
}

// NewTokenDef creates a token definition that will live at index id and
// points every rule at it. An empty inheritance means none.
func NewTokenDef(id NodeID, tok token.Token, name, inheritance string, rules []*RuleDefNode) *TokenDefNode {
	adopt(id, rules)
	return &TokenDefNode{
		Token:          tok,
		Name:           name,
		Inheritance:    inheritance,
		HasInheritance: inheritance != "",
		Rules:          rules,
	}
}

func adopt(id NodeID, rules []*RuleDefNode) {
	for _, r := range rules {
		r.Parent = id
	}
}

func (n *SyntaxDefNode) Tok() token.Token { return n.Token }
func (n *TokenDefNode) Tok() token.Token  { return n.Token }
func (n *RuleDefNode) Tok() token.Token   { return n.Token }

func (n *SyntaxDefNode) ParentID() NodeID { return NoParent }
func (n *TokenDefNode) ParentID() NodeID  { return NoParent }
func (n *RuleDefNode) ParentID() NodeID   { return n.Parent }

func (*SyntaxDefNode) node() {}
func (*TokenDefNode) node()  {}
func (*RuleDefNode) node()   {}

func (*SyntaxDefNode) def() {}
func (*TokenDefNode) def()  {}

func (n *SyntaxDefNode) DefName() string { return n.Name }
func (n *TokenDefNode) DefName() string  { return n.Name }

func (n *SyntaxDefNode) RuleList() []*RuleDefNode { return n.Rules }
func (n *TokenDefNode) RuleList() []*RuleDefNode  { return n.Rules }

// Rule returns the first rule with the given name
func (n *SyntaxDefNode) Rule(name string) (*RuleDefNode, bool) {
	return findRule(n.Rules, name)
}

// Rule returns the first rule with the given name
func (n *TokenDefNode) Rule(name string) (*RuleDefNode, bool) {
	return findRule(n.Rules, name)
}

func findRule(rules []*RuleDefNode, name string) (*RuleDefNode, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// Program is the ordered sequence of top-level definitions
type Program struct {
	Defs   []Def
	Source string // Source file path, if any
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{}
}

// NextID returns the id the next added definition will get
func (p *Program) NextID() NodeID {
	return NodeID(len(p.Defs))
}

// AddDef appends a definition
func (p *Program) AddDef(d Def) {
	p.Defs = append(p.Defs, d)
}

// Def returns the definition at id
func (p *Program) Def(id NodeID) (Def, bool) {
	if id < 0 || int(id) >= len(p.Defs) {
		return nil, false
	}
	return p.Defs[id], true
}

// ParentOf resolves the definition owning a rule
func (p *Program) ParentOf(rule *RuleDefNode) (Def, bool) {
	return p.Def(rule.Parent)
}

// SyntaxDefs returns the syntax definitions in source order
func (p *Program) SyntaxDefs() []*SyntaxDefNode {
	var out []*SyntaxDefNode
	for _, d := range p.Defs {
		if s, ok := d.(*SyntaxDefNode); ok {
			out = append(out, s)
		}
	}
	return out
}

// TokenDefs returns the token definitions in source order
func (p *Program) TokenDefs() []*TokenDefNode {
	var out []*TokenDefNode
	for _, d := range p.Defs {
		if t, ok := d.(*TokenDefNode); ok {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the first definition with the given name
func (p *Program) Lookup(name string) (Def, bool) {
	for _, d := range p.Defs {
		if d.DefName() == name {
			return d, true
		}
	}
	return nil, false
}

// FindRule finds a rule by definition and rule name
func (p *Program) FindRule(def, rule string) (*RuleDefNode, bool) {
	d, ok := p.Lookup(def)
	if !ok {
		return nil, false
	}
	return d.Rule(rule)
}
