package model

import "strings"

// Declaration is the ordered component sequence of one rule body
type Declaration struct {
	components []Component
}

// NewDeclaration creates a declaration over a copy of components
func NewDeclaration(components []Component) Declaration {
	c := make([]Component, len(components))
	copy(c, components)
	return Declaration{components: c}
}

// Len returns the number of components
func (d Declaration) Len() int {
	return len(d.components)
}

// At returns the i-th component
func (d Declaration) At(i int) Component {
	return d.components[i]
}

// Components returns a copy of the component sequence
func (d Declaration) Components() []Component {
	c := make([]Component, len(d.components))
	copy(c, d.components)
	return c
}

// IsBinary reports whether the declaration has the left/operator/right shape
func (d Declaration) IsBinary() bool {
	if len(d.components) != 3 {
		return false
	}
	_, ok := d.components[1].(*OperatorComponent)
	return ok
}

// AsBinaryExpression builds a binary expression from a three-component
// declaration whose middle component is an operator. The expression is
// rebuilt on every call.
func (d Declaration) AsBinaryExpression() (*BinaryExpressionComponent, bool) {
	if len(d.components) != 3 {
		return nil, false
	}
	left, op, right := d.components[0], d.components[1], d.components[2]
	operator, ok := op.(*OperatorComponent)
	if !ok {
		return nil, false
	}
	return &BinaryExpressionComponent{
		Token:    left.Tok(),
		Left:     left,
		Operator: operator,
		Right:    right,
	}, true
}

func (d Declaration) String() string {
	parts := make([]string, len(d.components))
	for i, c := range d.components {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
