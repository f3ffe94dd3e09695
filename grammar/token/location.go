package token

import "fmt"

// Location is a one-based position in source text, counted in characters.
type Location struct {
	Position int
	Column   int
	Line     int
}

// StartLocation is the location of the first character of any source
var StartLocation = Location{Position: 1, Column: 1, Line: 1}

// Before reports whether l comes before other in the source
func (l Location) Before(other Location) bool {
	return l.Position < other.Position
}

// After reports whether l comes after other in the source
func (l Location) After(other Location) bool {
	return l.Position > other.Position
}

// Advance returns the location n characters further on the same line
func (l Location) Advance(n int) Location {
	return Location{Position: l.Position + n, Column: l.Column + n, Line: l.Line}
}

func (l Location) String() string {
	return fmt.Sprintf("[%d @ %d]", l.Column, l.Line)
}
