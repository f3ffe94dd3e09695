// File: grammar/token/token.go
package token

// Token represents a lexical token
type Token struct {
	Kind   Kind
	Value  string
	Start  Location
	End    Location
	Length int
}

// Kind represents the kind of a token
type Kind int

// Token kinds
const (
	Undefined Kind = iota

	// Punctuation
	Dot
	Comma
	Colon
	Semicolon
	At
	Exclamation
	Pound
	Euro
	Dollar
	Ampersand
	NumberSign
	DoubleQuote
	SingleQuote

	// Brackets. The names are inverted relative to the characters:
	// '(' yields RBrace and ')' yields LBrace, likewise for [] and {}.
	RBrace
	LBrace
	RCurlyBrace
	LCurlyBrace
	RSquareBrace
	LSquareBrace

	Slash
	Backslash
	Plus
	Hyphen
	Asterisk
	Percent
	Equals
	QuestionMark
	Caret
	SectionSign
	GreaterThan
	LessThan
	Tilde
	CurrencySign
	Pipe
	Underscore
	GraveAccent
	DiacriticalMark

	// Identifiers and literals
	Identifier
	StringLiteral
	CharLiteral
	CharacterClass

	// Keywords
	KeywordAnd
	KeywordOr
	KeywordSyntaxDef
	KeywordTokenDef
)

var kindNames = [...]string{
	Undefined:        "Undefined",
	Dot:              "Dot",
	Comma:            "Comma",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	At:               "At",
	Exclamation:      "Exclamation",
	Pound:            "Pound",
	Euro:             "Euro",
	Dollar:           "Dollar",
	Ampersand:        "Ampersand",
	NumberSign:       "NumberSign",
	DoubleQuote:      "DoubleQuote",
	SingleQuote:      "SingleQuote",
	RBrace:           "RBrace",
	LBrace:           "LBrace",
	RCurlyBrace:      "RCurlyBrace",
	LCurlyBrace:      "LCurlyBrace",
	RSquareBrace:     "RSquareBrace",
	LSquareBrace:     "LSquareBrace",
	Slash:            "Slash",
	Backslash:        "Backslash",
	Plus:             "Plus",
	Hyphen:           "Hyphen",
	Asterisk:         "Asterisk",
	Percent:          "Percent",
	Equals:           "Equals",
	QuestionMark:     "QuestionMark",
	Caret:            "Caret",
	SectionSign:      "SectionSign",
	GreaterThan:      "GreaterThan",
	LessThan:         "LessThan",
	Tilde:            "Tilde",
	CurrencySign:     "CurrencySign",
	Pipe:             "Pipe",
	Underscore:       "Underscore",
	GraveAccent:      "GraveAccent",
	DiacriticalMark:  "DiacriticalMark",
	Identifier:       "Identifier",
	StringLiteral:    "StringLiteral",
	CharLiteral:      "CharLiteral",
	CharacterClass:   "CharacterClass",
	KeywordAnd:       "KeywordAnd",
	KeywordOr:        "KeywordOr",
	KeywordSyntaxDef: "KeywordSyntaxDef",
	KeywordTokenDef:  "KeywordTokenDef",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Punctuation maps single characters to token kinds
var Punctuation = map[rune]Kind{
	'.':  Dot,
	',':  Comma,
	':':  Colon,
	';':  Semicolon,
	'@':  At,
	'!':  Exclamation,
	'£':  Pound,
	'€':  Euro,
	'$':  Dollar,
	'&':  Ampersand,
	'#':  NumberSign,
	'"':  DoubleQuote,
	'\'': SingleQuote,
	'(':  RBrace,
	')':  LBrace,
	'{':  RCurlyBrace,
	'}':  LCurlyBrace,
	'[':  RSquareBrace,
	']':  LSquareBrace,
	'/':  Slash,
	'\\': Backslash,
	'+':  Plus,
	'-':  Hyphen,
	'*':  Asterisk,
	'%':  Percent,
	'=':  Equals,
	'?':  QuestionMark,
	'^':  Caret,
	'§':  SectionSign,
	'>':  GreaterThan,
	'<':  LessThan,
	'~':  Tilde,
	'¤':  CurrencySign,
	'|':  Pipe,
	'_':  Underscore,
	'`':  GraveAccent,
	'´':  DiacriticalMark,
}

// Keywords maps lower-cased keyword strings to token kinds
var Keywords = map[string]Kind{
	"and":       KeywordAnd,
	"or":        KeywordOr,
	"syntaxdef": KeywordSyntaxDef,
	"tokendef":  KeywordTokenDef,
}

// PunctuationKind returns the kind mapped to a single character
func PunctuationKind(ch rune) (Kind, bool) {
	k, ok := Punctuation[ch]
	return k, ok
}

// HasValue reports whether tokens of this kind carry a value
func (k Kind) HasValue() bool {
	switch k {
	case Identifier, StringLiteral, CharLiteral, CharacterClass:
		return true
	}
	return false
}

// IsKeyword reports whether the kind is one of the keyword kinds
func (k Kind) IsKeyword() bool {
	return k >= KeywordAnd && k <= KeywordTokenDef
}

// New creates a single-character token without a value
func New(kind Kind, start Location) Token {
	return Token{
		Kind:   kind,
		Start:  start,
		End:    start.Advance(1),
		Length: 1,
	}
}

// HasValue reports whether the token carries a value
func (t Token) HasValue() bool {
	return t.Kind.HasValue()
}

// Text returns the token's value, or the kind name for tokens without one
func (t Token) Text() string {
	if t.HasValue() {
		return t.Value
	}
	return t.Kind.String()
}

// Before reports whether t starts before other
func (t Token) Before(other Token) bool {
	return t.Start.Before(other.Start)
}

func (t Token) String() string {
	if t.HasValue() {
		return t.Kind.String() + "(" + t.Value + ") " + t.Start.String()
	}
	return t.Kind.String() + " " + t.Start.String()
}
