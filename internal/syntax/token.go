// Package syntax implements lexical and syntactic analysis for the minic scripting language.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	EndOfInput Kind = iota // end of input

	// Literals
	Number     // 12, 3.5
	String     // "hello"
	Identifier // foo, _bar
	Keyword    // if, then, else, while, do
	Boolean    // true, false (literal value "1" or "0")
	Char       // 'c'

	// Operators
	Assign // =

	// Arithmetic operators
	Plus     // +
	Minus    // -
	Multiply // *
	Divide   // /

	// Comparison operators
	LessThan     // <
	GreaterThan  // >
	LessEqual    // <=
	GreaterEqual // >=

	// Delimiters
	LParen    // (
	RParen    // )
	Semicolon // ;

	kindCount
)

// kindNames maps token kinds to their display name.
var kindNames = [...]string{
	EndOfInput: "EOF",

	Number:     "NUMBER",
	String:     "STRING",
	Identifier: "IDENTIFIER",
	Keyword:    "KEYWORD",
	Boolean:    "BOOLEAN",
	Char:       "CHAR",

	Assign: "ASSIGN",

	Plus:     "PLUS",
	Minus:    "MINUS",
	Multiply: "MULTIPLY",
	Divide:   "DIVIDE",

	LessThan:     "LT",
	GreaterThan:  "GT",
	LessEqual:    "LE",
	GreaterEqual: "GE",

	LParen:    "LPAREN",
	RParen:    "RPAREN",
	Semicolon: "SEMICOLON",
}

// opText maps operator and delimiter kinds to their source text.
var opText = [...]string{
	Assign:       "=",
	Plus:         "+",
	Minus:        "-",
	Multiply:     "*",
	Divide:       "/",
	LessThan:     "<",
	GreaterThan:  ">",
	LessEqual:    "<=",
	GreaterEqual: ">=",
	LParen:       "(",
	RParen:       ")",
	Semicolon:    ";",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Text returns the source text of an operator or delimiter kind.
// Returns "" for literal and special kinds.
func (k Kind) Text() string {
	if int(k) < len(opText) {
		return opText[k]
	}
	return ""
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= Number && k <= Char
}

// IsBinaryOp reports whether k is one of the eight binary operators.
func (k Kind) IsBinaryOp() bool {
	return k >= Plus && k <= GreaterEqual
}

// IsComparison reports whether k is a comparison operator.
func (k Kind) IsComparison() bool {
	return k >= LessThan && k <= GreaterEqual
}

// Token is a single lexical unit. Tokens are immutable once produced.
type Token struct {
	Kind Kind   // token kind
	Lit  string // literal value; operator text for operators
	Pos  Pos    // position of the first character
}

// String returns a display form such as Token(NUMBER, 42).
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s)", t.Kind, t.Lit)
}

// Is reports whether t has kind k and, for keywords, the given literal.
func (t Token) Is(k Kind, lit string) bool {
	return t.Kind == k && (lit == "" || t.Lit == lit)
}

// keywords lists the reserved words.
// Note: true and false are not keywords; they are scanned as Boolean literals.
var keywords = map[string]bool{
	"if":    true,
	"then":  true,
	"else":  true,
	"while": true,
	"do":    true,
}

// LookupKeyword returns Keyword if ident is a reserved word, otherwise Identifier.
func LookupKeyword(ident string) Kind {
	if keywords[ident] {
		return Keyword
	}
	return Identifier
}
