package types

import (
	"fmt"
)

type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	EOL

	NUMBER
	STRING
	SYMBOL
	BOOL

	COMMA
	LPAREN
	RPAREN

	ADD
	MINUS
	MUL
	DIV
	EQUAL

	VAR
)

var kindNames = map[TokenKind]string{
	EOF:    "EOF",
	EOL:    "EOL",
	NUMBER: "NUMBER",
	STRING: "STRING",
	SYMBOL: "SYMBOL",
	BOOL:   "BOOL",
	COMMA:  "COMMA",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	ADD:    "ADD",
	MINUS:  "MINUS",
	MUL:    "MUL",
	DIV:    "DIV",
	EQUAL:  "EQUAL",
	VAR:    "VAR",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Priority is the binding power of an operator kind, higher binds tighter.
// Non-operator kinds have priority 0.
func (t TokenKind) Priority() int {
	switch t {
	case EQUAL:
		return 1
	case ADD, MINUS:
		return 2
	case MUL, DIV:
		return 3
	}
	return 0
}

// IsOperator reports whether the kind takes part in expression folding.
// EQUAL is excluded, it separates assignments.
func (t TokenKind) IsOperator() bool {
	switch t {
	case ADD, MINUS, MUL, DIV:
		return true
	}
	return false
}

// IsLiteral reports whether a token of this kind can be an AST leaf.
func (t TokenKind) IsLiteral() bool {
	switch t {
	case NUMBER, STRING, SYMBOL, BOOL:
		return true
	}
	return false
}

// IsTerminator reports whether the kind ends a statement.
func (t TokenKind) IsTerminator() bool {
	return t == EOL || t == EOF
}

var spellings = map[TokenKind]string{
	COMMA:  ",",
	LPAREN: "(",
	RPAREN: ")",
	ADD:    "+",
	MINUS:  "-",
	MUL:    "*",
	DIV:    "/",
	EQUAL:  "=",
	VAR:    "var",
	EOL:    "\n",
}

// Spelling is the fixed source text of a self-describing kind.
func (t TokenKind) Spelling() string {
	return spellings[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is produced once by the lexer and never mutated.
// Text is only set for literal kinds.
type Token struct {
	Kind     TokenKind
	Text     string
	Location Span
}

func (t Token) Offset() int {
	return t.Location.From.Offset
}

// Literal returns the source text the token was scanned from.
func (t Token) Literal() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.Spelling()
}

func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s@%d", t.Kind, t.Offset())
	}
	return fmt.Sprintf("%s %q@%d", t.Kind, t.Text, t.Offset())
}
