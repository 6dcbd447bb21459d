package errors

import (
	"fmt"

	"github.com/pontaoski/pyproto/types"
	"github.com/ztrue/tracerr"
)

// Lexical is raised when no token rule matches at the cursor.
type Lexical struct {
	Char     rune
	Location types.Span
}

func (e Lexical) Error() string {
	return fmt.Sprintf("unrecognized character %q at offset %d. %s", e.Char, e.Location.From.Offset, e.Location)
}

type UnterminatedString struct {
	Location types.Span
}

func (e UnterminatedString) Error() string {
	return fmt.Sprintf("unterminated string starting at offset %d. %s", e.Location.From.Offset, e.Location)
}

type ExpectedKindGotKind struct {
	Production string
	Expected   types.TokenKind
	Got        types.TokenKind
	Location   types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("%s: got a %s, expected a %s at offset %d. %s", e.Production, e.Got, e.Expected, e.Location.From.Offset, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Production string
	Expected   []types.TokenKind
	Got        types.TokenKind
	Location   types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("%s: got a %s, expected one of %s at offset %d. %s", e.Production, e.Got, e.Expected, e.Location.From.Offset, e.Location)
}

// MalformedExpression is raised when operands and operators of an
// expression do not alternate. Got is the token where the expression
// went wrong, which is the terminator when input ran out.
type MalformedExpression struct {
	Production string
	Operands   int
	Operators  int
	Got        types.TokenKind
	Location   types.Span
}

func (e MalformedExpression) Error() string {
	return fmt.Sprintf("%s: malformed expression with %d operands and %d operators near %s at offset %d. %s",
		e.Production, e.Operands, e.Operators, e.Got, e.Location.From.Offset, e.Location)
}

type InvalidLookahead struct {
	K int
}

func (e InvalidLookahead) Error() string {
	return fmt.Sprintf("lookahead depth %d is too small, need at least 2", e.K)
}

type LookaheadOutOfRange struct {
	Index int
	K     int
}

func (e LookaheadOutOfRange) Error() string {
	return fmt.Sprintf("lookahead index %d out of range for depth %d", e.Index, e.K)
}

// Cause strips the stack trace wrapper added at the lexer and parser
// boundaries and returns the typed failure underneath.
func Cause(err error) error {
	if err == nil {
		return nil
	}
	return tracerr.Unwrap(err)
}

// Offset returns the source offset a failure points at, or -1.
func Offset(err error) int {
	switch e := Cause(err).(type) {
	case Lexical:
		return e.Location.From.Offset
	case UnterminatedString:
		return e.Location.From.Offset
	case ExpectedKindGotKind:
		return e.Location.From.Offset
	case ExpectedOneOfKindGotKind:
		return e.Location.From.Offset
	case MalformedExpression:
		return e.Location.From.Offset
	}
	return -1
}

// IsLexical reports whether the failure came from the lexer.
func IsLexical(err error) bool {
	switch Cause(err).(type) {
	case Lexical, UnterminatedString:
		return true
	}
	return false
}

// IsParse reports whether the failure came from a grammar production.
func IsParse(err error) bool {
	switch Cause(err).(type) {
	case ExpectedKindGotKind, ExpectedOneOfKindGotKind, MalformedExpression:
		return true
	}
	return false
}
