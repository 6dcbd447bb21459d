package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/pontaoski/pyproto/errors"
	"github.com/pontaoski/pyproto/types"
	"github.com/ztrue/tracerr"
)

// Lexer turns an in-memory source string into tokens, one per call,
// starting at its cursor. It is not safe for concurrent use.
type Lexer struct {
	source        string
	filename      string
	cursor        int
	line          int
	column        int
	greedyStrings bool
}

type Option func(*Lexer)

// GreedyStrings makes a string literal run to the last quote on its line
// instead of the first one.
func GreedyStrings() Option {
	return func(l *Lexer) {
		l.greedyStrings = true
	}
}

func NewLexer(source string, filename string, opts ...Option) *Lexer {
	l := &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var punctuation = map[byte]types.TokenKind{
	',': types.COMMA,
	'(': types.LPAREN,
	')': types.RPAREN,
	'+': types.ADD,
	'-': types.MINUS,
	'=': types.EQUAL,
	'*': types.MUL,
	'/': types.DIV,
}

var keywords = map[string]types.TokenKind{
	"true":  types.BOOL,
	"false": types.BOOL,
	"var":   types.VAR,
}

// Offset is the byte offset the next scan starts from.
func (l *Lexer) Offset() int {
	return l.cursor
}

func (l *Lexer) Source() string {
	return l.source
}

// Seek moves the cursor to offset, clamped to the source bounds, so that
// scanning restarts there.
func (l *Lexer) Seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.source) {
		offset = len(l.source)
	}

	l.cursor = 0
	l.line = 1
	l.column = 1
	l.advance(offset)
}

func (l *Lexer) pos() types.Position {
	return types.Position{
		Filename: l.filename,
		Offset:   l.cursor,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.cursor < len(l.source); i++ {
		if l.source[l.cursor] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.cursor++
	}
}

func (l *Lexer) peek(n int) byte {
	if l.cursor+n >= len(l.source) {
		return 0
	}
	return l.source[l.cursor+n]
}

// spanFrom closes a span at the last consumed byte. Only valid for
// tokens that do not contain a newline.
func (l *Lexer) spanFrom(from types.Position) types.Span {
	to := l.pos()
	to.Offset--
	to.Column--
	return types.Span{From: from, To: to}
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func firstChar(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func otherChar(r byte) bool {
	return firstChar(r) || isDigit(r)
}

func (l *Lexer) skipSpaces() {
	for l.cursor < len(l.source) && l.source[l.cursor] == ' ' {
		l.advance(1)
	}
}

func (l *Lexer) lexNumber() types.Token {
	from := l.pos()
	start := l.cursor

	for isDigit(l.peek(0)) {
		l.advance(1)
	}
	if l.peek(0) == '.' {
		l.advance(1)
		for isDigit(l.peek(0)) {
			l.advance(1)
		}
	}

	return types.Token{
		Kind:     types.NUMBER,
		Text:     l.source[start:l.cursor],
		Location: l.spanFrom(from),
	}
}

func (l *Lexer) lexString() types.Token {
	from := l.pos()
	start := l.cursor

	rest := l.source[start+1:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	var end int
	if l.greedyStrings {
		end = strings.LastIndexByte(rest, '"')
	} else {
		end = strings.IndexByte(rest, '"')
	}
	if end < 0 {
		panic(errors.UnterminatedString{
			Location: types.SingleCharSpan(from),
		})
	}

	// opening quote, body, closing quote
	l.advance(end + 2)

	return types.Token{
		Kind:     types.STRING,
		Text:     l.source[start:l.cursor],
		Location: l.spanFrom(from),
	}
}

func (l *Lexer) lexIdent() types.Token {
	from := l.pos()
	start := l.cursor

	for otherChar(l.peek(0)) {
		l.advance(1)
	}

	lit := l.source[start:l.cursor]
	if kind, ok := keywords[lit]; ok {
		if kind == types.VAR {
			return types.Token{Kind: kind, Location: l.spanFrom(from)}
		}
		return types.Token{Kind: kind, Text: lit, Location: l.spanFrom(from)}
	}

	return types.Token{
		Kind:     types.SYMBOL,
		Text:     lit,
		Location: l.spanFrom(from),
	}
}

// Lex scans the next token and advances past it. Once the source is
// exhausted every call returns EOF. A character no rule accepts panics
// with a typed error and leaves the cursor on it.
func (l *Lexer) Lex() types.Token {
	l.skipSpaces()

	from := l.pos()
	if l.cursor >= len(l.source) {
		return types.Token{Kind: types.EOF, Location: types.SingleCharSpan(from)}
	}

	r := l.source[l.cursor]
	switch {
	case r == '\n':
		l.advance(1)
		return types.Token{Kind: types.EOL, Location: types.SingleCharSpan(from)}
	case isDigit(r), r == '.' && isDigit(l.peek(1)):
		return l.lexNumber()
	case r == '"':
		return l.lexString()
	case firstChar(r):
		return l.lexIdent()
	}

	if kind, ok := punctuation[r]; ok {
		l.advance(1)
		return types.Token{Kind: kind, Location: types.SingleCharSpan(from)}
	}

	ch, _ := utf8.DecodeRuneInString(l.source[l.cursor:])
	panic(errors.Lexical{
		Char:     ch,
		Location: types.SingleCharSpan(from),
	})
}

// Next is Lex with the typed failure returned instead of raised.
func (l *Lexer) Next() (tok types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	return l.Lex(), nil
}

// All scans up to and including the first EOF token.
func (l *Lexer) All() ([]types.Token, error) {
	var ret []types.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return ret, err
		}
		ret = append(ret, tok)
		if tok.Kind == types.EOF {
			return ret, nil
		}
	}
}
