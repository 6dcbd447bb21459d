package parser

import (
	"fmt"
	"io"

	"github.com/pontaoski/pyproto/ast"
	"github.com/pontaoski/pyproto/errors"
	"github.com/pontaoski/pyproto/lexer"
	"github.com/pontaoski/pyproto/types"
	"github.com/ztrue/tracerr"
)

// DefaultLookahead is the smallest window that can tell an assignment
// from an expression starting with a symbol.
const DefaultLookahead = 2

// Parser pulls tokens from a Lexer into a window of k tokens and builds
// one AST per statement. It is not safe for concurrent use, and once it
// has returned an error it keeps returning that error.
type Parser struct {
	l           *lexer.Lexer
	k           int
	window      *lookahead
	primed      bool
	productions []string
	err         error
}

func New(l *lexer.Lexer, k int) (*Parser, error) {
	if k < DefaultLookahead {
		return nil, tracerr.Wrap(errors.InvalidLookahead{K: k})
	}

	return &Parser{
		l:      l,
		k:      k,
		window: newLookahead(k),
	}, nil
}

// Lookahead is the window size the parser was built with.
func (p *Parser) Lookahead() int {
	return p.k
}

func (p *Parser) fill() {
	for !p.window.full() {
		p.window.push(p.l.Lex())
	}
	p.primed = true
}

// LA returns the token i positions ahead without consuming it.
func (p *Parser) LA(i int) types.Token {
	if i < 0 || i >= p.k {
		panic(errors.LookaheadOutOfRange{Index: i, K: p.k})
	}
	if !p.primed {
		p.fill()
	}

	return p.window.at(i)
}

// consume removes the next n tokens from the window and tops it back up.
// When expected kinds are given there must be n of them, and each token
// must match its kind.
func (p *Parser) consume(n int, expected ...types.TokenKind) []types.Token {
	if len(expected) != 0 && len(expected) != n {
		panic(fmt.Errorf("consume: %d expected kinds for %d tokens", len(expected), n))
	}

	ret := make([]types.Token, 0, n)
	for i := 0; i < n; i++ {
		tok := p.LA(0)
		if len(expected) != 0 && tok.Kind != expected[i] {
			panic(errors.ExpectedKindGotKind{
				Production: p.production(),
				Expected:   expected[i],
				Got:        tok.Kind,
				Location:   tok.Location,
			})
		}

		ret = append(ret, p.window.pop())
		p.fill()
	}

	return ret
}

// enter pushes a production name for error reports and returns the pop.
func (p *Parser) enter(name string) func() {
	p.productions = append(p.productions, name)
	return func() {
		p.productions = p.productions[:len(p.productions)-1]
	}
}

func (p *Parser) production() string {
	if len(p.productions) == 0 {
		return "program"
	}
	return p.productions[len(p.productions)-1]
}

func (p *Parser) expectedOneOf(tok types.Token, kinds ...types.TokenKind) errors.ExpectedOneOfKindGotKind {
	return errors.ExpectedOneOfKindGotKind{
		Production: p.production(),
		Expected:   kinds,
		Got:        tok.Kind,
		Location:   tok.Location,
	}
}

func (p *Parser) recover(err *error) {
	if r := recover(); r != nil {
		rerr, ok := r.(error)
		if !ok {
			panic(r)
		}
		p.err = tracerr.Wrap(rerr)
		*err = p.err
	}
}

// ParseStatement parses one statement and its terminator. An empty
// statement yields a nil node and a nil error. When no input is left it
// returns io.EOF.
func (p *Parser) ParseStatement() (node ast.Node, err error) {
	if p.err != nil {
		return nil, p.err
	}
	defer p.recover(&err)

	if p.LA(0).Kind == types.EOF {
		return nil, io.EOF
	}

	return p.parseStatement(), nil
}

// ParseProgram parses every remaining statement. Empty statements are
// dropped. The first failure aborts the parse and no partial program is
// returned.
func (p *Parser) ParseProgram() (prog ast.Program, err error) {
	if p.err != nil {
		return nil, p.err
	}
	defer func() {
		if err != nil {
			prog = nil
		}
	}()
	defer p.recover(&err)

	prog = ast.Program{}
	for p.LA(0).Kind != types.EOF {
		if node := p.parseStatement(); node != nil {
			prog = append(prog, node)
		}
	}

	return prog, nil
}

func (p *Parser) parseStatement() ast.Node {
	defer p.enter("statement")()

	var node ast.Node
	switch {
	case p.LA(0).Kind.IsTerminator():
	case p.LA(0).Kind == types.VAR:
		node = p.parseDeclaration()
	case p.isAssignment():
		node = p.parseAssignment()
	default:
		node = p.parseExpression()
	}

	switch tok := p.LA(0); tok.Kind {
	case types.EOL:
		p.consume(1)
	case types.EOF:
	default:
		panic(p.expectedOneOf(tok, types.EOL, types.EOF))
	}

	return node
}

// var x
// var x = expression
func (p *Parser) parseDeclaration() ast.Node {
	defer p.enter("declaration")()

	toks := p.consume(2, types.VAR, types.SYMBOL)
	if p.LA(0).Kind.IsTerminator() {
		return ast.NewOperator(toks[0], ast.NewLeaf(toks[1]))
	}

	p.consume(1, types.EQUAL)
	value := p.parseExpression()

	return ast.NewOperator(toks[0], ast.NewOperator(toks[1], value))
}

func (p *Parser) isAssignment() bool {
	return p.LA(0).Kind == types.SYMBOL && p.LA(1).Kind == types.EQUAL
}

// x = expression
// x = y = expression
func (p *Parser) parseAssignment() ast.Node {
	defer p.enter("assignment")()

	toks := p.consume(2, types.SYMBOL, types.EQUAL)

	var value ast.Node
	if p.isAssignment() {
		value = p.parseAssignment()
	} else {
		value = p.parseExpression()
	}

	return ast.NewOperator(toks[1], ast.NewLeaf(toks[0]), value)
}

func (p *Parser) isFunctionCall() bool {
	return p.LA(0).Kind == types.SYMBOL && p.LA(1).Kind == types.LPAREN
}

// f()
// f(expression, expression)
func (p *Parser) parseFunctionCall() ast.Node {
	defer p.enter("function call")()

	name := p.consume(2, types.SYMBOL, types.LPAREN)[0]
	args := []ast.Node{}

	if p.LA(0).Kind == types.RPAREN {
		p.consume(1)
		return ast.NewOperator(name, args...)
	}

	for {
		if tok := p.LA(0); !startsOperand(tok.Kind) {
			panic(p.expectedOneOf(tok, operandKinds...))
		}
		args = append(args, p.parseExpression())

		switch tok := p.LA(0); tok.Kind {
		case types.COMMA:
			p.consume(1)
		case types.RPAREN:
			p.consume(1)
			return ast.NewOperator(name, args...)
		default:
			panic(p.expectedOneOf(tok, types.COMMA, types.RPAREN))
		}
	}
}

// (expression)
func (p *Parser) parseParenGroup() ast.Node {
	defer p.enter("paren group")()

	p.consume(1, types.LPAREN)
	inner := p.parseExpression()
	p.consume(1, types.RPAREN)

	return inner
}

type Option func(*options)

type options struct {
	k        int
	filename string
	lexer    []lexer.Option
}

func WithLookahead(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

func WithLexerOptions(opts ...lexer.Option) Option {
	return func(o *options) {
		o.lexer = append(o.lexer, opts...)
	}
}

// Parse lexes and parses a whole source string.
func Parse(source string, opts ...Option) (ast.Program, error) {
	o := options{k: DefaultLookahead, filename: "<input>"}
	for _, opt := range opts {
		opt(&o)
	}

	p, err := New(lexer.NewLexer(source, o.filename, o.lexer...), o.k)
	if err != nil {
		return nil, err
	}

	return p.ParseProgram()
}
