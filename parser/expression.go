package parser

import (
	"github.com/pontaoski/pyproto/ast"
	"github.com/pontaoski/pyproto/errors"
	"github.com/pontaoski/pyproto/types"
)

var operandKinds = []types.TokenKind{
	types.NUMBER,
	types.STRING,
	types.SYMBOL,
	types.BOOL,
	types.LPAREN,
}

func startsOperand(k types.TokenKind) bool {
	return k.IsLiteral() || k == types.LPAREN
}

// element is one entry of the flat operand/operator sequence. Operators
// have a nil node.
type element struct {
	node ast.Node
	op   types.Token
}

func (e element) location() types.Span {
	if e.node == nil {
		return e.op.Location
	}
	return ast.RootToken(e.node).Location
}

// parseExpression collects operands and operators until a token that is
// neither, then folds them into a tree. The stopping token is left for
// the caller.
func (p *Parser) parseExpression() ast.Node {
	defer p.enter("expression")()

	var seq []element
	for {
		tok := p.LA(0)
		switch {
		case tok.Kind == types.LPAREN:
			seq = append(seq, element{node: p.parseParenGroup()})
		case p.isFunctionCall():
			seq = append(seq, element{node: p.parseFunctionCall()})
		case tok.Kind.IsLiteral():
			seq = append(seq, element{node: ast.NewLeaf(p.consume(1)[0])})
		case tok.Kind.IsOperator():
			seq = append(seq, element{op: p.consume(1)[0]})
		default:
			return p.fold(seq, tok)
		}
	}
}

// fold checks that seq alternates operand, operator, operand and then
// reduces it: the highest priority operator, leftmost on ties, is
// replaced together with its two operands by a new node until a single
// operand is left. end is the token that stopped the sequence.
func (p *Parser) fold(seq []element, end types.Token) ast.Node {
	var operands []ast.Node
	var operators []types.Token

	for i, e := range seq {
		if (i%2 == 0) != (e.node != nil) {
			got := e.op.Kind
			if e.node != nil {
				got = ast.RootToken(e.node).Kind
			}
			panic(p.malformed(seq, got, e.location()))
		}
		if e.node != nil {
			operands = append(operands, e.node)
		} else {
			operators = append(operators, e.op)
		}
	}
	if len(operands) != len(operators)+1 {
		panic(p.malformed(seq, end.Kind, end.Location))
	}

	for len(operators) > 0 {
		best := 0
		for i, op := range operators {
			if op.Kind.Priority() > operators[best].Kind.Priority() {
				best = i
			}
		}

		operands[best] = ast.NewOperator(operators[best], operands[best], operands[best+1])
		operands = append(operands[:best+1], operands[best+2:]...)
		operators = append(operators[:best], operators[best+1:]...)
	}

	return operands[0]
}

func (p *Parser) malformed(seq []element, got types.TokenKind, loc types.Span) errors.MalformedExpression {
	e := errors.MalformedExpression{
		Production: p.production(),
		Got:        got,
		Location:   loc,
	}
	for _, el := range seq {
		if el.node != nil {
			e.Operands++
		} else {
			e.Operators++
		}
	}
	return e
}
