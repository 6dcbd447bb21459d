package ast

import "github.com/pontaoski/pyproto/types"

// Node is either a Leaf or an Operator. Every node has at most one parent.
type Node interface {
	is_Node()
}

// Leaf is a NUMBER, STRING, SYMBOL or BOOL token.
type Leaf struct {
	types.Token
}

func (v Leaf) is_Node() {}

// Source reproduces the text the leaf was scanned from.
func (v Leaf) Source() string {
	return v.Text
}

// Operator is an interior node. Root is an operator or keyword token, or
// the function name of a call; Targets are its children in order.
//
//	var x          (var x)
//	var x = 3      (var (x 3))
//	x = 1 + 2      (= x (+ 1 2))
//	f(a, b)        (f a b)
type Operator struct {
	Root    types.Token
	Targets []Node
}

func (v Operator) is_Node() {}

// Program holds the statement roots of a source in order.
type Program []Node

func NewLeaf(tok types.Token) Leaf {
	return Leaf{tok}
}

func NewOperator(root types.Token, targets ...Node) Operator {
	if targets == nil {
		targets = []Node{}
	}
	return Operator{Root: root, Targets: targets}
}

// RootToken returns the token at the top of n.
func RootToken(n Node) types.Token {
	switch v := n.(type) {
	case Leaf:
		return v.Token
	case Operator:
		return v.Root
	}

	panic("unhandled")
}

// Inspect walks n depth first, parents before children. Children are
// skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if op, ok := n.(Operator); ok {
		for _, target := range op.Targets {
			Inspect(target, fn)
		}
	}
}
