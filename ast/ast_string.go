package ast

import (
	"strings"
)

// Format renders n as an S-expression, e.g. (+ 1 (* 2 3)).
func Format(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
		sb.WriteString("()")
	case Leaf:
		sb.WriteString(v.Source())
	case Operator:
		sb.WriteByte('(')
		sb.WriteString(v.Root.Literal())
		for _, target := range v.Targets {
			sb.WriteByte(' ')
			write(sb, target)
		}
		sb.WriteByte(')')
	default:
		panic("unhandled")
	}
}

func (v Leaf) String() string {
	return Format(v)
}

func (v Operator) String() string {
	return Format(v)
}

func (p Program) String() string {
	var lines []string
	for _, n := range p {
		lines = append(lines, Format(n))
	}
	return strings.Join(lines, "\n")
}
