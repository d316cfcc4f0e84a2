package ast

import (
	"fmt"
	"strings"
)

// Dump writes an indented outline of the tree, one node per line. Used by
// `infixc inspect`.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, level int) {
	indent := strings.Repeat("  ", level)
	switch n := n.(type) {
	case *NumberLit:
		fmt.Fprintf(sb, "%sNumber(%s)\n", indent, n.Value)
	case *Call:
		fmt.Fprintf(sb, "%sCall(%s, %d args)\n", indent, n.Name, len(n.Args))
		for _, arg := range n.Args {
			dump(sb, arg, level+1)
		}
	default:
		panic(fmt.Sprintf("unimplemented ast node: %T", n))
	}
}
