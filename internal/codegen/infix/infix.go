// Package infix renders a validated expression tree as an infix string.
//
// Parentheses are inserted when the child binds more loosely than its parent,
// and when an equal-precedence child sits on the side that would re-associate.
// Under + - * / % a tighter-binding call is wrapped as well, so add(1,mul(2,3))
// reads 1 + (2 * 3), while the left operand of equal precedence stays bare:
// add(add(1,2),3) reads 1 + 2 + 3. Nested ternaries follow NestedTernary.
package infix

import (
	"fmt"
	"strings"

	"github.com/polinichcka-coding/Compiler/internal/ast"
)

// NestedTernary selects when a ternary child may be emitted without
// parentheses.
type NestedTernary int

const (
	// ROOT_RELATIVE drops them whenever the whole expression is a ternary,
	// however deep the child is, so tern(1,add(2,tern(3,4,5)),6) renders as
	// the ambiguous 1?2 + 3?4:5:6. Default, for output compatibility.
	ROOT_RELATIVE NestedTernary = iota
	// PARENT_RELATIVE drops them only when the immediate parent is a ternary.
	PARENT_RELATIVE
)

func (mode NestedTernary) String() string {
	switch mode {
	case ROOT_RELATIVE:
		return "root"
	case PARENT_RELATIVE:
		return "parent"
	}
	return "unknown"
}

func ParseNestedTernary(s string) (NestedTernary, error) {
	switch s {
	case "root", "":
		return ROOT_RELATIVE, nil
	case "parent":
		return PARENT_RELATIVE, nil
	}
	return ROOT_RELATIVE, fmt.Errorf("invalid nested ternary mode %q (want root or parent)", s)
}

type Options struct {
	NestedTernary NestedTernary
}

type generator struct {
	root ast.Node
	opts Options
}

// Generate renders node with the default options. node must have passed
// sema.Check: unknown names or wrong argument counts panic.
func Generate(node ast.Node) string {
	return GenerateWith(node, Options{})
}

func GenerateWith(node ast.Node, opts Options) string {
	g := &generator{root: node, opts: opts}
	return g.generateExpr(node)
}

func (g *generator) generateExpr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.NumberLit:
		return n.Value
	case *ast.Call:
		op := lookup(n.Name)

		if n.Name == "tern" {
			cond := g.wrap(n, n.Args[0], op, true)
			then := g.wrap(n, n.Args[1], op, true)
			otherwise := g.wrap(n, n.Args[2], op, true)
			return cond + "?" + then + ":" + otherwise
		}

		left := g.wrap(n, n.Args[0], op, true)
		right := g.wrap(n, n.Args[1], op, false)
		return left + " " + op.Symbol + " " + right
	default:
		panic(fmt.Sprintf("unimplemented ast node for codegen: %T", n))
	}
}

// wrap renders child as an operand of parent.
func (g *generator) wrap(parent *ast.Call, child ast.Node, parentOp Operator, isLeft bool) string {
	call, ok := child.(*ast.Call)
	if !ok {
		return g.generateExpr(child)
	}

	expr := g.generateExpr(call)
	if call.Name == "tern" && g.ternaryParent(parent) {
		return expr
	}

	if needParens(lookup(call.Name), parentOp, isLeft) {
		return "(" + expr + ")"
	}
	return expr
}

func (g *generator) ternaryParent(parent *ast.Call) bool {
	if g.opts.NestedTernary == PARENT_RELATIVE {
		return parent.Name == "tern"
	}
	return ast.IsCall(g.root, "tern")
}

func needParens(child, parent Operator, isLeft bool) bool {
	switch {
	case child.Prec < parent.Prec:
		return true
	case child.Prec == parent.Prec:
		return (parent.Assoc == LEFT && !isLeft) || (parent.Assoc == RIGHT && isLeft)
	default:
		return parent.Prec == PREC_TERM || parent.Prec == PREC_FACTOR
	}
}

func lookup(name string) Operator {
	op, ok := OPERATORS[name]
	if !ok {
		panic(fmt.Sprintf("codegen: no operator for function %q", name))
	}
	return op
}

// Symbols lists the operator symbols in a stable order, for help output.
func Symbols() string {
	var sb strings.Builder
	for _, name := range []string{"add", "sub", "mul", "div", "mod", "pow"} {
		fmt.Fprintf(&sb, "%s=%s ", name, OPERATORS[name].Symbol)
	}
	sb.WriteString("tern=c?t:f")
	return sb.String()
}
