// Package ast defines the tree built for one prefix-notation expression.
package ast

import (
	"fmt"
	"strings"
)

// Node is either a *NumberLit or a *Call. The unexported marker method keeps
// the set closed: consumers switch over both cases and panic on anything else.
type Node interface {
	node()
	String() string
}

type NumberLit struct {
	// Value is the lexeme exactly as written, sign and exponent included.
	Value string
}

type Call struct {
	Name string
	Args []Node
}

func (*NumberLit) node() {}
func (*Call) node()      {}

func NewNumber(value string) *NumberLit {
	return &NumberLit{Value: value}
}

func NewCall(name string, args ...Node) *Call {
	return &Call{Name: name, Args: args}
}

func (n *NumberLit) String() string {
	return n.Value
}

// String renders the call back in prefix notation, e.g. add(1,mul(2,3)).
func (c *Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, arg := range c.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// IsNumber reports whether n is a literal whose text is exactly value.
func IsNumber(n Node, value string) bool {
	lit, ok := n.(*NumberLit)
	return ok && lit.Value == value
}

// IsCall reports whether n is a call to name.
func IsCall(n Node, name string) bool {
	call, ok := n.(*Call)
	return ok && call.Name == name
}

// Equal compares two trees structurally.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *NumberLit:
		b, ok := b.(*NumberLit)
		return ok && a.Value == b.Value
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		panic(fmt.Sprintf("unimplemented ast node: %T", a))
	}
}

// Depth is 1 for a literal and grows by one per level of call nesting.
func Depth(n Node) int {
	switch n := n.(type) {
	case *NumberLit:
		return 1
	case *Call:
		deepest := 0
		for _, arg := range n.Args {
			deepest = max(deepest, Depth(arg))
		}
		return deepest + 1
	default:
		panic(fmt.Sprintf("unimplemented ast node: %T", n))
	}
}
