// Package optimizer folds the additive and multiplicative identities out of
// an expression tree.
package optimizer

import (
	"fmt"

	"github.com/polinichcka-coding/Compiler/internal/ast"
)

// Stats describes one optimization run.
type Stats struct {
	Visited int // nodes visited
	Folded  int // calls replaced by one of their operands or by 0
}

func (s Stats) String() string {
	return fmt.Sprintf("visited %d nodes, folded %d calls", s.Visited, s.Folded)
}

type optimizer struct {
	stats Stats
}

// Optimize returns a new tree; node is left untouched and shares nothing with
// the result. Children are optimized before their parent is inspected, so a
// single pass reaches the fixpoint.
//
// Only exact "0" and "1" lexemes trigger a rule: 0.0, +0, -0 and 1.0 are kept.
func Optimize(node ast.Node) ast.Node {
	optimized, _ := OptimizeWithStats(node)
	return optimized
}

func OptimizeWithStats(node ast.Node) (ast.Node, Stats) {
	o := &optimizer{}
	optimized := o.optimize(node)
	return optimized, o.stats
}

func (o *optimizer) optimize(node ast.Node) ast.Node {
	o.stats.Visited++

	switch n := node.(type) {
	case *ast.NumberLit:
		return ast.NewNumber(n.Value)
	case *ast.Call:
		args := make([]ast.Node, len(n.Args))
		for i, arg := range n.Args {
			args[i] = o.optimize(arg)
		}

		if len(args) == 2 {
			if folded := fold(n.Name, args[0], args[1]); folded != nil {
				o.stats.Folded++
				return folded
			}
		}
		return ast.NewCall(n.Name, args...)
	default:
		panic(fmt.Sprintf("unimplemented ast node for optimizer: %T", n))
	}
}

// fold returns nil when no identity applies.
func fold(name string, left, right ast.Node) ast.Node {
	switch name {
	case "add":
		// 0 + x = x, x + 0 = x
		if ast.IsNumber(left, "0") {
			return right
		}
		if ast.IsNumber(right, "0") {
			return left
		}
	case "mul":
		// 1 * x = x, 0 * x = 0
		if ast.IsNumber(left, "1") {
			return right
		}
		if ast.IsNumber(left, "0") {
			return ast.NewNumber("0")
		}
		if ast.IsNumber(right, "1") {
			return left
		}
		if ast.IsNumber(right, "0") {
			return ast.NewNumber("0")
		}
	}
	return nil
}
