package sema

import (
	"fmt"

	"github.com/polinichcka-coding/Compiler/internal/ast"
)

// ARITY lists every callable function and the exact number of arguments it
// takes. Never written after initialization.
var ARITY map[string]int = map[string]int{
	"add":  2,
	"sub":  2,
	"mul":  2,
	"div":  2,
	"mod":  2,
	"pow":  2,
	"tern": 3,
}

type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return "Unrecognisable function: " + e.Name
}

type ArityMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("Function %s expects %d but receives %d", e.Name, e.Expected, e.Actual)
}

// Check walks the tree pre-order and returns the first violation found. The
// tree is never modified.
func Check(node ast.Node) error {
	switch n := node.(type) {
	case *ast.NumberLit:
		return nil
	case *ast.Call:
		return checkCall(n)
	default:
		panic(fmt.Sprintf("unimplemented ast node for sema: %T", n))
	}
}

func checkCall(call *ast.Call) error {
	expected, found := ARITY[call.Name]
	if !found {
		return &UnknownFunctionError{Name: call.Name}
	}
	if len(call.Args) != expected {
		return &ArityMismatchError{Name: call.Name, Expected: expected, Actual: len(call.Args)}
	}

	for _, arg := range call.Args {
		if err := Check(arg); err != nil {
			return err
		}
	}
	return nil
}
