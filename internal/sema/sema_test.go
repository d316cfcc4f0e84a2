package sema

import (
	"errors"
	"testing"

	"github.com/polinichcka-coding/Compiler/internal/ast"
	"github.com/polinichcka-coding/Compiler/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ast.Node {
	t.Helper()
	node, err := parser.ParseString(src)
	require.NoError(t, err)
	return node
}

func TestValidExpressions(t *testing.T) {
	tests := []string{
		"1",
		"-0.5e3",
		"add(1,2)",
		"sub(1,2)",
		"mul(1,2)",
		"div(1,2)",
		"mod(1,2)",
		"pow(1,2)",
		"tern(1,2,3)",
		"tern(add(1,2),pow(2,pow(3,4)),mod(div(1,2),3))",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			assert.NoError(t, Check(parse(t, src)))
		})
	}
}

func TestUnknownFunction(t *testing.T) {
	tests := []struct {
		src  string
		name string
	}{
		{"foo(1,2)", "foo"},
		{"add(1,bar())", "bar"},
		{"Add(1,2)", "Add"},
		{"tern(1,2,neg(3))", "neg"},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			err := Check(parse(t, test.src))

			var unknown *UnknownFunctionError
			require.True(t, errors.As(err, &unknown), "expected UnknownFunctionError, got %v", err)
			assert.Equal(t, test.name, unknown.Name)
			assert.Equal(t, "Unrecognisable function: "+test.name, err.Error())
		})
	}
}

func TestArityMismatch(t *testing.T) {
	tests := []struct {
		src      string
		expected ArityMismatchError
		msg      string
	}{
		{"add(1)", ArityMismatchError{"add", 2, 1}, "Function add expects 2 but receives 1"},
		{"pow()", ArityMismatchError{"pow", 2, 0}, "Function pow expects 2 but receives 0"},
		{"tern(1,2)", ArityMismatchError{"tern", 3, 2}, "Function tern expects 3 but receives 2"},
		{"mul(1,sub(1,2,3))", ArityMismatchError{"sub", 2, 3}, "Function sub expects 2 but receives 3"},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			err := Check(parse(t, test.src))

			var mismatch *ArityMismatchError
			require.True(t, errors.As(err, &mismatch), "expected ArityMismatchError, got %v", err)
			assert.Equal(t, test.expected, *mismatch)
			assert.EqualError(t, err, test.msg)
		})
	}
}

func TestFirstViolationWins(t *testing.T) {
	// the outer call is checked before its arguments
	err := Check(parse(t, "foo(add(1))"))
	assert.EqualError(t, err, "Unrecognisable function: foo")

	err = Check(parse(t, "add(foo(1),add(1))"))
	assert.EqualError(t, err, "Unrecognisable function: foo")
}

func TestCheckDoesNotModifyTree(t *testing.T) {
	node := parse(t, "add(1,mul(2,3))")
	before := node.String()
	require.NoError(t, Check(node))
	assert.Equal(t, before, node.String())
}
