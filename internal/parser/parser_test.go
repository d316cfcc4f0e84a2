package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/polinichcka-coding/Compiler/internal/ast"
	"github.com/polinichcka-coding/Compiler/internal/lexer"
	"github.com/polinichcka-coding/Compiler/internal/lexer/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exprTest struct {
	input string
	node  ast.Node
}

func num(v string) *ast.NumberLit { return ast.NewNumber(v) }

func TestExpr(t *testing.T) {
	tests := []exprTest{
		{"1", num("1")},
		{"-2.5e3", num("-2.5e3")},
		{"add(1,2)", ast.NewCall("add", num("1"), num("2"))},
		{"add(1,mul(2,3))", ast.NewCall("add", num("1"), ast.NewCall("mul", num("2"), num("3")))},
		{"tern(1, 2, 3)", ast.NewCall("tern", num("1"), num("2"), num("3"))},
		// arity is not the parser's business
		{"f()", ast.NewCall("f")},
		{"add(1)", ast.NewCall("add", num("1"))},
		{"foo(1,2,3,4)", ast.NewCall("foo", num("1"), num("2"), num("3"), num("4"))},
		{"pow( /* base */ 2 ,\n 8 )", ast.NewCall("pow", num("2"), num("8"))},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestExpr(%q)", test.input), func(t *testing.T) {
			actual, err := ParseString(test.input)
			require.NoError(t, err)
			assert.True(t, ast.Equal(test.node, actual), "expected %s, got %s", test.node, actual)
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"(1)", "Unrecognisable token: ("},
		{")", "Unrecognisable token: )"},
		{",", "Unrecognisable token: ,"},
		{"add(1,)", "Unrecognisable token: )"},
		{"add(,1)", "Unrecognisable token: ,"},
		{"add 1", "Expected ( after add but found 1"},
		{"add(1 2)", "Expected ) but found 2"},
		{"add(1,2))", "Unexpected token after expression: )"},
		{"1 2", "Unexpected token after expression: 2"},
		{"add(1,2) mul(3,4)", "Unexpected token after expression: mul"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestSyntaxError(%q)", test.input), func(t *testing.T) {
			node, err := ParseString(test.input)
			assert.Nil(t, node)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected SyntaxError, got %v", err)
			assert.Equal(t, test.msg, err.Error())
		})
	}
}

func TestUnexpectedEOF(t *testing.T) {
	for _, input := range []string{"", "   ", "add", "add(", "add(1,", "add(1,2", "add(mul(1,2)"} {
		t.Run(fmt.Sprintf("TestUnexpectedEOF(%q)", input), func(t *testing.T) {
			_, err := ParseString(input)
			assert.ErrorIs(t, err, ErrUnexpectedEOF)
			assert.EqualError(t, err, "Unexpected end of input")
		})
	}
}

func TestLexicalErrorPassesThrough(t *testing.T) {
	_, err := ParseString("add(1,2)+3")

	var unknown *lexer.UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "+", unknown.Symbol)
}

func TestParseTokens(t *testing.T) {
	tokens := []*token.Token{
		token.New("mul", token.NAME),
		token.New("(", token.OPEN_PAREN),
		token.New("0", token.NUMBER),
		token.New(",", token.COMMA),
		token.New("7", token.NUMBER),
		token.New(")", token.CLOSE_PAREN),
	}

	node, err := New(tokens).Parse()
	require.NoError(t, err)
	assert.Equal(t, "mul(0,7)", node.String())
}
