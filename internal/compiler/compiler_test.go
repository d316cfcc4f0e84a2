package compiler

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/polinichcka-coding/Compiler/internal/codegen/infix"
	"github.com/polinichcka-coding/Compiler/internal/lexer"
	"github.com/polinichcka-coding/Compiler/internal/parser"
	"github.com/polinichcka-coding/Compiler/internal/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add(1,2)", "1 + 2"},
		{"mul(0,add(3,4))", "0"},
		{"add(0,mul(2,3))", "2 * 3"},
		{"pow(2,pow(3,4))", "2 ^ 3 ^ 4"},
		{"pow(pow(2,3),4)", "(2 ^ 3) ^ 4"},
		{"foo(1,2)", "Mistake: Unrecognisable function: foo"},
		{"add(1)", "Mistake: Function add expects 2 but receives 1"},
		{"1+2", "Mistake: Unknown symbol: +"},

		{"add(1,mul(2,3))", "1 + (2 * 3)"},
		{"sub(mul(1, add(4, 0)), /* drop */ div(6, 2))", "4 - (6 / 2)"},
		{"tern(mul(1,1), add(0,2), mul(3,0))", "1?2:0"},
		{"mul(0.0,5)", "0.0 * 5"},
		{"", "Mistake: Unexpected end of input"},
		{"add(1,2", "Mistake: Unexpected end of input"},
		{"add(1,2))", "Mistake: Unexpected token after expression: )"},
		{"add 1 2", "Mistake: Expected ( after add but found 1"},
		{"(1)", "Mistake: Unrecognisable token: ("},
		{"foo(add(1))", "Mistake: Unrecognisable function: foo"},
		// validation runs before folding
		{"add(0,foo(1))", "Mistake: Unrecognisable function: foo"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestCompile(%q)", test.input), func(t *testing.T) {
			assert.Equal(t, test.expected, Compile(test.input))
		})
	}
}

func TestTranslateStages(t *testing.T) {
	tests := []struct {
		input  string
		stage  Stage
		target any
	}{
		{"1+2", STAGE_LEX, new(*lexer.UnknownSymbolError)},
		{"add(1,", STAGE_PARSE, nil},
		{"add(1,)", STAGE_PARSE, new(*parser.SyntaxError)},
		{"foo(1,2)", STAGE_VALIDATE, new(*sema.UnknownFunctionError)},
		{"add(1)", STAGE_VALIDATE, new(*sema.ArityMismatchError)},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := Translate(test.input)
			assert.Nil(t, result)

			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr))
			assert.Equal(t, test.stage, stageErr.Stage)
			if test.target != nil {
				assert.True(t, errors.As(err, test.target), "%v does not unwrap to %T", err, test.target)
			}
		})
	}

	_, err := Translate("add(mul(1,2)")
	assert.ErrorIs(t, err, parser.ErrUnexpectedEOF)
}

func TestTranslateResult(t *testing.T) {
	result, err := Translate("add(0, mul(2,3))")
	require.NoError(t, err)

	assert.Equal(t, "add(0, mul(2,3))", result.Source)
	assert.Len(t, result.Tokens, 11)
	assert.Equal(t, "add(0,mul(2,3))", result.Tree.String())
	assert.Equal(t, "mul(2,3)", result.Optimized.String())
	assert.Equal(t, 1, result.Stats.Folded)
	assert.Equal(t, "2 * 3", result.Output)
}

func TestCompilerOptions(t *testing.T) {
	c := New(Options{Codegen: infix.Options{NestedTernary: infix.PARENT_RELATIVE}})
	assert.Equal(t, "1?2 + (3?4:5):6", c.Compile("tern(1,add(2,tern(3,4,5)),6)"))
	assert.Equal(t, "1?2 + 3?4:5:6", Compile("tern(1,add(2,tern(3,4,5)),6)"))
}

func TestCompileConcurrently(t *testing.T) {
	inputs := map[string]string{
		"add(1,2)":        "1 + 2",
		"pow(pow(2,3),4)": "(2 ^ 3) ^ 4",
		"add(1)":          "Mistake: Function add expects 2 but receives 1",
		"mul(0,add(3,4))": "0",
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		for input, expected := range inputs {
			wg.Add(1)
			go func(input, expected string) {
				defer wg.Done()
				assert.Equal(t, expected, Compile(input))
			}(input, expected)
		}
	}
	wg.Wait()
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "lex", STAGE_LEX.String())
	assert.Equal(t, "parse", STAGE_PARSE.String())
	assert.Equal(t, "validate", STAGE_VALIDATE.String())
}
