// Package compiler runs the whole pipeline for one expression:
// tokens, tree, validation, identity folding and infix rendering.
package compiler

import (
	"github.com/polinichcka-coding/Compiler/internal/ast"
	"github.com/polinichcka-coding/Compiler/internal/codegen/infix"
	"github.com/polinichcka-coding/Compiler/internal/lexer"
	"github.com/polinichcka-coding/Compiler/internal/lexer/token"
	"github.com/polinichcka-coding/Compiler/internal/optimizer"
	"github.com/polinichcka-coding/Compiler/internal/parser"
	"github.com/polinichcka-coding/Compiler/internal/sema"
)

// MISTAKE_PREFIX starts every failed result returned by Compile.
const MISTAKE_PREFIX = "Mistake: "

type Options struct {
	Codegen infix.Options
}

// Result keeps every intermediate value of a successful translation.
type Result struct {
	Source    string
	Tokens    []*token.Token
	Tree      ast.Node
	Optimized ast.Node
	Stats     optimizer.Stats
	Output    string
}

// Compiler holds only read-only options and is safe for concurrent use.
type Compiler struct {
	opts Options
}

func New(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

var defaultCompiler = New(Options{})

// Compile translates src with the default options. Failures come back as
// "Mistake: <message>"; nothing else distinguishes them from a result.
func Compile(src string) string {
	return defaultCompiler.Compile(src)
}

func Translate(src string) (*Result, error) {
	return defaultCompiler.Translate(src)
}

func (c *Compiler) Compile(src string) string {
	result, err := c.Translate(src)
	if err != nil {
		return FormatMistake(err)
	}
	return result.Output
}

// Translate returns a *StageError on failure.
func (c *Compiler) Translate(src string) (*Result, error) {
	result := &Result{Source: src}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, &StageError{Stage: STAGE_LEX, Err: err}
	}
	result.Tokens = tokens

	tree, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, &StageError{Stage: STAGE_PARSE, Err: err}
	}
	result.Tree = tree

	if err := sema.Check(tree); err != nil {
		return nil, &StageError{Stage: STAGE_VALIDATE, Err: err}
	}

	result.Optimized, result.Stats = optimizer.OptimizeWithStats(tree)
	result.Output = infix.GenerateWith(result.Optimized, c.opts.Codegen)
	return result, nil
}

func FormatMistake(err error) string {
	return MISTAKE_PREFIX + err.Error()
}
