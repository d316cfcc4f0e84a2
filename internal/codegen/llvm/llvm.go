// Package llvm lowers an expression tree to an LLVM IR module holding a single
// function `double @<name>()` that returns the value of the expression. The IR
// is only emitted, never executed.
package llvm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/polinichcka-coding/Compiler/internal/ast"
	"tinygo.org/x/go-llvm"
)

const DefaultFunctionName = "expr"

type llvmCodegen struct {
	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	pow *Function
}

func NewCG(moduleName string) *llvmCodegen {
	context := llvm.NewContext()
	module := context.NewModule(moduleName)
	builder := context.NewBuilder()

	defaultTargetTriple := llvm.DefaultTargetTriple()
	module.SetTarget(defaultTargetTriple)

	return &llvmCodegen{
		context: context,
		module:  module,
		builder: builder,
	}
}

// Emit lowers a validated tree and returns the textual IR.
func Emit(node ast.Node, fnName string) (string, error) {
	c := NewCG(fnName)
	defer c.Dispose()

	if err := c.Generate(node, fnName); err != nil {
		return "", err
	}
	return c.module.String(), nil
}

func (c *llvmCodegen) Generate(node ast.Node, fnName string) error {
	if fnName == "" {
		fnName = DefaultFunctionName
	}

	double := c.context.DoubleType()
	fnType := llvm.FunctionType(double, nil, false)
	fn := llvm.AddFunction(c.module, fnName, fnType)

	entry := c.context.AddBasicBlock(fn, "entry")
	c.builder.SetInsertPointAtEnd(entry)

	value, err := c.generateExpr(node)
	if err != nil {
		return err
	}
	c.builder.CreateRet(value)

	// TODO(errors): map verifier output back to the offending call
	if err := llvm.VerifyModule(c.module, llvm.ReturnStatusAction); err != nil {
		return fmt.Errorf("llvm: invalid module: %w", err)
	}
	return nil
}

func (c *llvmCodegen) Dispose() {
	c.builder.Dispose()
	c.module.Dispose()
	c.context.Dispose()
}

func (c *llvmCodegen) generateExpr(node ast.Node) (llvm.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		return c.generateNumber(n)
	case *ast.Call:
		return c.generateCall(n)
	default:
		panic(fmt.Sprintf("unimplemented ast node for llvm codegen: %T", n))
	}
}

func (c *llvmCodegen) generateNumber(lit *ast.NumberLit) (llvm.Value, error) {
	value, err := strconv.ParseFloat(lit.Value, 64)
	// out of range literals become +-Inf or 0, like a C compiler would
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return llvm.Value{}, fmt.Errorf("llvm: invalid number literal %q: %w", lit.Value, err)
	}
	return llvm.ConstFloat(c.context.DoubleType(), value), nil
}

func (c *llvmCodegen) generateCall(call *ast.Call) (llvm.Value, error) {
	args := make([]llvm.Value, len(call.Args))
	for i, arg := range call.Args {
		value, err := c.generateExpr(arg)
		if err != nil {
			return llvm.Value{}, err
		}
		args[i] = value
	}

	switch call.Name {
	case "add":
		return c.builder.CreateFAdd(args[0], args[1], ""), nil
	case "sub":
		return c.builder.CreateFSub(args[0], args[1], ""), nil
	case "mul":
		return c.builder.CreateFMul(args[0], args[1], ""), nil
	case "div":
		return c.builder.CreateFDiv(args[0], args[1], ""), nil
	case "mod":
		return c.builder.CreateFRem(args[0], args[1], ""), nil
	case "pow":
		pow := c.powIntrinsic()
		return c.builder.CreateCall(pow.Ty, pow.Fn, args, ""), nil
	case "tern":
		// any non-zero condition selects the second operand
		zero := llvm.ConstFloat(c.context.DoubleType(), 0)
		cond := c.builder.CreateFCmp(llvm.FloatONE, args[0], zero, "")
		return c.builder.CreateSelect(cond, args[1], args[2], ""), nil
	default:
		return llvm.Value{}, fmt.Errorf("llvm: no lowering for function %s", call.Name)
	}
}

func (c *llvmCodegen) powIntrinsic() *Function {
	if c.pow != nil {
		return c.pow
	}
	double := c.context.DoubleType()
	ty := llvm.FunctionType(double, []llvm.Type{double, double}, false)
	fn := llvm.AddFunction(c.module, "llvm.pow.f64", ty)
	c.pow = NewFunctionValue(fn, ty)
	return c.pow
}
