package llvm

import "tinygo.org/x/go-llvm"

type Function struct {
	Fn llvm.Value
	Ty llvm.Type
}

func NewFunctionValue(fn llvm.Value, ty llvm.Type) *Function {
	return &Function{Fn: fn, Ty: ty}
}
