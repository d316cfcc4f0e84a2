package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallString(t *testing.T) {
	tree := NewCall("add", NewNumber("1"), NewCall("mul", NewNumber("2"), NewNumber("-3.5e2")))
	assert.Equal(t, "add(1,mul(2,-3.5e2))", tree.String())
	assert.Equal(t, "f()", NewCall("f").String())
}

func TestEqual(t *testing.T) {
	a := NewCall("add", NewNumber("1"), NewNumber("2"))

	assert.True(t, Equal(a, NewCall("add", NewNumber("1"), NewNumber("2"))))
	assert.False(t, Equal(a, NewCall("add", NewNumber("1"), NewNumber("2.0"))))
	assert.False(t, Equal(a, NewCall("sub", NewNumber("1"), NewNumber("2"))))
	assert.False(t, Equal(a, NewCall("add", NewNumber("1"))))
	assert.False(t, Equal(a, NewNumber("1")))
	assert.False(t, Equal(NewNumber("1"), a))
	assert.True(t, Equal(nil, nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNumber(NewNumber("0"), "0"))
	assert.False(t, IsNumber(NewNumber("0.0"), "0"))
	assert.False(t, IsNumber(NewCall("add"), "0"))
	assert.True(t, IsCall(NewCall("tern"), "tern"))
	assert.False(t, IsCall(NewNumber("1"), "tern"))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 1, Depth(NewNumber("1")))
	assert.Equal(t, 1, Depth(NewCall("f")))
	assert.Equal(t, 3, Depth(NewCall("add", NewNumber("1"), NewCall("mul", NewNumber("2"), NewNumber("3")))))
}

func TestDump(t *testing.T) {
	tree := NewCall("add", NewNumber("1"), NewCall("mul", NewNumber("2"), NewNumber("3")))
	expected := "Call(add, 2 args)\n" +
		"  Number(1)\n" +
		"  Call(mul, 2 args)\n" +
		"    Number(2)\n" +
		"    Number(3)\n"
	assert.Equal(t, expected, Dump(tree))
}
