//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codegen lowers resolved Forge trees through an IR-agnostic
// backend contract. The package knows nothing about any concrete IR: a
// backend hands out opaque type, value, block, and function handles and
// emits instructions at an insertion point. Any backend obeying the
// contract works; the irgen package provides the reference one.
package codegen

import "errors"

// Type is an opaque backend type handle.
type Type interface{}

// Value is an opaque backend value handle.
type Value interface{}

// Block is an opaque backend basic-block handle.
type Block interface{}

// Function is an opaque backend function handle.
type Function interface{}

// BinaryOp selects a binary instruction. Signedness and floatness are
// derived by the backend from the operand types.
type BinaryOp int

const (
	// OpAdd is addition.
	OpAdd BinaryOp = iota
	// OpSub is subtraction.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpDiv is division.
	OpDiv
	// OpRem is remainder.
	OpRem
	// OpExp is exponentiation.
	OpExp
	// OpAnd is bitwise (or boolean) and.
	OpAnd
	// OpOr is bitwise (or boolean) or.
	OpOr
	// OpXor is bitwise exclusive or.
	OpXor
	// OpShl is a left shift.
	OpShl
	// OpShr is a right shift (arithmetic for signed operands).
	OpShr
)

// ComparePredicate selects a comparison instruction.
type ComparePredicate int

const (
	// PredEq is equality.
	PredEq ComparePredicate = iota
	// PredNe is inequality.
	PredNe
	// PredLt is less-than.
	PredLt
	// PredLe is less-than-or-equal.
	PredLe
	// PredGt is greater-than.
	PredGt
	// PredGe is greater-than-or-equal.
	PredGe
)

// Errors a backend classifies object-file writing failures into.
var (
	// ErrTargetNotFound means the backend could not find the requested
	// target.
	ErrTargetNotFound = errors.New("unable to find target")
	// ErrTargetMachine means the backend could not create a target machine.
	ErrTargetMachine = errors.New("unable to create target machine")
	// ErrOutputOpen means the output file could not be opened.
	ErrOutputOpen = errors.New("unable to open output file")
	// ErrObjectUnsupported means the target cannot emit object files.
	ErrObjectUnsupported = errors.New("target does not support object files")
)

// Backend is the contract the core requires of a code-generation backend:
// an opaque module/builder/target container that can create types,
// functions, and basic blocks, and emit instructions at an insertion point.
type Backend interface {
	// PointerBitWidth returns the width of a pointer on the target, which
	// is also the width of isize and usize.
	PointerBitWidth() int

	// VoidType returns the void type.
	VoidType() Type
	// BoolType returns the 1-bit boolean type.
	BoolType() Type
	// IntType returns an integer type of the given width and signedness.
	IntType(bits int, signed bool) Type
	// FloatType returns a floating-point type of the given width.
	FloatType(bits int) Type
	// PointerType returns a pointer to the element type.
	PointerType(element Type) Type
	// FunctionType returns a function type.
	FunctionType(returnType Type, argTypes []Type) Type

	// CreateFunction creates (and registers) a function with the module.
	CreateFunction(name string, functionType Type) Function
	// Param returns the index-th parameter of a function as a value.
	Param(fn Function, index int) Value
	// CreateBlock appends a basic block to a function.
	CreateBlock(fn Function, name string) Block
	// SetInsertPoint directs subsequent instructions into a block.
	SetInsertPoint(b Block)
	// InsertBlock returns the current insertion block.
	InsertBlock() Block

	// ConstBool materializes a boolean constant.
	ConstBool(v bool) Value
	// ConstInt materializes an integer constant of the given type from its
	// raw bits.
	ConstInt(t Type, bits uint64) Value
	// ConstFloat materializes a floating-point constant of the given type.
	ConstFloat(t Type, v float64) Value

	// Binary emits a binary instruction.
	Binary(op BinaryOp, lhs Value, rhs Value) Value
	// Compare emits a comparison yielding a bool value.
	Compare(pred ComparePredicate, lhs Value, rhs Value) Value
	// Not emits a bitwise/boolean complement.
	Not(v Value) Value
	// Neg emits an arithmetic negation.
	Neg(v Value) Value
	// Convert emits the numeric conversion chain from the value's type to
	// the target type.
	Convert(v Value, to Type) Value

	// Alloca emits a stack allocation and returns the pointer.
	Alloca(t Type, name string) Value
	// Load emits a load of the given type through a pointer.
	Load(t Type, pointer Value) Value
	// Store emits a store of a value through a pointer.
	Store(v Value, pointer Value)
	// Call emits a call.
	Call(fn Function, args []Value) Value
	// Br emits an unconditional branch, terminating the current block.
	Br(target Block)
	// CondBr emits a conditional branch, terminating the current block.
	CondBr(condition Value, thenBlock Block, elseBlock Block)
	// Ret emits a valued return, terminating the current block.
	Ret(v Value)
	// RetVoid emits a void return, terminating the current block.
	RetVoid()

	// WriteObjectFile writes the lowered module to a path, classifying
	// failures into the Err* values of this package.
	WriteObjectFile(path string) error
}

// Context wraps the backend handed to every lowering entry point. It
// implements typelogic.Target so the type logic can query the pointer
// width.
type Context struct {
	backend Backend
}

// NewContext creates a codegen context over a backend.
func NewContext(backend Backend) *Context {
	return &Context{backend: backend}
}

// Backend returns the wrapped backend.
func (c *Context) Backend() Backend {
	return c.backend
}

// PointerBitWidth implements typelogic.Target.
func (c *Context) PointerBitWidth() int {
	return c.backend.PointerBitWidth()
}
