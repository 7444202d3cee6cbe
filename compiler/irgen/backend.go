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

package irgen

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"forge/compiler/codegen"
)

// Backend implements the codegen backend contract over the package's IR.
type Backend struct {
	pointerBits int
	functions   []*irFunction
	byName      map[string]*irFunction
	insert      *irBlock
	nextID      int
}

// NewBackend creates a backend for a target with the given pointer width.
func NewBackend(pointerBits int) *Backend {
	return &Backend{
		pointerBits: pointerBits,
		byName:      make(map[string]*irFunction),
	}
}

// PointerBitWidth implements codegen.Backend.
func (b *Backend) PointerBitWidth() int {
	return b.pointerBits
}

// VoidType implements codegen.Backend.
func (b *Backend) VoidType() codegen.Type { return &irType{kind: kindVoid} }

// BoolType implements codegen.Backend.
func (b *Backend) BoolType() codegen.Type { return &irType{kind: kindBool} }

// IntType implements codegen.Backend.
func (b *Backend) IntType(bits int, signed bool) codegen.Type {
	return &irType{kind: kindInt, bits: bits, signed: signed}
}

// FloatType implements codegen.Backend.
func (b *Backend) FloatType(bits int) codegen.Type {
	return &irType{kind: kindFloat, bits: bits}
}

// PointerType implements codegen.Backend.
func (b *Backend) PointerType(element codegen.Type) codegen.Type {
	return &irType{kind: kindPointer, elem: element.(*irType)}
}

// FunctionType implements codegen.Backend.
func (b *Backend) FunctionType(returnType codegen.Type, argTypes []codegen.Type) codegen.Type {
	args := make([]*irType, len(argTypes))
	for i, arg := range argTypes {
		args[i] = arg.(*irType)
	}
	return &irType{kind: kindFunction, ret: returnType.(*irType), args: args}
}

// CreateFunction implements codegen.Backend.
func (b *Backend) CreateFunction(name string, functionType codegen.Type) codegen.Function {
	t := functionType.(*irType)
	params := make([]*paramValue, len(t.args))
	for i, arg := range t.args {
		params[i] = &paramValue{t: arg, index: i}
	}
	fn := &irFunction{name: name, t: t, params: params}
	b.functions = append(b.functions, fn)
	b.byName[name] = fn
	return fn
}

// Param implements codegen.Backend.
func (b *Backend) Param(fn codegen.Function, index int) codegen.Value {
	return fn.(*irFunction).params[index]
}

// CreateBlock implements codegen.Backend.
func (b *Backend) CreateBlock(fn codegen.Function, name string) codegen.Block {
	function := fn.(*irFunction)
	b.nextID++
	block := &irBlock{id: b.nextID, name: name, fn: function}
	function.blocks = append(function.blocks, block)
	return block
}

// SetInsertPoint implements codegen.Backend.
func (b *Backend) SetInsertPoint(block codegen.Block) {
	b.insert = block.(*irBlock)
}

// InsertBlock implements codegen.Backend.
func (b *Backend) InsertBlock() codegen.Block {
	return b.insert
}

// emit appends an instruction at the insertion point. Instructions emitted
// after a terminator would be unreachable; that is an internal error in the
// lowering driver, so it panics.
func (b *Backend) emit(instr *instruction) *instruction {
	if b.insert == nil {
		panic("irgen: no insertion point set")
	}
	if count := len(b.insert.instrs); count > 0 && b.insert.instrs[count-1].terminates() {
		panic("irgen: emitting an instruction after a block terminator")
	}
	b.nextID++
	instr.id = b.nextID
	b.insert.instrs = append(b.insert.instrs, instr)
	return instr
}

// ConstBool implements codegen.Backend.
func (b *Backend) ConstBool(v bool) codegen.Value {
	bits := uint64(0)
	if v {
		bits = 1
	}
	return &constValue{t: &irType{kind: kindBool}, i: bits}
}

// ConstInt implements codegen.Backend.
func (b *Backend) ConstInt(t codegen.Type, bits uint64) codegen.Value {
	return &constValue{t: t.(*irType), i: bits}
}

// ConstFloat implements codegen.Backend.
func (b *Backend) ConstFloat(t codegen.Type, v float64) codegen.Value {
	return &constValue{t: t.(*irType), f: v}
}

// Binary implements codegen.Backend. The result type is the left operand's
// type; the lowering driver widens operands beforehand.
func (b *Backend) Binary(op codegen.BinaryOp, lhs codegen.Value, rhs codegen.Value) codegen.Value {
	left := lhs.(irValue)
	return b.emit(&instruction{
		op:       opBinary,
		binOp:    op,
		t:        left.valueType(),
		operands: []irValue{left, rhs.(irValue)},
	})
}

// Compare implements codegen.Backend.
func (b *Backend) Compare(pred codegen.ComparePredicate, lhs codegen.Value, rhs codegen.Value) codegen.Value {
	return b.emit(&instruction{
		op:       opCompare,
		pred:     pred,
		t:        &irType{kind: kindBool},
		operands: []irValue{lhs.(irValue), rhs.(irValue)},
	})
}

// Not implements codegen.Backend.
func (b *Backend) Not(v codegen.Value) codegen.Value {
	operand := v.(irValue)
	return b.emit(&instruction{op: opNot, t: operand.valueType(), operands: []irValue{operand}})
}

// Neg implements codegen.Backend.
func (b *Backend) Neg(v codegen.Value) codegen.Value {
	operand := v.(irValue)
	return b.emit(&instruction{op: opNeg, t: operand.valueType(), operands: []irValue{operand}})
}

// Convert implements codegen.Backend.
func (b *Backend) Convert(v codegen.Value, to codegen.Type) codegen.Value {
	operand := v.(irValue)
	return b.emit(&instruction{op: opConvert, t: to.(*irType), operands: []irValue{operand}})
}

// Alloca implements codegen.Backend.
func (b *Backend) Alloca(t codegen.Type, name string) codegen.Value {
	element := t.(*irType)
	return b.emit(&instruction{
		op:   opAlloca,
		t:    &irType{kind: kindPointer, elem: element},
		name: name,
	})
}

// Load implements codegen.Backend.
func (b *Backend) Load(t codegen.Type, pointer codegen.Value) codegen.Value {
	return b.emit(&instruction{op: opLoad, t: t.(*irType), operands: []irValue{pointer.(irValue)}})
}

// Store implements codegen.Backend.
func (b *Backend) Store(v codegen.Value, pointer codegen.Value) {
	b.emit(&instruction{op: opStore, t: &irType{kind: kindVoid},
		operands: []irValue{v.(irValue), pointer.(irValue)}})
}

// Call implements codegen.Backend.
func (b *Backend) Call(fn codegen.Function, args []codegen.Value) codegen.Value {
	callee := fn.(*irFunction)
	operands := make([]irValue, len(args))
	for i, arg := range args {
		operands[i] = arg.(irValue)
	}
	return b.emit(&instruction{op: opCall, t: callee.t.ret, callee: callee, operands: operands})
}

// Br implements codegen.Backend.
func (b *Backend) Br(target codegen.Block) {
	b.emit(&instruction{op: opBr, t: &irType{kind: kindVoid},
		targets: []*irBlock{target.(*irBlock)}})
}

// CondBr implements codegen.Backend.
func (b *Backend) CondBr(condition codegen.Value, thenBlock codegen.Block, elseBlock codegen.Block) {
	b.emit(&instruction{op: opCondBr, t: &irType{kind: kindVoid},
		operands: []irValue{condition.(irValue)},
		targets:  []*irBlock{thenBlock.(*irBlock), elseBlock.(*irBlock)}})
}

// Ret implements codegen.Backend.
func (b *Backend) Ret(v codegen.Value) {
	b.emit(&instruction{op: opRet, t: &irType{kind: kindVoid}, operands: []irValue{v.(irValue)}})
}

// RetVoid implements codegen.Backend.
func (b *Backend) RetVoid() {
	b.emit(&instruction{op: opRetVoid, t: &irType{kind: kindVoid}})
}

// WriteObjectFile implements codegen.Backend. The reference backend emits a
// textual IR listing rather than a native object file; failures are
// classified per the contract.
func (b *Backend) WriteObjectFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return multierr.Append(codegen.ErrOutputOpen, err)
	}
	_, writeErr := file.WriteString(b.Dump())
	closeErr := file.Close()
	if err := multierr.Combine(writeErr, closeErr); err != nil {
		return multierr.Append(codegen.ErrOutputOpen, err)
	}
	return nil
}

// Function looks up a function by name.
func (b *Backend) Function(name string) (*irFunction, error) {
	fn, ok := b.byName[name]
	if !ok {
		return nil, fmt.Errorf("no function named %q", name)
	}
	return fn, nil
}
