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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/codegen"
)

func TestMachineExecutesArithmetic(t *testing.T) {
	b := NewBackend(64)
	i32 := b.IntType(32, true)
	fnType := b.FunctionType(i32, []codegen.Type{i32, i32})
	fn := b.CreateFunction("add", fnType)
	entry := b.CreateBlock(fn, "entry")
	b.SetInsertPoint(entry)
	sum := b.Binary(codegen.OpAdd, b.Param(fn, 0), b.Param(fn, 1))
	b.Ret(sum)

	machine := NewMachine(b)
	result, err := machine.Call("add", I32(2), I32(40))
	require.NoError(t, err)
	assert.True(t, result.Equal(I32(42)), "got %s", result)
}

func TestMachineBranchesAndMemory(t *testing.T) {
	// abs(x): if x < 0 { return -x; } return x; via alloca'd storage.
	b := NewBackend(64)
	i32 := b.IntType(32, true)
	fn := b.CreateFunction("abs", b.FunctionType(i32, []codegen.Type{i32}))
	entry := b.CreateBlock(fn, "entry")
	negative := b.CreateBlock(fn, "negative")
	positive := b.CreateBlock(fn, "positive")

	b.SetInsertPoint(entry)
	slot := b.Alloca(i32, "x")
	b.Store(b.Param(fn, 0), slot)
	loaded := b.Load(i32, slot)
	isNegative := b.Compare(codegen.PredLt, loaded, b.ConstInt(i32, 0))
	b.CondBr(isNegative, negative, positive)

	b.SetInsertPoint(negative)
	b.Ret(b.Neg(b.Load(i32, slot)))

	b.SetInsertPoint(positive)
	b.Ret(b.Load(i32, slot))

	machine := NewMachine(b)
	result, err := machine.Call("abs", I32(-7))
	require.NoError(t, err)
	assert.True(t, result.Equal(I32(7)), "got %s", result)

	result, err = machine.Call("abs", I32(9))
	require.NoError(t, err)
	assert.True(t, result.Equal(I32(9)), "got %s", result)
}

func TestMachineIntegerWrapping(t *testing.T) {
	b := NewBackend(64)
	u8 := b.IntType(8, false)
	fn := b.CreateFunction("wrap", b.FunctionType(u8, []codegen.Type{u8}))
	entry := b.CreateBlock(fn, "entry")
	b.SetInsertPoint(entry)
	b.Ret(b.Binary(codegen.OpAdd, b.Param(fn, 0), b.ConstInt(u8, 1)))

	machine := NewMachine(b)
	result, err := machine.Call("wrap", U8(255))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), result.AsU64(), "u8 arithmetic wraps")
}

func TestMachineDivisionByZero(t *testing.T) {
	b := NewBackend(64)
	i32 := b.IntType(32, true)
	fn := b.CreateFunction("div", b.FunctionType(i32, []codegen.Type{i32, i32}))
	entry := b.CreateBlock(fn, "entry")
	b.SetInsertPoint(entry)
	b.Ret(b.Binary(codegen.OpDiv, b.Param(fn, 0), b.Param(fn, 1)))

	machine := NewMachine(b)
	_, err := machine.Call("div", I32(1), I32(0))
	assert.Error(t, err)
}

func TestMachineConversions(t *testing.T) {
	b := NewBackend(64)
	f64 := b.FloatType(64)
	i8 := b.IntType(8, true)
	fn := b.CreateFunction("toF64", b.FunctionType(f64, []codegen.Type{i8}))
	entry := b.CreateBlock(fn, "entry")
	b.SetInsertPoint(entry)
	b.Ret(b.Convert(b.Param(fn, 0), f64))

	machine := NewMachine(b)
	result, err := machine.Call("toF64", I8(-3))
	require.NoError(t, err)
	assert.Equal(t, float64(-3), result.AsF64(), "signed values sign-extend before conversion")
}

func TestMachineCallBetweenFunctions(t *testing.T) {
	b := NewBackend(64)
	i32 := b.IntType(32, true)

	callee := b.CreateFunction("twice", b.FunctionType(i32, []codegen.Type{i32}))
	calleeEntry := b.CreateBlock(callee, "entry")
	b.SetInsertPoint(calleeEntry)
	b.Ret(b.Binary(codegen.OpMul, b.Param(callee, 0), b.ConstInt(i32, 2)))

	caller := b.CreateFunction("main", b.FunctionType(i32, nil))
	callerEntry := b.CreateBlock(caller, "entry")
	b.SetInsertPoint(callerEntry)
	b.Ret(b.Call(callee, []codegen.Value{b.ConstInt(i32, 21)}))

	machine := NewMachine(b)
	result, err := machine.Call("main")
	require.NoError(t, err)
	assert.True(t, result.Equal(I32(42)), "got %s", result)
}

func TestDumpListsFunctions(t *testing.T) {
	b := NewBackend(64)
	i32 := b.IntType(32, true)
	fn := b.CreateFunction("f", b.FunctionType(i32, []codegen.Type{i32}))
	entry := b.CreateBlock(fn, "entry")
	b.SetInsertPoint(entry)
	b.Ret(b.Param(fn, 0))

	dump := b.Dump()
	assert.Contains(t, dump, "func @f(%arg0: i32) -> i32 {")
	assert.Contains(t, dump, "ret %arg0")
}
