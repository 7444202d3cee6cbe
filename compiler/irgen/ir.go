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

// Package irgen is the reference backend for the codegen contract: a small
// block-structured IR in the alloca/load/store style, plus an interpreter
// (Machine) that executes lowered functions directly. It stands in for a
// native-code backend in tests and in the CLI's IR listing output.
package irgen

import (
	"fmt"
	"strings"

	"forge/compiler/codegen"
)

// typeKind discriminates IR types.
type typeKind int

const (
	kindVoid typeKind = iota
	kindBool
	kindInt
	kindFloat
	kindPointer
	kindFunction
)

// irType is an IR type. Types are not interned: every constructor call
// allocates a new value, so identical types are compared field by field.
type irType struct {
	kind   typeKind
	bits   int
	signed bool
	elem   *irType
	ret    *irType
	args   []*irType
}

// String renders the type for IR listings.
func (t *irType) String() string {
	switch t.kind {
	case kindVoid:
		return "void"
	case kindBool:
		return "i1"
	case kindInt:
		prefix := "u"
		if t.signed {
			prefix = "i"
		}
		return fmt.Sprintf("%s%d", prefix, t.bits)
	case kindFloat:
		return fmt.Sprintf("f%d", t.bits)
	case kindPointer:
		return "*" + t.elem.String()
	case kindFunction:
		args := make([]string, len(t.args))
		for i, arg := range t.args {
			args[i] = arg.String()
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(args, ", "), t.ret.String())
	}
	return "?"
}

// irValue is anything an instruction can take as an operand: a constant, a
// function parameter, or the result of another instruction.
type irValue interface {
	valueType() *irType
}

// constValue is a literal constant.
type constValue struct {
	t *irType
	// i holds the raw bits for bool and integer constants.
	i uint64
	// f holds the value for float constants.
	f float64
}

func (v *constValue) valueType() *irType { return v.t }

// paramValue is a reference to a function parameter.
type paramValue struct {
	t     *irType
	index int
}

func (v *paramValue) valueType() *irType { return v.t }

// opcode discriminates instructions.
type opcode int

const (
	opBinary opcode = iota
	opCompare
	opNot
	opNeg
	opConvert
	opAlloca
	opLoad
	opStore
	opCall
	opBr
	opCondBr
	opRet
	opRetVoid
)

// instruction is one IR instruction. Instructions that produce a result are
// themselves irValues.
type instruction struct {
	id       int
	op       opcode
	t        *irType
	binOp    codegen.BinaryOp
	pred     codegen.ComparePredicate
	operands []irValue
	callee   *irFunction
	targets  []*irBlock
	name     string
}

func (v *instruction) valueType() *irType { return v.t }

// terminates reports whether the instruction ends its block.
func (v *instruction) terminates() bool {
	switch v.op {
	case opBr, opCondBr, opRet, opRetVoid:
		return true
	}
	return false
}

// irBlock is a basic block: a named sequence of instructions ending in a
// terminator.
type irBlock struct {
	id     int
	name   string
	fn     *irFunction
	instrs []*instruction
}

// irFunction is a function: a typed signature plus basic blocks. A function
// with no blocks is a declaration only.
type irFunction struct {
	name   string
	t      *irType
	params []*paramValue
	blocks []*irBlock
}
