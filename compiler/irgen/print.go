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
	"strings"

	"forge/compiler/codegen"
)

// binaryOpNames maps backend binary ops to listing mnemonics.
var binaryOpNames = map[codegen.BinaryOp]string{
	codegen.OpAdd: "add",
	codegen.OpSub: "sub",
	codegen.OpMul: "mul",
	codegen.OpDiv: "div",
	codegen.OpRem: "rem",
	codegen.OpExp: "exp",
	codegen.OpAnd: "and",
	codegen.OpOr:  "or",
	codegen.OpXor: "xor",
	codegen.OpShl: "shl",
	codegen.OpShr: "shr",
}

// predicateNames maps comparison predicates to listing mnemonics.
var predicateNames = map[codegen.ComparePredicate]string{
	codegen.PredEq: "eq",
	codegen.PredNe: "ne",
	codegen.PredLt: "lt",
	codegen.PredLe: "le",
	codegen.PredGt: "gt",
	codegen.PredGe: "ge",
}

// Dump renders the whole module as a deterministic textual listing.
func (b *Backend) Dump() string {
	var out strings.Builder
	for i, fn := range b.functions {
		if i > 0 {
			out.WriteString("\n")
		}
		dumpFunction(&out, fn)
	}
	return out.String()
}

// dumpFunction renders one function.
func dumpFunction(out *strings.Builder, fn *irFunction) {
	args := make([]string, len(fn.params))
	for i, param := range fn.params {
		args[i] = fmt.Sprintf("%%arg%d: %s", i, param.t)
	}
	fmt.Fprintf(out, "func @%s(%s) -> %s", fn.name, strings.Join(args, ", "), fn.t.ret)
	if len(fn.blocks) == 0 {
		out.WriteString("\n")
		return
	}
	out.WriteString(" {\n")
	for _, block := range fn.blocks {
		fmt.Fprintf(out, "%s.%d:\n", block.name, block.id)
		for _, instr := range block.instrs {
			out.WriteString("  ")
			dumpInstruction(out, instr)
			out.WriteString("\n")
		}
	}
	out.WriteString("}\n")
}

// dumpInstruction renders one instruction.
func dumpInstruction(out *strings.Builder, instr *instruction) {
	switch instr.op {
	case opBinary:
		fmt.Fprintf(out, "%%%d = %s %s, %s", instr.id,
			binaryOpNames[instr.binOp], operandString(instr.operands[0]), operandString(instr.operands[1]))
	case opCompare:
		fmt.Fprintf(out, "%%%d = cmp %s %s, %s", instr.id,
			predicateNames[instr.pred], operandString(instr.operands[0]), operandString(instr.operands[1]))
	case opNot:
		fmt.Fprintf(out, "%%%d = not %s", instr.id, operandString(instr.operands[0]))
	case opNeg:
		fmt.Fprintf(out, "%%%d = neg %s", instr.id, operandString(instr.operands[0]))
	case opConvert:
		fmt.Fprintf(out, "%%%d = convert %s to %s", instr.id, operandString(instr.operands[0]), instr.t)
	case opAlloca:
		fmt.Fprintf(out, "%%%d = alloca %s ; %s", instr.id, instr.t.elem, instr.name)
	case opLoad:
		fmt.Fprintf(out, "%%%d = load %s, %s", instr.id, instr.t, operandString(instr.operands[0]))
	case opStore:
		fmt.Fprintf(out, "store %s, %s", operandString(instr.operands[0]), operandString(instr.operands[1]))
	case opCall:
		args := make([]string, len(instr.operands))
		for i, operand := range instr.operands {
			args[i] = operandString(operand)
		}
		fmt.Fprintf(out, "%%%d = call @%s(%s)", instr.id, instr.callee.name, strings.Join(args, ", "))
	case opBr:
		fmt.Fprintf(out, "br %s.%d", instr.targets[0].name, instr.targets[0].id)
	case opCondBr:
		fmt.Fprintf(out, "condbr %s, %s.%d, %s.%d", operandString(instr.operands[0]),
			instr.targets[0].name, instr.targets[0].id, instr.targets[1].name, instr.targets[1].id)
	case opRet:
		fmt.Fprintf(out, "ret %s", operandString(instr.operands[0]))
	case opRetVoid:
		out.WriteString("ret void")
	}
}

// operandString renders an operand reference.
func operandString(v irValue) string {
	switch value := v.(type) {
	case *constValue:
		if value.t.kind == kindFloat {
			return fmt.Sprintf("%g:%s", value.f, value.t)
		}
		return fmt.Sprintf("%d:%s", value.i, value.t)
	case *paramValue:
		return fmt.Sprintf("%%arg%d", value.index)
	case *instruction:
		return fmt.Sprintf("%%%d", value.id)
	}
	return "?"
}
