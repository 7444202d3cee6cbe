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
	"errors"
	"fmt"
	"math"

	"forge/compiler/codegen"
)

// cell is one unit of interpreter memory, created by alloca.
type cell struct {
	value Const
	set   bool
}

// Const is a runtime value of the interpreter: a typed scalar, or a pointer
// to a memory cell.
type Const struct {
	t    *irType
	i    uint64
	f    float64
	cell *cell
}

// Bool creates a boolean runtime value.
func Bool(v bool) Const {
	bits := uint64(0)
	if v {
		bits = 1
	}
	return Const{t: &irType{kind: kindBool}, i: bits}
}

// I8 creates an i8 runtime value.
func I8(v int8) Const {
	return Const{t: &irType{kind: kindInt, bits: 8, signed: true}, i: uint64(uint8(v))}
}

// I16 creates an i16 runtime value.
func I16(v int16) Const {
	return Const{t: &irType{kind: kindInt, bits: 16, signed: true}, i: uint64(uint16(v))}
}

// U8 creates a u8 runtime value.
func U8(v uint8) Const {
	return Const{t: &irType{kind: kindInt, bits: 8, signed: false}, i: uint64(v)}
}

// U16 creates a u16 runtime value.
func U16(v uint16) Const {
	return Const{t: &irType{kind: kindInt, bits: 16, signed: false}, i: uint64(v)}
}

// I32 creates an i32 runtime value.
func I32(v int32) Const {
	return Const{t: &irType{kind: kindInt, bits: 32, signed: true}, i: uint64(uint32(v))}
}

// I64 creates an i64 runtime value.
func I64(v int64) Const {
	return Const{t: &irType{kind: kindInt, bits: 64, signed: true}, i: uint64(v)}
}

// U32 creates a u32 runtime value.
func U32(v uint32) Const {
	return Const{t: &irType{kind: kindInt, bits: 32, signed: false}, i: uint64(v)}
}

// U64 creates a u64 runtime value.
func U64(v uint64) Const {
	return Const{t: &irType{kind: kindInt, bits: 64, signed: false}, i: v}
}

// F32 creates an f32 runtime value.
func F32(v float32) Const {
	return Const{t: &irType{kind: kindFloat, bits: 32}, f: float64(v)}
}

// F64 creates an f64 runtime value.
func F64(v float64) Const {
	return Const{t: &irType{kind: kindFloat, bits: 64}, f: v}
}

// IsVoid reports whether the value is the void result of a void function.
func (c Const) IsVoid() bool {
	return c.t == nil || c.t.kind == kindVoid
}

// AsBool returns the value as a bool.
func (c Const) AsBool() bool {
	return c.i != 0
}

// AsI32 returns the value as an int32.
func (c Const) AsI32() int32 {
	return int32(c.i)
}

// AsI64 returns the value sign-extended to an int64.
func (c Const) AsI64() int64 {
	if c.t != nil && c.t.kind == kindInt {
		return signExtend(c.i, c.t.bits)
	}
	return int64(c.i)
}

// AsU64 returns the raw unsigned bits of the value.
func (c Const) AsU64() uint64 {
	return c.i
}

// AsF32 returns the value as a float32.
func (c Const) AsF32() float32 {
	return float32(c.f)
}

// AsF64 returns the value as a float64.
func (c Const) AsF64() float64 {
	return c.f
}

// Equal compares two runtime values structurally: same type shape, same
// scalar value.
func (c Const) Equal(other Const) bool {
	if c.IsVoid() || other.IsVoid() {
		return c.IsVoid() == other.IsVoid()
	}
	if c.t.kind != other.t.kind || c.t.bits != other.t.bits || c.t.signed != other.t.signed {
		return false
	}
	if c.t.kind == kindFloat {
		return c.f == other.f
	}
	return c.i == other.i
}

// String renders the value for test failure output.
func (c Const) String() string {
	switch {
	case c.IsVoid():
		return "void"
	case c.t.kind == kindBool:
		return fmt.Sprintf("%v", c.AsBool())
	case c.t.kind == kindFloat:
		return fmt.Sprintf("%g:%s", c.f, c.t)
	case c.t.kind == kindPointer:
		return "ptr"
	case c.t.signed:
		return fmt.Sprintf("%d:%s", signExtend(c.i, c.t.bits), c.t)
	default:
		return fmt.Sprintf("%d:%s", c.i, c.t)
	}
}

// errStepLimit is returned when execution does not finish within the step
// budget, which in tests means a lowering bug created an endless loop.
var errStepLimit = errors.New("execution exceeded the step limit")

// maxSteps bounds interpreter execution.
const maxSteps = 50_000_000

// Machine executes lowered functions by direct interpretation of the IR. It
// plays the role the JIT plays for a native backend.
type Machine struct {
	backend *Backend
	steps   int
}

// NewMachine creates a machine over a backend's finished module.
func NewMachine(backend *Backend) *Machine {
	return &Machine{backend: backend}
}

// Call invokes a function by name with the given arguments.
func (m *Machine) Call(name string, args ...Const) (Const, error) {
	fn, err := m.backend.Function(name)
	if err != nil {
		return Const{}, err
	}
	m.steps = 0
	return m.call(fn, args)
}

// call executes one function frame.
func (m *Machine) call(fn *irFunction, args []Const) (Const, error) {
	if len(fn.blocks) == 0 {
		return Const{}, fmt.Errorf("function %q has no body", fn.name)
	}
	if len(args) != len(fn.params) {
		return Const{}, fmt.Errorf("function %q takes %d arguments, got %d",
			fn.name, len(fn.params), len(args))
	}

	env := make(map[*instruction]Const)
	resolve := func(v irValue) Const {
		switch value := v.(type) {
		case *constValue:
			return Const{t: value.t, i: value.i, f: value.f}
		case *paramValue:
			return args[value.index]
		case *instruction:
			return env[value]
		}
		panic(fmt.Sprintf("unknown IR value %T", v))
	}

	block := fn.blocks[0]
	index := 0
	for {
		if index >= len(block.instrs) {
			return Const{}, fmt.Errorf("block %q in %q has no terminator", block.name, fn.name)
		}
		m.steps++
		if m.steps > maxSteps {
			return Const{}, errStepLimit
		}

		instr := block.instrs[index]
		switch instr.op {
		case opBinary:
			result, err := applyBinary(instr.binOp, resolve(instr.operands[0]), resolve(instr.operands[1]))
			if err != nil {
				return Const{}, err
			}
			env[instr] = result

		case opCompare:
			env[instr] = applyCompare(instr.pred, resolve(instr.operands[0]), resolve(instr.operands[1]))

		case opNot:
			operand := resolve(instr.operands[0])
			operand.i = ^operand.i & mask(operand.t.bitsOrOne())
			env[instr] = operand

		case opNeg:
			operand := resolve(instr.operands[0])
			if operand.t.kind == kindFloat {
				operand.f = -operand.f
			} else {
				operand.i = (-operand.i) & mask(operand.t.bits)
			}
			env[instr] = operand

		case opConvert:
			env[instr] = convert(resolve(instr.operands[0]), instr.t)

		case opAlloca:
			env[instr] = Const{t: instr.t, cell: &cell{}}

		case opLoad:
			pointer := resolve(instr.operands[0])
			if pointer.cell == nil || !pointer.cell.set {
				return Const{}, fmt.Errorf("load from uninitialized storage in %q", fn.name)
			}
			env[instr] = pointer.cell.value

		case opStore:
			value := resolve(instr.operands[0])
			pointer := resolve(instr.operands[1])
			if pointer.cell == nil {
				return Const{}, fmt.Errorf("store through a non-pointer in %q", fn.name)
			}
			pointer.cell.value = value
			pointer.cell.set = true

		case opCall:
			callArgs := make([]Const, len(instr.operands))
			for i, operand := range instr.operands {
				callArgs[i] = resolve(operand)
			}
			result, err := m.call(instr.callee, callArgs)
			if err != nil {
				return Const{}, err
			}
			env[instr] = result

		case opBr:
			block = instr.targets[0]
			index = 0
			continue

		case opCondBr:
			if resolve(instr.operands[0]).i != 0 {
				block = instr.targets[0]
			} else {
				block = instr.targets[1]
			}
			index = 0
			continue

		case opRet:
			return resolve(instr.operands[0]), nil

		case opRetVoid:
			return Const{t: &irType{kind: kindVoid}}, nil

		default:
			return Const{}, fmt.Errorf("unknown opcode %d", instr.op)
		}
		index++
	}
}

// bitsOrOne returns the type's width, treating bool as one bit.
func (t *irType) bitsOrOne() int {
	if t.kind == kindBool {
		return 1
	}
	return t.bits
}

// mask returns a bit mask of the given width.
func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// signExtend interprets the low bits of raw as a two's-complement signed
// value.
func signExtend(raw uint64, bits int) int64 {
	shift := uint(64 - bits)
	return int64(raw<<shift) >> shift
}

// applyBinary evaluates a binary operation. Integer arithmetic wraps at the
// operand width; float arithmetic follows float64 semantics with a rounding
// pass for f32.
func applyBinary(op codegen.BinaryOp, lhs Const, rhs Const) (Const, error) {
	t := lhs.t

	if t.kind == kindFloat {
		var result float64
		switch op {
		case codegen.OpAdd:
			result = lhs.f + rhs.f
		case codegen.OpSub:
			result = lhs.f - rhs.f
		case codegen.OpMul:
			result = lhs.f * rhs.f
		case codegen.OpDiv:
			result = lhs.f / rhs.f
		case codegen.OpRem:
			result = math.Mod(lhs.f, rhs.f)
		case codegen.OpExp:
			result = math.Pow(lhs.f, rhs.f)
		default:
			return Const{}, fmt.Errorf("operation %d is not defined on floats", op)
		}
		return Const{t: t, f: roundToWidth(result, t.bits)}, nil
	}

	width := t.bitsOrOne()
	var result uint64
	switch op {
	case codegen.OpAdd:
		result = lhs.i + rhs.i
	case codegen.OpSub:
		result = lhs.i - rhs.i
	case codegen.OpMul:
		result = lhs.i * rhs.i
	case codegen.OpDiv:
		if rhs.i == 0 {
			return Const{}, errors.New("division by zero")
		}
		if t.signed {
			result = uint64(signExtend(lhs.i, width) / signExtend(rhs.i, width))
		} else {
			result = lhs.i / rhs.i
		}
	case codegen.OpRem:
		if rhs.i == 0 {
			return Const{}, errors.New("division by zero")
		}
		if t.signed {
			result = uint64(signExtend(lhs.i, width) % signExtend(rhs.i, width))
		} else {
			result = lhs.i % rhs.i
		}
	case codegen.OpExp:
		result = integerPow(lhs.i, rhs.i)
	case codegen.OpAnd:
		result = lhs.i & rhs.i
	case codegen.OpOr:
		result = lhs.i | rhs.i
	case codegen.OpXor:
		result = lhs.i ^ rhs.i
	case codegen.OpShl:
		result = lhs.i << (rhs.i & 63)
	case codegen.OpShr:
		if t.signed {
			result = uint64(signExtend(lhs.i, width) >> (rhs.i & 63))
		} else {
			result = lhs.i >> (rhs.i & 63)
		}
	default:
		return Const{}, fmt.Errorf("unknown binary operation %d", op)
	}
	return Const{t: t, i: result & mask(width)}, nil
}

// integerPow is exponentiation by squaring with wrapping multiplication.
func integerPow(base uint64, exponent uint64) uint64 {
	result := uint64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return result
}

// applyCompare evaluates a comparison to a bool value.
func applyCompare(pred codegen.ComparePredicate, lhs Const, rhs Const) Const {
	var less, equal bool
	switch {
	case lhs.t.kind == kindFloat:
		less, equal = lhs.f < rhs.f, lhs.f == rhs.f
	case lhs.t.kind == kindInt && lhs.t.signed:
		l, r := signExtend(lhs.i, lhs.t.bits), signExtend(rhs.i, rhs.t.bits)
		less, equal = l < r, l == r
	default:
		less, equal = lhs.i < rhs.i, lhs.i == rhs.i
	}

	var result bool
	switch pred {
	case codegen.PredEq:
		result = equal
	case codegen.PredNe:
		result = !equal
	case codegen.PredLt:
		result = less
	case codegen.PredLe:
		result = less || equal
	case codegen.PredGt:
		result = !less && !equal
	case codegen.PredGe:
		result = !less
	}
	return Bool(result)
}

// convert performs a numeric conversion to the target type.
func convert(v Const, to *irType) Const {
	switch {
	case to.kind == kindFloat && v.t.kind == kindFloat:
		return Const{t: to, f: roundToWidth(v.f, to.bits)}

	case to.kind == kindFloat:
		// Integer (or bool) to float.
		var value float64
		if v.t.kind == kindInt && v.t.signed {
			value = float64(signExtend(v.i, v.t.bits))
		} else {
			value = float64(v.i)
		}
		return Const{t: to, f: roundToWidth(value, to.bits)}

	case v.t.kind == kindFloat:
		// Float to integer truncates toward zero.
		if to.signed {
			return Const{t: to, i: uint64(int64(v.f)) & mask(to.bits)}
		}
		return Const{t: to, i: uint64(v.f) & mask(to.bits)}

	default:
		// Integer to integer: sign-extend from the source when it is
		// signed, then truncate to the target width.
		raw := v.i
		if v.t.kind == kindInt && v.t.signed {
			raw = uint64(signExtend(v.i, v.t.bits))
		}
		return Const{t: to, i: raw & mask(to.bitsOrOne())}
	}
}

// roundToWidth rounds a float64 through float32 when the target is 32 bits
// wide.
func roundToWidth(v float64, bits int) float64 {
	if bits == 32 {
		return float64(float32(v))
	}
	return v
}
