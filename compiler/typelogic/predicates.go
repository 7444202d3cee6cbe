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

// Package typelogic implements the Forge type predicates and the two core
// type decisions built on them: the arithmetic containing type for binary
// operands, and the implicit/explicit/illegal classification of casts.
package typelogic

import (
	"forge/compiler/ast"
	"forge/compiler/syntax"
)

// Target exposes the property of the compilation target the type logic
// depends on: the width of a pointer, which is also the width of the isize
// and usize types.
type Target interface {
	PointerBitWidth() int
}

// IsVoid reports whether t is the void type.
func IsVoid(t ast.Type) bool {
	basic, ok := syntax.TryCast[*ast.TypeBasic](t)
	return ok && basic.BasicKind == ast.BasicVoid
}

// IsBool reports whether t is the bool type.
func IsBool(t ast.Type) bool {
	basic, ok := syntax.TryCast[*ast.TypeBasic](t)
	return ok && basic.BasicKind == ast.BasicBool
}

// IsInteger reports whether t is an integer type (explicit-width or
// pointer-sized).
func IsInteger(t ast.Type) bool {
	if basic, ok := syntax.TryCast[*ast.TypeBasic](t); ok {
		return basic.BasicKind == ast.BasicISize || basic.BasicKind == ast.BasicUSize
	}
	if numeric, ok := syntax.TryCast[*ast.TypeWithBitWidth](t); ok {
		return numeric.NumericKind == ast.NumericSignedInt ||
			numeric.NumericKind == ast.NumericUnsignedInt
	}
	return false
}

// IsFloat reports whether t is a floating-point type.
func IsFloat(t ast.Type) bool {
	numeric, ok := syntax.TryCast[*ast.TypeWithBitWidth](t)
	return ok && numeric.NumericKind == ast.NumericFloat
}

// IsNumber reports whether t is an integer or floating-point type.
func IsNumber(t ast.Type) bool {
	return IsInteger(t) || IsFloat(t)
}

// IsPointer reports whether t is a pointer type.
func IsPointer(t ast.Type) bool {
	unary, ok := syntax.TryCast[*ast.TypeUnary](t)
	return ok && unary.UnaryKind == ast.TypeUnaryPointer
}

// IntegerSignedness returns whether an integer type is signed. The second
// return value is false for non-integer types.
func IntegerSignedness(t ast.Type) (bool, bool) {
	if basic, ok := syntax.TryCast[*ast.TypeBasic](t); ok {
		switch basic.BasicKind {
		case ast.BasicISize:
			return true, true
		case ast.BasicUSize:
			return false, true
		}
		return false, false
	}
	if numeric, ok := syntax.TryCast[*ast.TypeWithBitWidth](t); ok {
		switch numeric.NumericKind {
		case ast.NumericSignedInt:
			return true, true
		case ast.NumericUnsignedInt:
			return false, true
		}
	}
	return false, false
}

// NumberBitWidth returns the bit width of a number type, using the target's
// pointer width for isize and usize. The second return value is false for
// non-number types.
func NumberBitWidth(target Target, t ast.Type) (int, bool) {
	if numeric, ok := syntax.TryCast[*ast.TypeWithBitWidth](t); ok {
		return numeric.BitWidth, true
	}
	if basic, ok := syntax.TryCast[*ast.TypeBasic](t); ok {
		if basic.BasicKind == ast.BasicISize || basic.BasicKind == ast.BasicUSize {
			return target.PointerBitWidth(), true
		}
	}
	return 0, false
}

// PointerElement returns the element type of a pointer type, or nil for
// non-pointer types.
func PointerElement(t ast.Type) ast.Type {
	if unary, ok := syntax.TryCast[*ast.TypeUnary](t); ok {
		return unary.OperandType
	}
	return nil
}
