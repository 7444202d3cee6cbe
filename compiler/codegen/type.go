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

package codegen

import (
	"fmt"

	"forge/compiler/ast"
	"forge/compiler/syntax"
)

// EmitType lowers a resolved Forge type to a backend type.
func EmitType(ctx *Context, t ast.Type) (Type, error) {
	if syntax.IsNilNode(t) {
		return nil, fmt.Errorf("cannot lower a null type")
	}
	b := ctx.Backend()

	switch n := t.(type) {
	case *ast.TypeBasic:
		switch n.BasicKind {
		case ast.BasicBool:
			return b.BoolType(), nil
		case ast.BasicVoid:
			return b.VoidType(), nil
		case ast.BasicISize:
			return b.IntType(b.PointerBitWidth(), true), nil
		case ast.BasicUSize:
			return b.IntType(b.PointerBitWidth(), false), nil
		}
		return nil, fmt.Errorf("unknown basic type kind %v", n.BasicKind)

	case *ast.TypeWithBitWidth:
		switch n.NumericKind {
		case ast.NumericSignedInt:
			return b.IntType(n.BitWidth, true), nil
		case ast.NumericUnsignedInt:
			return b.IntType(n.BitWidth, false), nil
		case ast.NumericFloat:
			return b.FloatType(n.BitWidth), nil
		}
		return nil, fmt.Errorf("unknown numeric type kind %v", n.NumericKind)

	case *ast.TypeSymbol:
		if syntax.IsNilNode(n.ReferencedDeclaration) {
			return nil, fmt.Errorf("type symbol %q is unresolved", n.Name)
		}
		underlying := n.ReferencedDeclaration.ResolvedType()
		if syntax.IsNilNode(underlying) {
			return nil, fmt.Errorf("type symbol %q has no resolved type", n.Name)
		}
		return EmitType(ctx, underlying)

	case *ast.TypeUnary:
		element, err := EmitType(ctx, n.OperandType)
		if err != nil {
			return nil, err
		}
		return b.PointerType(element), nil

	case *ast.TypeFunction:
		returnType, err := EmitType(ctx, n.ReturnType)
		if err != nil {
			return nil, err
		}
		argTypes := make([]Type, 0, len(n.ArgTypes))
		for _, arg := range n.ArgTypes {
			argType, err := EmitType(ctx, arg)
			if err != nil {
				return nil, err
			}
			argTypes = append(argTypes, argType)
		}
		return b.FunctionType(returnType, argTypes), nil

	case *ast.TypeStructured:
		// TODO: lower structured types once member layout is designed.
		return nil, fmt.Errorf("structured types cannot be lowered yet")
	}

	return nil, fmt.Errorf("unknown type node %T", t)
}
