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
	"forge/compiler/typelogic"
)

// binaryOps maps non-assigning Forge binary operators to backend ops.
var binaryOps = map[ast.BinaryOperator]BinaryOp{
	ast.BinaryAdd:    OpAdd,
	ast.BinarySub:    OpSub,
	ast.BinaryMul:    OpMul,
	ast.BinaryDiv:    OpDiv,
	ast.BinaryMod:    OpRem,
	ast.BinaryExp:    OpExp,
	ast.BinaryBitAnd: OpAnd,
	ast.BinaryBitOr:  OpOr,
	ast.BinaryBitXor: OpXor,
	ast.BinaryBitShl: OpShl,
	ast.BinaryBitShr: OpShr,
}

// comparePredicates maps Forge comparison operators to backend predicates.
var comparePredicates = map[ast.BinaryOperator]ComparePredicate{
	ast.BinaryEq: PredEq,
	ast.BinaryNe: PredNe,
	ast.BinaryLt: PredLt,
	ast.BinaryLe: PredLe,
	ast.BinaryGt: PredGt,
	ast.BinaryGe: PredGe,
}

// EmitValue lowers a value as an rvalue: the result handle holds the
// value itself, with loads emitted for anything that designates storage.
func EmitValue(ctx *Context, v ast.Value) (Value, error) {
	b := ctx.Backend()

	switch n := v.(type) {
	case *ast.ValueLiteralBool:
		return b.ConstBool(n.Value), nil

	case *ast.ValueLiteralNumber:
		literalType, err := EmitType(ctx, n.Type)
		if err != nil {
			return nil, err
		}
		switch n.Value.Kind {
		case ast.NumericFloat:
			return b.ConstFloat(literalType, n.Value.Float), nil
		case ast.NumericUnsignedInt:
			return b.ConstInt(literalType, n.Value.Uint), nil
		default:
			return b.ConstInt(literalType, uint64(n.Value.Int)), nil
		}

	case *ast.ValueSymbol:
		variable, ok := n.ReferencedDeclaration.(*ast.DeclarationVariable)
		if !ok {
			return nil, fmt.Errorf("symbol %q does not name a storable value", n.Name)
		}
		pointer, err := EmitValueLValue(ctx, n)
		if err != nil {
			return nil, err
		}
		variableType, err := EmitType(ctx, variable.ResolvedType())
		if err != nil {
			return nil, err
		}
		return b.Load(variableType, pointer), nil

	case *ast.ValueUnary:
		return emitValueUnary(ctx, n)

	case *ast.ValueBinary:
		return emitValueBinary(ctx, n)

	case *ast.ValueCall:
		return emitValueCall(ctx, n)

	case *ast.ValueCast:
		inner, err := EmitValue(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		targetType, err := EmitType(ctx, n.Type)
		if err != nil {
			return nil, err
		}
		return b.Convert(inner, targetType), nil
	}

	return nil, fmt.Errorf("unknown value node %T", v)
}

// EmitValueLValue lowers a value as an lvalue: the result handle is a
// pointer to the value's storage.
func EmitValueLValue(ctx *Context, v ast.Value) (Value, error) {
	switch n := v.(type) {
	case *ast.ValueSymbol:
		variable, ok := n.ReferencedDeclaration.(*ast.DeclarationVariable)
		if !ok {
			return nil, fmt.Errorf("symbol %q does not name assignable storage", n.Name)
		}
		pointer, ok := variable.Handle.(Value)
		if !ok || pointer == nil {
			return nil, fmt.Errorf("variable %q has no backend storage", n.Name)
		}
		return pointer, nil

	case *ast.ValueUnary:
		if n.Operator == ast.UnaryDeref {
			return EmitValue(ctx, n.Operand)
		}
	}
	return nil, fmt.Errorf("value %T is not an lvalue", v)
}

// EmitValueImplicitCast lowers a value and converts it to the expected
// type where the types differ. Only conversions the casting-mode table
// permits reach codegen; validation has rejected everything else.
func EmitValueImplicitCast(ctx *Context, v ast.Value, to ast.Type) (Value, error) {
	value, err := EmitValue(ctx, v)
	if err != nil {
		return nil, err
	}
	from := v.ResolvedType()
	if syntax.IsNilNode(from) || syntax.IsNilNode(to) || syntax.CompareNodes(from, to) {
		return value, nil
	}
	targetType, err := EmitType(ctx, to)
	if err != nil {
		return nil, err
	}
	return ctx.Backend().Convert(value, targetType), nil
}

// emitValueUnary lowers unary operations.
func emitValueUnary(ctx *Context, n *ast.ValueUnary) (Value, error) {
	b := ctx.Backend()

	switch n.Operator {
	case ast.UnaryPos:
		return EmitValue(ctx, n.Operand)

	case ast.UnaryBoolNot, ast.UnaryBitNot:
		operand, err := EmitValue(ctx, n.Operand)
		if err != nil {
			return nil, err
		}
		return b.Not(operand), nil

	case ast.UnaryNeg:
		operand, err := EmitValue(ctx, n.Operand)
		if err != nil {
			return nil, err
		}
		return b.Neg(operand), nil

	case ast.UnaryDeref:
		pointer, err := EmitValue(ctx, n.Operand)
		if err != nil {
			return nil, err
		}
		elementType, err := EmitType(ctx, n.ResolvedType())
		if err != nil {
			return nil, err
		}
		return b.Load(elementType, pointer), nil

	case ast.UnaryGetAddr:
		return EmitValueLValue(ctx, n.Operand)
	}

	return nil, fmt.Errorf("unknown unary operator %v", n.Operator)
}

// emitValueBinary lowers binary operations. Assignments store through the
// left operand's storage and yield the stored value; arithmetic operands
// are widened to the operation's containing type first.
func emitValueBinary(ctx *Context, n *ast.ValueBinary) (Value, error) {
	b := ctx.Backend()

	if n.Operator == ast.BinaryMemberAccess {
		return nil, fmt.Errorf("member access cannot be lowered yet")
	}

	if n.Operator.IsAssigning() {
		return emitValueAssignment(ctx, n)
	}

	if n.Operator.IsBoolean() {
		// Both operands are bools; evaluation is not short-circuiting.
		lhs, err := EmitValue(ctx, n.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := EmitValue(ctx, n.RHS)
		if err != nil {
			return nil, err
		}
		if n.Operator == ast.BinaryBoolAnd {
			return b.Binary(OpAnd, lhs, rhs), nil
		}
		return b.Binary(OpOr, lhs, rhs), nil
	}

	if pred, ok := comparePredicates[n.Operator]; ok {
		operandType := typelogic.ArithmeticContainingType(ctx,
			n.LHS.ResolvedType(), n.RHS.ResolvedType())
		if syntax.IsNilNode(operandType) {
			operandType = n.LHS.ResolvedType()
		}
		lhs, err := EmitValueImplicitCast(ctx, n.LHS, operandType)
		if err != nil {
			return nil, err
		}
		rhs, err := EmitValueImplicitCast(ctx, n.RHS, operandType)
		if err != nil {
			return nil, err
		}
		return b.Compare(pred, lhs, rhs), nil
	}

	op, ok := binaryOps[n.Operator]
	if !ok {
		return nil, fmt.Errorf("unknown binary operator %v", n.Operator)
	}
	resultType := n.ResolvedType()
	lhs, err := EmitValueImplicitCast(ctx, n.LHS, resultType)
	if err != nil {
		return nil, err
	}
	rhs, err := EmitValueImplicitCast(ctx, n.RHS, resultType)
	if err != nil {
		return nil, err
	}
	return b.Binary(op, lhs, rhs), nil
}

// emitValueAssignment lowers plain and compound assignments.
func emitValueAssignment(ctx *Context, n *ast.ValueBinary) (Value, error) {
	b := ctx.Backend()

	pointer, err := EmitValueLValue(ctx, n.LHS)
	if err != nil {
		return nil, err
	}
	targetType := n.LHS.ResolvedType()

	var result Value
	if n.Operator == ast.BinaryAssign {
		result, err = EmitValueImplicitCast(ctx, n.RHS, targetType)
		if err != nil {
			return nil, err
		}
	} else {
		backendType, err := EmitType(ctx, targetType)
		if err != nil {
			return nil, err
		}
		current := b.Load(backendType, pointer)
		rhs, err := EmitValueImplicitCast(ctx, n.RHS, targetType)
		if err != nil {
			return nil, err
		}
		op, ok := binaryOps[n.Operator.WithoutAssignment()]
		if !ok {
			return nil, fmt.Errorf("unknown compound assignment operator %v", n.Operator)
		}
		result = b.Binary(op, current, rhs)
	}

	b.Store(result, pointer)
	return result, nil
}

// emitValueCall lowers a call through the callee's function declaration.
func emitValueCall(ctx *Context, n *ast.ValueCall) (Value, error) {
	symbol, ok := n.Callee.(*ast.ValueSymbol)
	if !ok {
		return nil, fmt.Errorf("callee %T cannot be lowered", n.Callee)
	}
	function, ok := symbol.ReferencedDeclaration.(*ast.DeclarationFunction)
	if !ok {
		return nil, fmt.Errorf("callee %q does not name a function", symbol.Name)
	}
	handle, ok := function.Handle.(Function)
	if !ok || handle == nil {
		return nil, fmt.Errorf("function %q has not been declared to the backend", function.Name)
	}
	functionType, ok := syntax.TryCast[*ast.TypeFunction](function.ResolvedType())
	if !ok {
		return nil, fmt.Errorf("function %q has no resolved function type", function.Name)
	}
	if len(n.Args) != len(functionType.ArgTypes) {
		return nil, fmt.Errorf("call to %q has %d args, expected %d",
			function.Name, len(n.Args), len(functionType.ArgTypes))
	}

	args := make([]Value, 0, len(n.Args))
	for i, arg := range n.Args {
		lowered, err := EmitValueImplicitCast(ctx, arg, functionType.ArgTypes[i])
		if err != nil {
			return nil, err
		}
		args = append(args, lowered)
	}
	return ctx.Backend().Call(handle, args), nil
}
