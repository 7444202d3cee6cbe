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

package sema

import (
	"forge/compiler/ast"
	"forge/compiler/syntax"
	"forge/compiler/typelogic"
)

// TypeValidationHandler emits the user-visible type diagnostics on
// leave-hooks, after type resolution has run for the node. Values without a
// resolved type are skipped: the failure that lost the type has already
// been reported by an earlier handler.
type TypeValidationHandler struct {
	ast.NopHandler
	target typelogic.Target
}

// NewTypeValidationHandler creates a type validation handler for a target.
func NewTypeValidationHandler(target typelogic.Target) *TypeValidationHandler {
	return &TypeValidationHandler{target: target}
}

// requireImplicitCast checks that a value of type from can be used where a
// value of type to is expected, emitting the implicit-cast or illegal-cast
// diagnostic otherwise.
func (h *TypeValidationHandler) requireImplicitCast(in *syntax.HandlerInput, value ast.Value, to ast.Type) {
	from := value.ResolvedType()
	if syntax.IsNilNode(from) || syntax.IsNilNode(to) {
		return
	}
	switch typelogic.GetCastingMode(h.target, from, to) {
	case typelogic.CastExplicit:
		emitTypeErrorUnableToImplicitlyCast(in.Messages, value.Range(), from, to)
	case typelogic.CastIllegal:
		emitTypeErrorIllegalCast(in.Messages, value.Range(), from, to)
	}
}

// LeaveTypeUnary rejects void pointers and function pointers.
func (h *TypeValidationHandler) LeaveTypeUnary(in *syntax.HandlerInput, n *ast.TypeUnary) syntax.HandlerOutput {
	if n.UnaryKind != ast.TypeUnaryPointer || syntax.IsNilNode(n.OperandType) {
		return syntax.Continue()
	}
	if typelogic.IsVoid(n.OperandType) {
		emitTypeErrorNoVoidPointers(in.Messages, n.Range())
	}
	if _, isFunction := n.OperandType.(*ast.TypeFunction); isFunction {
		emitTypeErrorNoFunctionPointers(in.Messages, n.Range())
	}
	return syntax.Continue()
}

// LeaveValueUnary checks the operand's type category against the operator.
func (h *TypeValidationHandler) LeaveValueUnary(in *syntax.HandlerInput, n *ast.ValueUnary) syntax.HandlerOutput {
	operandType := n.Operand.ResolvedType()
	if syntax.IsNilNode(operandType) {
		return syntax.Continue()
	}
	switch n.Operator {
	case ast.UnaryBoolNot:
		if !typelogic.IsBool(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "'bool'")
		}
	case ast.UnaryBitNot:
		if !typelogic.IsInteger(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "an integer type")
		}
	case ast.UnaryPos:
		if !typelogic.IsNumber(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "a numeric type")
		}
	case ast.UnaryNeg:
		signed, isInteger := typelogic.IntegerSignedness(operandType)
		isSignedNumeric := typelogic.IsFloat(operandType) || (isInteger && signed)
		if !isSignedNumeric {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "a signed numeric type")
		}
	case ast.UnaryDeref:
		if !typelogic.IsPointer(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "a pointer type")
		}
	case ast.UnaryGetAddr:
		if !isLValue(n.Operand) {
			emitTypeErrorUnexpectedType(in.Messages, n.Operand.Range(), "an addressable value")
		}
	}
	return syntax.Continue()
}

// isLValue reports whether a value designates storage.
func isLValue(v ast.Value) bool {
	switch n := v.(type) {
	case *ast.ValueSymbol:
		return true
	case *ast.ValueUnary:
		return n.Operator == ast.UnaryDeref
	}
	return false
}

// LeaveValueBinary checks operand categories and castability per operator
// family.
func (h *TypeValidationHandler) LeaveValueBinary(in *syntax.HandlerInput, n *ast.ValueBinary) syntax.HandlerOutput {
	lhsType := n.LHS.ResolvedType()
	rhsType := n.RHS.ResolvedType()
	if syntax.IsNilNode(lhsType) || syntax.IsNilNode(rhsType) {
		return syntax.Continue()
	}

	operator := n.Operator
	switch {
	case operator.IsBoolean():
		if !typelogic.IsBool(lhsType) {
			emitTypeErrorUnexpectedType(in.Messages, n.LHS.Range(), "'bool'")
		}
		if !typelogic.IsBool(rhsType) {
			emitTypeErrorUnexpectedType(in.Messages, n.RHS.Range(), "'bool'")
		}

	case operator.IsComparison():
		if typelogic.ArithmeticContainingType(h.target, lhsType, rhsType) == nil {
			h.requireImplicitCast(in, n.RHS, lhsType)
		}

	case operator == ast.BinaryMemberAccess:
		// Deferred until member resolution exists; type resolution has
		// already reported the unresolved type.

	case operator == ast.BinaryAssign:
		h.requireAssignable(in, n)
		h.requireImplicitCast(in, n.RHS, lhsType)

	case operator.IsAssigning():
		h.requireAssignable(in, n)
		h.checkNumericOperand(in, n.LHS, operator.WithoutAssignment())
		h.checkNumericOperand(in, n.RHS, operator.WithoutAssignment())
		h.requireImplicitCast(in, n.RHS, lhsType)

	default:
		// Arithmetic and bitwise operators.
		h.checkNumericOperand(in, n.LHS, operator)
		h.checkNumericOperand(in, n.RHS, operator)
	}
	return syntax.Continue()
}

// requireAssignable checks that the assignment target designates storage.
func (h *TypeValidationHandler) requireAssignable(in *syntax.HandlerInput, n *ast.ValueBinary) {
	if !isLValue(n.LHS) {
		emitTypeErrorUnexpectedType(in.Messages, n.LHS.Range(), "an assignable value")
	}
}

// checkNumericOperand checks an arithmetic or bitwise operand's category.
func (h *TypeValidationHandler) checkNumericOperand(in *syntax.HandlerInput, operand ast.Value, operator ast.BinaryOperator) {
	operandType := operand.ResolvedType()
	if syntax.IsNilNode(operandType) {
		return
	}
	if operator.IsBitwise() {
		if !typelogic.IsInteger(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, operand.Range(), "an integer type")
		}
		return
	}
	if operator.IsArithmetic() {
		if !typelogic.IsNumber(operandType) {
			emitTypeErrorUnexpectedType(in.Messages, operand.Range(), "a numeric type")
		}
	}
}

// LeaveValueCall checks that the callee is a function, the argument count
// matches, and every argument casts implicitly to its parameter type.
func (h *TypeValidationHandler) LeaveValueCall(in *syntax.HandlerInput, n *ast.ValueCall) syntax.HandlerOutput {
	calleeType := n.Callee.ResolvedType()
	if syntax.IsNilNode(calleeType) {
		return syntax.Continue()
	}
	functionType, ok := syntax.TryCast[*ast.TypeFunction](calleeType)
	if !ok {
		emitTypeErrorCannotCallNonFunction(in.Messages, n.Range(), calleeType)
		return syntax.Continue()
	}
	if len(n.Args) != len(functionType.ArgTypes) {
		emitTypeErrorIncorrectNumberOfArgs(in.Messages, n.Range(),
			len(functionType.ArgTypes), len(n.Args))
		return syntax.Continue()
	}
	for i, arg := range n.Args {
		h.requireImplicitCast(in, arg, functionType.ArgTypes[i])
	}
	return syntax.Continue()
}

// LeaveValueCast rejects casts the casting-mode table marks illegal.
func (h *TypeValidationHandler) LeaveValueCast(in *syntax.HandlerInput, n *ast.ValueCast) syntax.HandlerOutput {
	from := n.Value.ResolvedType()
	if syntax.IsNilNode(from) || syntax.IsNilNode(n.Type) {
		return syntax.Continue()
	}
	if typelogic.GetCastingMode(h.target, from, n.Type) == typelogic.CastIllegal {
		emitTypeErrorIllegalCast(in.Messages, n.Range(), from, n.Type)
	}
	return syntax.Continue()
}

// LeaveStatementValue checks returned values against the enclosing
// function's return type.
func (h *TypeValidationHandler) LeaveStatementValue(in *syntax.HandlerInput, n *ast.StatementValue) syntax.HandlerOutput {
	if n.ValueKind != ast.StatementReturn {
		return syntax.Continue()
	}
	function, ok := syntax.SurroundingOf[*ast.DeclarationFunction](in)
	if !ok {
		return syntax.Continue()
	}
	if typelogic.IsVoid(function.ReturnType) {
		emitTypeErrorVoidFunctionCannotReturnValue(in.Messages, n.Range())
		return syntax.Continue()
	}
	h.requireImplicitCast(in, n.Value, function.ReturnType)
	return syntax.Continue()
}

// LeaveStatementBasic checks bare returns against the enclosing function's
// return type.
func (h *TypeValidationHandler) LeaveStatementBasic(in *syntax.HandlerInput, n *ast.StatementBasic) syntax.HandlerOutput {
	if n.BasicKind != ast.StatementReturnVoid {
		return syntax.Continue()
	}
	function, ok := syntax.SurroundingOf[*ast.DeclarationFunction](in)
	if !ok {
		return syntax.Continue()
	}
	if !typelogic.IsVoid(function.ReturnType) {
		emitTypeErrorNonVoidFunctionMustReturnValue(in.Messages, n.Range())
	}
	return syntax.Continue()
}

// LeaveStatementIf requires a bool condition.
func (h *TypeValidationHandler) LeaveStatementIf(in *syntax.HandlerInput, n *ast.StatementIf) syntax.HandlerOutput {
	h.requireBoolCondition(in, n.Condition)
	return syntax.Continue()
}

// LeaveStatementWhile requires a bool condition.
func (h *TypeValidationHandler) LeaveStatementWhile(in *syntax.HandlerInput, n *ast.StatementWhile) syntax.HandlerOutput {
	h.requireBoolCondition(in, n.Condition)
	return syntax.Continue()
}

// requireBoolCondition checks a condition's type.
func (h *TypeValidationHandler) requireBoolCondition(in *syntax.HandlerInput, condition ast.Value) {
	conditionType := condition.ResolvedType()
	if syntax.IsNilNode(conditionType) {
		return
	}
	if !typelogic.IsBool(conditionType) {
		emitTypeErrorUnexpectedType(in.Messages, condition.Range(), "'bool'")
	}
}

// LeaveDeclarationVariable checks the initializer against the declared
// type.
func (h *TypeValidationHandler) LeaveDeclarationVariable(in *syntax.HandlerInput, n *ast.DeclarationVariable) syntax.HandlerOutput {
	if !syntax.IsNilNode(n.InitialValue) {
		h.requireImplicitCast(in, n.InitialValue, n.Type)
	}
	return syntax.Continue()
}

// LeaveDeclarationFunction rejects void arguments.
func (h *TypeValidationHandler) LeaveDeclarationFunction(in *syntax.HandlerInput, n *ast.DeclarationFunction) syntax.HandlerOutput {
	for _, arg := range n.Args {
		if !syntax.IsNilNode(arg.Type) && typelogic.IsVoid(arg.Type) {
			emitTypeErrorNoVoidArguments(in.Messages, arg.Range())
		}
	}
	return syntax.Continue()
}

// LeaveDeclarationNamespace rejects namespaces declared inside structured
// types.
func (h *TypeValidationHandler) LeaveDeclarationNamespace(in *syntax.HandlerInput, n *ast.DeclarationNamespace) syntax.HandlerOutput {
	if _, inStructured := syntax.SurroundingOf[*ast.DeclarationStructuredType](in); inStructured {
		emitTypeErrorNamespaceWithinStructuredType(in.Messages, n.Range())
		return syntax.Continue()
	}
	if _, inStructuredType := syntax.SurroundingOf[*ast.TypeStructured](in); inStructuredType {
		emitTypeErrorNamespaceWithinStructuredType(in.Messages, n.Range())
	}
	return syntax.Continue()
}
