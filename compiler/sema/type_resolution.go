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
	"forge/compiler/source"
	"forge/compiler/syntax"
	"forge/compiler/typelogic"
)

// TypeResolutionHandler writes resolved types into value and declaration
// nodes on leave-hooks, bottom-up, so a node's children are always resolved
// before the node itself. Nodes whose type cannot be determined (e.g.
// because symbol resolution failed) are left unresolved; type validation
// treats missing types as already-reported and skips them.
type TypeResolutionHandler struct {
	ast.NopHandler
	target typelogic.Target
}

// NewTypeResolutionHandler creates a type resolution handler for a target.
func NewTypeResolutionHandler(target typelogic.Target) *TypeResolutionHandler {
	return &TypeResolutionHandler{target: target}
}

// LeaveValueLiteralBool resolves bool literals to bool.
func (h *TypeResolutionHandler) LeaveValueLiteralBool(in *syntax.HandlerInput, n *ast.ValueLiteralBool) syntax.HandlerOutput {
	n.SetResolvedType(ast.NewTypeBasic(source.Range{}, ast.BasicBool))
	return syntax.Continue()
}

// LeaveValueLiteralNumber resolves number literals to their declared type.
func (h *TypeResolutionHandler) LeaveValueLiteralNumber(in *syntax.HandlerInput, n *ast.ValueLiteralNumber) syntax.HandlerOutput {
	n.SetResolvedType(syntax.CloneNode[ast.Type](n.Type))
	return syntax.Continue()
}

// LeaveValueSymbol resolves a symbol to its referenced declaration's type. A
// namespace has no value type; using one as a value is reported here.
func (h *TypeResolutionHandler) LeaveValueSymbol(in *syntax.HandlerInput, n *ast.ValueSymbol) syntax.HandlerOutput {
	if syntax.IsNilNode(n.ReferencedDeclaration) {
		return syntax.Continue()
	}
	if _, isNamespace := n.ReferencedDeclaration.(*ast.DeclarationNamespace); isNamespace {
		emitTypeErrorNamespaceUsedAsValue(in.Messages, n.Range())
		return syntax.Continue()
	}
	n.SetResolvedType(syntax.CloneNode(n.ReferencedDeclaration.ResolvedType()))
	return syntax.Continue()
}

// LeaveValueUnary resolves unary operations.
func (h *TypeResolutionHandler) LeaveValueUnary(in *syntax.HandlerInput, n *ast.ValueUnary) syntax.HandlerOutput {
	operandType := n.Operand.ResolvedType()
	switch n.Operator {
	case ast.UnaryBoolNot:
		n.SetResolvedType(ast.NewTypeBasic(source.Range{}, ast.BasicBool))
	case ast.UnaryBitNot, ast.UnaryPos, ast.UnaryNeg:
		n.SetResolvedType(syntax.CloneNode(operandType))
	case ast.UnaryDeref:
		if !syntax.IsNilNode(operandType) && typelogic.IsPointer(operandType) {
			n.SetResolvedType(syntax.CloneNode(typelogic.PointerElement(operandType)))
		}
	case ast.UnaryGetAddr:
		if !syntax.IsNilNode(operandType) {
			n.SetResolvedType(ast.NewTypeUnary(source.Range{}, ast.TypeUnaryPointer,
				syntax.CloneNode(operandType)))
		}
	}
	return syntax.Continue()
}

// LeaveValueBinary resolves binary operations: boolean and comparison
// operators yield bool, arithmetic and bitwise operators yield the
// arithmetic containing type, and assignments yield the left-hand type.
func (h *TypeResolutionHandler) LeaveValueBinary(in *syntax.HandlerInput, n *ast.ValueBinary) syntax.HandlerOutput {
	switch {
	case n.Operator.IsBoolean() || n.Operator.IsComparison():
		n.SetResolvedType(ast.NewTypeBasic(source.Range{}, ast.BasicBool))
	case n.Operator == ast.BinaryMemberAccess:
		// Member resolution over structured types is not implemented yet.
		emitTypeErrorUnableToResolve(in.Messages, n.Range(),
			"member access is not supported")
	case n.Operator.IsAssigning():
		n.SetResolvedType(syntax.CloneNode(n.LHS.ResolvedType()))
	default:
		lhsType := n.LHS.ResolvedType()
		rhsType := n.RHS.ResolvedType()
		if !syntax.IsNilNode(lhsType) && !syntax.IsNilNode(rhsType) {
			n.SetResolvedType(typelogic.ArithmeticContainingType(h.target, lhsType, rhsType))
		}
	}
	return syntax.Continue()
}

// LeaveValueCall resolves a call to the callee's function return type.
func (h *TypeResolutionHandler) LeaveValueCall(in *syntax.HandlerInput, n *ast.ValueCall) syntax.HandlerOutput {
	if functionType, ok := syntax.TryCast[*ast.TypeFunction](n.Callee.ResolvedType()); ok {
		n.SetResolvedType(syntax.CloneNode(functionType.ReturnType))
	}
	return syntax.Continue()
}

// LeaveValueCast resolves a cast to its target type.
func (h *TypeResolutionHandler) LeaveValueCast(in *syntax.HandlerInput, n *ast.ValueCast) syntax.HandlerOutput {
	n.SetResolvedType(syntax.CloneNode(n.Type))
	return syntax.Continue()
}

// LeaveDeclarationVariable resolves a variable to its declared type.
func (h *TypeResolutionHandler) LeaveDeclarationVariable(in *syntax.HandlerInput, n *ast.DeclarationVariable) syntax.HandlerOutput {
	n.SetResolvedType(syntax.CloneNode(n.Type))
	return syntax.Continue()
}

// LeaveDeclarationFunction resolves a function to a function type built
// from its return type and argument types.
func (h *TypeResolutionHandler) LeaveDeclarationFunction(in *syntax.HandlerInput, n *ast.DeclarationFunction) syntax.HandlerOutput {
	argTypes := make([]ast.Type, 0, len(n.Args))
	for _, arg := range n.Args {
		argTypes = append(argTypes, syntax.CloneNode(arg.ResolvedType()))
	}
	n.SetResolvedType(ast.NewTypeFunction(source.Range{},
		syntax.CloneNode(n.ReturnType), argTypes))
	return syntax.Continue()
}

// LeaveDeclarationTypeAlias resolves an alias to its underlying type.
func (h *TypeResolutionHandler) LeaveDeclarationTypeAlias(in *syntax.HandlerInput, n *ast.DeclarationTypeAlias) syntax.HandlerOutput {
	n.SetResolvedType(syntax.CloneNode(n.Type))
	return syntax.Continue()
}
