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
)

// WellFormedHandler checks the structural invariants of the tree: required
// children present, names non-empty, bit widths legal. It does no type
// checking. Any violation is an internal error — the parser always produces
// well-formed trees — so it halts traversal to keep later handlers off
// malformed input.
type WellFormedHandler struct {
	ast.NopHandler
}

// NewWellFormedHandler creates the well-formedness handler.
func NewWellFormedHandler() *WellFormedHandler {
	return &WellFormedHandler{}
}

// malformed emits the internal diagnostic and halts.
func malformed(in *syntax.HandlerInput, text string) syntax.HandlerOutput {
	emitInternalNotWellFormed(in.Messages, in.Node.Range(), text)
	return syntax.Halt()
}

// LeaveTypeWithBitWidth checks the bit width against the legal sets.
func (h *WellFormedHandler) LeaveTypeWithBitWidth(in *syntax.HandlerInput, n *ast.TypeWithBitWidth) syntax.HandlerOutput {
	switch n.NumericKind {
	case ast.NumericFloat:
		if n.BitWidth != 32 && n.BitWidth != 64 {
			return malformed(in, "float bit width must be 32 or 64")
		}
	default:
		if n.BitWidth != 8 && n.BitWidth != 16 && n.BitWidth != 32 && n.BitWidth != 64 {
			return malformed(in, "integer bit width must be 8, 16, 32, or 64")
		}
	}
	return syntax.Continue()
}

// LeaveTypeSymbol checks the symbol name.
func (h *WellFormedHandler) LeaveTypeSymbol(in *syntax.HandlerInput, n *ast.TypeSymbol) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "type symbol name must not be empty")
	}
	return syntax.Continue()
}

// LeaveTypeUnary checks the operand type.
func (h *WellFormedHandler) LeaveTypeUnary(in *syntax.HandlerInput, n *ast.TypeUnary) syntax.HandlerOutput {
	if syntax.IsNilNode(n.OperandType) {
		return malformed(in, "unary type operand must not be null")
	}
	return syntax.Continue()
}

// LeaveTypeFunction checks the return type and argument types.
func (h *WellFormedHandler) LeaveTypeFunction(in *syntax.HandlerInput, n *ast.TypeFunction) syntax.HandlerOutput {
	if syntax.IsNilNode(n.ReturnType) {
		return malformed(in, "function type return type must not be null")
	}
	for _, arg := range n.ArgTypes {
		if syntax.IsNilNode(arg) {
			return malformed(in, "function type argument types must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveTypeStructured checks the member declarations.
func (h *WellFormedHandler) LeaveTypeStructured(in *syntax.HandlerInput, n *ast.TypeStructured) syntax.HandlerOutput {
	for _, member := range n.Members {
		if syntax.IsNilNode(member) {
			return malformed(in, "structured type members must not be null")
		}
	}
	for _, inherited := range n.Inherits {
		if syntax.IsNilNode(inherited) {
			return malformed(in, "structured type inherited types must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveValueLiteralNumber checks that the literal carries a type and the
// tagged value matches it.
func (h *WellFormedHandler) LeaveValueLiteralNumber(in *syntax.HandlerInput, n *ast.ValueLiteralNumber) syntax.HandlerOutput {
	if n.Type == nil {
		return malformed(in, "number literal type must not be null")
	}
	if n.Value.Kind != n.Type.NumericKind || n.Value.BitWidth != n.Type.BitWidth {
		return malformed(in, "number literal value tag must match its type")
	}
	return syntax.Continue()
}

// LeaveValueSymbol checks the symbol name.
func (h *WellFormedHandler) LeaveValueSymbol(in *syntax.HandlerInput, n *ast.ValueSymbol) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "value symbol name must not be empty")
	}
	return syntax.Continue()
}

// LeaveValueUnary checks the operand.
func (h *WellFormedHandler) LeaveValueUnary(in *syntax.HandlerInput, n *ast.ValueUnary) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Operand) {
		return malformed(in, "unary value operand must not be null")
	}
	return syntax.Continue()
}

// LeaveValueBinary checks both operands.
func (h *WellFormedHandler) LeaveValueBinary(in *syntax.HandlerInput, n *ast.ValueBinary) syntax.HandlerOutput {
	if syntax.IsNilNode(n.LHS) || syntax.IsNilNode(n.RHS) {
		return malformed(in, "binary value operands must not be null")
	}
	return syntax.Continue()
}

// LeaveValueCall checks the callee and arguments.
func (h *WellFormedHandler) LeaveValueCall(in *syntax.HandlerInput, n *ast.ValueCall) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Callee) {
		return malformed(in, "call callee must not be null")
	}
	for _, arg := range n.Args {
		if syntax.IsNilNode(arg) {
			return malformed(in, "call arguments must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveValueCast checks the value and target type.
func (h *WellFormedHandler) LeaveValueCast(in *syntax.HandlerInput, n *ast.ValueCast) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Value) {
		return malformed(in, "cast value must not be null")
	}
	if syntax.IsNilNode(n.Type) {
		return malformed(in, "cast type must not be null")
	}
	return syntax.Continue()
}

// LeaveStatementValue checks the statement's value.
func (h *WellFormedHandler) LeaveStatementValue(in *syntax.HandlerInput, n *ast.StatementValue) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Value) {
		return malformed(in, "value statement value must not be null")
	}
	return syntax.Continue()
}

// LeaveStatementDeclaration checks the wrapped declaration.
func (h *WellFormedHandler) LeaveStatementDeclaration(in *syntax.HandlerInput, n *ast.StatementDeclaration) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Declaration) {
		return malformed(in, "declaration statement declaration must not be null")
	}
	return syntax.Continue()
}

// LeaveStatementBlock checks the statement list.
func (h *WellFormedHandler) LeaveStatementBlock(in *syntax.HandlerInput, n *ast.StatementBlock) syntax.HandlerOutput {
	for _, statement := range n.Statements {
		if syntax.IsNilNode(statement) {
			return malformed(in, "block statements must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveStatementIf checks the condition and branches.
func (h *WellFormedHandler) LeaveStatementIf(in *syntax.HandlerInput, n *ast.StatementIf) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Condition) {
		return malformed(in, "if condition must not be null")
	}
	if n.Then == nil {
		return malformed(in, "if then-branch must not be null")
	}
	return syntax.Continue()
}

// LeaveStatementWhile checks the condition and body.
func (h *WellFormedHandler) LeaveStatementWhile(in *syntax.HandlerInput, n *ast.StatementWhile) syntax.HandlerOutput {
	if syntax.IsNilNode(n.Condition) {
		return malformed(in, "while condition must not be null")
	}
	if n.Body == nil {
		return malformed(in, "while body must not be null")
	}
	return syntax.Continue()
}

// LeaveDeclarationVariable checks the name and type.
func (h *WellFormedHandler) LeaveDeclarationVariable(in *syntax.HandlerInput, n *ast.DeclarationVariable) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "variable name must not be empty")
	}
	if syntax.IsNilNode(n.Type) {
		return malformed(in, "variable type must not be null")
	}
	return syntax.Continue()
}

// LeaveDeclarationFunction checks the name, arguments, and return type.
func (h *WellFormedHandler) LeaveDeclarationFunction(in *syntax.HandlerInput, n *ast.DeclarationFunction) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "function name must not be empty")
	}
	for _, arg := range n.Args {
		if arg == nil {
			return malformed(in, "function arguments must not be null")
		}
	}
	if syntax.IsNilNode(n.ReturnType) {
		return malformed(in, "function return type must not be null")
	}
	return syntax.Continue()
}

// LeaveDeclarationTypeAlias checks the name and aliased type.
func (h *WellFormedHandler) LeaveDeclarationTypeAlias(in *syntax.HandlerInput, n *ast.DeclarationTypeAlias) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "type alias name must not be empty")
	}
	if syntax.IsNilNode(n.Type) {
		return malformed(in, "type alias type must not be null")
	}
	return syntax.Continue()
}

// LeaveDeclarationStructuredType checks the name and members.
func (h *WellFormedHandler) LeaveDeclarationStructuredType(in *syntax.HandlerInput, n *ast.DeclarationStructuredType) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "structured type name must not be empty")
	}
	for _, member := range n.Members {
		if syntax.IsNilNode(member) {
			return malformed(in, "structured type members must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveDeclarationNamespace checks the name and members.
func (h *WellFormedHandler) LeaveDeclarationNamespace(in *syntax.HandlerInput, n *ast.DeclarationNamespace) syntax.HandlerOutput {
	if n.Name == "" {
		return malformed(in, "namespace name must not be empty")
	}
	for _, member := range n.Members {
		if syntax.IsNilNode(member) {
			return malformed(in, "namespace members must not be null")
		}
	}
	return syntax.Continue()
}

// LeaveTranslationUnit checks the declaration list.
func (h *WellFormedHandler) LeaveTranslationUnit(in *syntax.HandlerInput, n *ast.TranslationUnit) syntax.HandlerOutput {
	for _, declaration := range n.Declarations {
		if syntax.IsNilNode(declaration) {
			return malformed(in, "translation unit declarations must not be null")
		}
	}
	return syntax.Continue()
}
