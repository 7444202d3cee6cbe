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

package ast

import "forge/compiler/syntax"

// Handler is the per-variant hook surface for handlers that specialize on
// Forge node kinds. Embed NopHandler to get a default implementation of
// every hook and override only the hooks of interest; wrap the result with
// Dispatch to plug it into a syntax.Pass.
type Handler interface {
	EnterTypeBasic(in *syntax.HandlerInput, n *TypeBasic) syntax.HandlerOutput
	LeaveTypeBasic(in *syntax.HandlerInput, n *TypeBasic) syntax.HandlerOutput
	EnterTypeWithBitWidth(in *syntax.HandlerInput, n *TypeWithBitWidth) syntax.HandlerOutput
	LeaveTypeWithBitWidth(in *syntax.HandlerInput, n *TypeWithBitWidth) syntax.HandlerOutput
	EnterTypeSymbol(in *syntax.HandlerInput, n *TypeSymbol) syntax.HandlerOutput
	LeaveTypeSymbol(in *syntax.HandlerInput, n *TypeSymbol) syntax.HandlerOutput
	EnterTypeUnary(in *syntax.HandlerInput, n *TypeUnary) syntax.HandlerOutput
	LeaveTypeUnary(in *syntax.HandlerInput, n *TypeUnary) syntax.HandlerOutput
	EnterTypeFunction(in *syntax.HandlerInput, n *TypeFunction) syntax.HandlerOutput
	LeaveTypeFunction(in *syntax.HandlerInput, n *TypeFunction) syntax.HandlerOutput
	EnterTypeStructured(in *syntax.HandlerInput, n *TypeStructured) syntax.HandlerOutput
	LeaveTypeStructured(in *syntax.HandlerInput, n *TypeStructured) syntax.HandlerOutput
	EnterValueLiteralBool(in *syntax.HandlerInput, n *ValueLiteralBool) syntax.HandlerOutput
	LeaveValueLiteralBool(in *syntax.HandlerInput, n *ValueLiteralBool) syntax.HandlerOutput
	EnterValueLiteralNumber(in *syntax.HandlerInput, n *ValueLiteralNumber) syntax.HandlerOutput
	LeaveValueLiteralNumber(in *syntax.HandlerInput, n *ValueLiteralNumber) syntax.HandlerOutput
	EnterValueSymbol(in *syntax.HandlerInput, n *ValueSymbol) syntax.HandlerOutput
	LeaveValueSymbol(in *syntax.HandlerInput, n *ValueSymbol) syntax.HandlerOutput
	EnterValueUnary(in *syntax.HandlerInput, n *ValueUnary) syntax.HandlerOutput
	LeaveValueUnary(in *syntax.HandlerInput, n *ValueUnary) syntax.HandlerOutput
	EnterValueBinary(in *syntax.HandlerInput, n *ValueBinary) syntax.HandlerOutput
	LeaveValueBinary(in *syntax.HandlerInput, n *ValueBinary) syntax.HandlerOutput
	EnterValueCall(in *syntax.HandlerInput, n *ValueCall) syntax.HandlerOutput
	LeaveValueCall(in *syntax.HandlerInput, n *ValueCall) syntax.HandlerOutput
	EnterValueCast(in *syntax.HandlerInput, n *ValueCast) syntax.HandlerOutput
	LeaveValueCast(in *syntax.HandlerInput, n *ValueCast) syntax.HandlerOutput
	EnterStatementBasic(in *syntax.HandlerInput, n *StatementBasic) syntax.HandlerOutput
	LeaveStatementBasic(in *syntax.HandlerInput, n *StatementBasic) syntax.HandlerOutput
	EnterStatementValue(in *syntax.HandlerInput, n *StatementValue) syntax.HandlerOutput
	LeaveStatementValue(in *syntax.HandlerInput, n *StatementValue) syntax.HandlerOutput
	EnterStatementDeclaration(in *syntax.HandlerInput, n *StatementDeclaration) syntax.HandlerOutput
	LeaveStatementDeclaration(in *syntax.HandlerInput, n *StatementDeclaration) syntax.HandlerOutput
	EnterStatementBlock(in *syntax.HandlerInput, n *StatementBlock) syntax.HandlerOutput
	LeaveStatementBlock(in *syntax.HandlerInput, n *StatementBlock) syntax.HandlerOutput
	EnterStatementIf(in *syntax.HandlerInput, n *StatementIf) syntax.HandlerOutput
	LeaveStatementIf(in *syntax.HandlerInput, n *StatementIf) syntax.HandlerOutput
	EnterStatementWhile(in *syntax.HandlerInput, n *StatementWhile) syntax.HandlerOutput
	LeaveStatementWhile(in *syntax.HandlerInput, n *StatementWhile) syntax.HandlerOutput
	EnterDeclarationVariable(in *syntax.HandlerInput, n *DeclarationVariable) syntax.HandlerOutput
	LeaveDeclarationVariable(in *syntax.HandlerInput, n *DeclarationVariable) syntax.HandlerOutput
	EnterDeclarationFunction(in *syntax.HandlerInput, n *DeclarationFunction) syntax.HandlerOutput
	LeaveDeclarationFunction(in *syntax.HandlerInput, n *DeclarationFunction) syntax.HandlerOutput
	EnterDeclarationTypeAlias(in *syntax.HandlerInput, n *DeclarationTypeAlias) syntax.HandlerOutput
	LeaveDeclarationTypeAlias(in *syntax.HandlerInput, n *DeclarationTypeAlias) syntax.HandlerOutput
	EnterDeclarationStructuredType(in *syntax.HandlerInput, n *DeclarationStructuredType) syntax.HandlerOutput
	LeaveDeclarationStructuredType(in *syntax.HandlerInput, n *DeclarationStructuredType) syntax.HandlerOutput
	EnterDeclarationNamespace(in *syntax.HandlerInput, n *DeclarationNamespace) syntax.HandlerOutput
	LeaveDeclarationNamespace(in *syntax.HandlerInput, n *DeclarationNamespace) syntax.HandlerOutput
	EnterTranslationUnit(in *syntax.HandlerInput, n *TranslationUnit) syntax.HandlerOutput
	LeaveTranslationUnit(in *syntax.HandlerInput, n *TranslationUnit) syntax.HandlerOutput
}

// NopHandler implements every Handler hook as "continue". Embed it and
// override the hooks of interest.
type NopHandler struct{}

func (NopHandler) EnterTypeBasic(*syntax.HandlerInput, *TypeBasic) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeBasic(*syntax.HandlerInput, *TypeBasic) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTypeWithBitWidth(*syntax.HandlerInput, *TypeWithBitWidth) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeWithBitWidth(*syntax.HandlerInput, *TypeWithBitWidth) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTypeSymbol(*syntax.HandlerInput, *TypeSymbol) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeSymbol(*syntax.HandlerInput, *TypeSymbol) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTypeUnary(*syntax.HandlerInput, *TypeUnary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeUnary(*syntax.HandlerInput, *TypeUnary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTypeFunction(*syntax.HandlerInput, *TypeFunction) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeFunction(*syntax.HandlerInput, *TypeFunction) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTypeStructured(*syntax.HandlerInput, *TypeStructured) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTypeStructured(*syntax.HandlerInput, *TypeStructured) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueLiteralBool(*syntax.HandlerInput, *ValueLiteralBool) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueLiteralBool(*syntax.HandlerInput, *ValueLiteralBool) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueLiteralNumber(*syntax.HandlerInput, *ValueLiteralNumber) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueLiteralNumber(*syntax.HandlerInput, *ValueLiteralNumber) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueSymbol(*syntax.HandlerInput, *ValueSymbol) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueSymbol(*syntax.HandlerInput, *ValueSymbol) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueUnary(*syntax.HandlerInput, *ValueUnary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueUnary(*syntax.HandlerInput, *ValueUnary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueBinary(*syntax.HandlerInput, *ValueBinary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueBinary(*syntax.HandlerInput, *ValueBinary) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueCall(*syntax.HandlerInput, *ValueCall) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueCall(*syntax.HandlerInput, *ValueCall) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterValueCast(*syntax.HandlerInput, *ValueCast) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveValueCast(*syntax.HandlerInput, *ValueCast) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementBasic(*syntax.HandlerInput, *StatementBasic) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementBasic(*syntax.HandlerInput, *StatementBasic) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementValue(*syntax.HandlerInput, *StatementValue) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementValue(*syntax.HandlerInput, *StatementValue) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementDeclaration(*syntax.HandlerInput, *StatementDeclaration) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementDeclaration(*syntax.HandlerInput, *StatementDeclaration) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementBlock(*syntax.HandlerInput, *StatementBlock) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementBlock(*syntax.HandlerInput, *StatementBlock) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementIf(*syntax.HandlerInput, *StatementIf) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementIf(*syntax.HandlerInput, *StatementIf) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterStatementWhile(*syntax.HandlerInput, *StatementWhile) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveStatementWhile(*syntax.HandlerInput, *StatementWhile) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterDeclarationVariable(*syntax.HandlerInput, *DeclarationVariable) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveDeclarationVariable(*syntax.HandlerInput, *DeclarationVariable) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterDeclarationFunction(*syntax.HandlerInput, *DeclarationFunction) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveDeclarationFunction(*syntax.HandlerInput, *DeclarationFunction) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterDeclarationTypeAlias(*syntax.HandlerInput, *DeclarationTypeAlias) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveDeclarationTypeAlias(*syntax.HandlerInput, *DeclarationTypeAlias) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterDeclarationStructuredType(*syntax.HandlerInput, *DeclarationStructuredType) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveDeclarationStructuredType(*syntax.HandlerInput, *DeclarationStructuredType) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterDeclarationNamespace(*syntax.HandlerInput, *DeclarationNamespace) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveDeclarationNamespace(*syntax.HandlerInput, *DeclarationNamespace) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) EnterTranslationUnit(*syntax.HandlerInput, *TranslationUnit) syntax.HandlerOutput {
	return syntax.Continue()
}
func (NopHandler) LeaveTranslationUnit(*syntax.HandlerInput, *TranslationUnit) syntax.HandlerOutput {
	return syntax.Continue()
}

// dispatcher adapts a Handler to the node-agnostic syntax.Handler interface
// by type-switching on the visited node's concrete kind.
type dispatcher struct {
	inner Handler
}

// Dispatch wraps a per-variant handler into a syntax.Handler suitable for
// syntax.Pass.AddHandler.
func Dispatch(h Handler) syntax.Handler {
	return &dispatcher{inner: h}
}

// OnEnter implements syntax.Handler.
func (d *dispatcher) OnEnter(in *syntax.HandlerInput) syntax.HandlerOutput {
	switch n := in.Node.(type) {
	case *TypeBasic:
		return d.inner.EnterTypeBasic(in, n)
	case *TypeWithBitWidth:
		return d.inner.EnterTypeWithBitWidth(in, n)
	case *TypeSymbol:
		return d.inner.EnterTypeSymbol(in, n)
	case *TypeUnary:
		return d.inner.EnterTypeUnary(in, n)
	case *TypeFunction:
		return d.inner.EnterTypeFunction(in, n)
	case *TypeStructured:
		return d.inner.EnterTypeStructured(in, n)
	case *ValueLiteralBool:
		return d.inner.EnterValueLiteralBool(in, n)
	case *ValueLiteralNumber:
		return d.inner.EnterValueLiteralNumber(in, n)
	case *ValueSymbol:
		return d.inner.EnterValueSymbol(in, n)
	case *ValueUnary:
		return d.inner.EnterValueUnary(in, n)
	case *ValueBinary:
		return d.inner.EnterValueBinary(in, n)
	case *ValueCall:
		return d.inner.EnterValueCall(in, n)
	case *ValueCast:
		return d.inner.EnterValueCast(in, n)
	case *StatementBasic:
		return d.inner.EnterStatementBasic(in, n)
	case *StatementValue:
		return d.inner.EnterStatementValue(in, n)
	case *StatementDeclaration:
		return d.inner.EnterStatementDeclaration(in, n)
	case *StatementBlock:
		return d.inner.EnterStatementBlock(in, n)
	case *StatementIf:
		return d.inner.EnterStatementIf(in, n)
	case *StatementWhile:
		return d.inner.EnterStatementWhile(in, n)
	case *DeclarationVariable:
		return d.inner.EnterDeclarationVariable(in, n)
	case *DeclarationFunction:
		return d.inner.EnterDeclarationFunction(in, n)
	case *DeclarationTypeAlias:
		return d.inner.EnterDeclarationTypeAlias(in, n)
	case *DeclarationStructuredType:
		return d.inner.EnterDeclarationStructuredType(in, n)
	case *DeclarationNamespace:
		return d.inner.EnterDeclarationNamespace(in, n)
	case *TranslationUnit:
		return d.inner.EnterTranslationUnit(in, n)
	}
	return syntax.Continue()
}

// OnLeave implements syntax.Handler.
func (d *dispatcher) OnLeave(in *syntax.HandlerInput) syntax.HandlerOutput {
	switch n := in.Node.(type) {
	case *TypeBasic:
		return d.inner.LeaveTypeBasic(in, n)
	case *TypeWithBitWidth:
		return d.inner.LeaveTypeWithBitWidth(in, n)
	case *TypeSymbol:
		return d.inner.LeaveTypeSymbol(in, n)
	case *TypeUnary:
		return d.inner.LeaveTypeUnary(in, n)
	case *TypeFunction:
		return d.inner.LeaveTypeFunction(in, n)
	case *TypeStructured:
		return d.inner.LeaveTypeStructured(in, n)
	case *ValueLiteralBool:
		return d.inner.LeaveValueLiteralBool(in, n)
	case *ValueLiteralNumber:
		return d.inner.LeaveValueLiteralNumber(in, n)
	case *ValueSymbol:
		return d.inner.LeaveValueSymbol(in, n)
	case *ValueUnary:
		return d.inner.LeaveValueUnary(in, n)
	case *ValueBinary:
		return d.inner.LeaveValueBinary(in, n)
	case *ValueCall:
		return d.inner.LeaveValueCall(in, n)
	case *ValueCast:
		return d.inner.LeaveValueCast(in, n)
	case *StatementBasic:
		return d.inner.LeaveStatementBasic(in, n)
	case *StatementValue:
		return d.inner.LeaveStatementValue(in, n)
	case *StatementDeclaration:
		return d.inner.LeaveStatementDeclaration(in, n)
	case *StatementBlock:
		return d.inner.LeaveStatementBlock(in, n)
	case *StatementIf:
		return d.inner.LeaveStatementIf(in, n)
	case *StatementWhile:
		return d.inner.LeaveStatementWhile(in, n)
	case *DeclarationVariable:
		return d.inner.LeaveDeclarationVariable(in, n)
	case *DeclarationFunction:
		return d.inner.LeaveDeclarationFunction(in, n)
	case *DeclarationTypeAlias:
		return d.inner.LeaveDeclarationTypeAlias(in, n)
	case *DeclarationStructuredType:
		return d.inner.LeaveDeclarationStructuredType(in, n)
	case *DeclarationNamespace:
		return d.inner.LeaveDeclarationNamespace(in, n)
	case *TranslationUnit:
		return d.inner.LeaveTranslationUnit(in, n)
	}
	return syntax.Continue()
}
