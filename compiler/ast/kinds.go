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

// Package ast defines the Forge syntax-tree node variants on top of the
// language-agnostic substrate in the syntax package: types, values,
// statements, declarations, and the translation unit, together with the
// per-variant handler hook dispatch used by the semantic passes.
package ast

import "forge/compiler/syntax"

// Node kinds for every Forge syntax-tree variant. Kinds are compared by
// identity; see syntax.Kind.
var (
	KindTypeBasic                 = syntax.NewKind("TypeBasic")
	KindTypeWithBitWidth          = syntax.NewKind("TypeWithBitWidth")
	KindTypeSymbol                = syntax.NewKind("TypeSymbol")
	KindTypeUnary                 = syntax.NewKind("TypeUnary")
	KindTypeFunction              = syntax.NewKind("TypeFunction")
	KindTypeStructured            = syntax.NewKind("TypeStructured")
	KindValueLiteralBool          = syntax.NewKind("ValueLiteralBool")
	KindValueLiteralNumber        = syntax.NewKind("ValueLiteralNumber")
	KindValueSymbol               = syntax.NewKind("ValueSymbol")
	KindValueUnary                = syntax.NewKind("ValueUnary")
	KindValueBinary               = syntax.NewKind("ValueBinary")
	KindValueCall                 = syntax.NewKind("ValueCall")
	KindValueCast                 = syntax.NewKind("ValueCast")
	KindStatementBasic            = syntax.NewKind("StatementBasic")
	KindStatementValue            = syntax.NewKind("StatementValue")
	KindStatementDeclaration      = syntax.NewKind("StatementDeclaration")
	KindStatementBlock            = syntax.NewKind("StatementBlock")
	KindStatementIf               = syntax.NewKind("StatementIf")
	KindStatementWhile            = syntax.NewKind("StatementWhile")
	KindDeclarationVariable       = syntax.NewKind("DeclarationVariable")
	KindDeclarationFunction       = syntax.NewKind("DeclarationFunction")
	KindDeclarationTypeAlias      = syntax.NewKind("DeclarationTypeAlias")
	KindDeclarationStructuredType = syntax.NewKind("DeclarationStructuredType")
	KindDeclarationNamespace      = syntax.NewKind("DeclarationNamespace")
	KindTranslationUnit           = syntax.NewKind("TranslationUnit")
)
