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

// EmitTranslationUnit lowers a fully validated translation unit. Functions
// are declared to the backend in a first phase and their bodies lowered in
// a second, so that the unordered top-level scope (mutual recursion,
// use-before-definition) lowers correctly.
func EmitTranslationUnit(ctx *Context, unit *ast.TranslationUnit) error {
	if err := declareFunctions(ctx, unit.Declarations); err != nil {
		return err
	}
	return defineFunctions(ctx, unit.Declarations)
}

// declareFunctions registers every function (recursing through namespaces)
// with the backend without lowering bodies.
func declareFunctions(ctx *Context, declarations []ast.Declaration) error {
	for _, declaration := range declarations {
		switch n := declaration.(type) {
		case *ast.DeclarationFunction:
			if err := declareFunction(ctx, n); err != nil {
				return err
			}
		case *ast.DeclarationNamespace:
			if err := declareFunctions(ctx, n.Members); err != nil {
				return err
			}
		}
	}
	return nil
}

// declareFunction creates the backend function for a declaration and stores
// the handle on the node.
func declareFunction(ctx *Context, function *ast.DeclarationFunction) error {
	functionType, ok := syntax.TryCast[*ast.TypeFunction](function.ResolvedType())
	if !ok {
		return fmt.Errorf("function %q has no resolved function type", function.Name)
	}
	loweredType, err := EmitType(ctx, functionType)
	if err != nil {
		return err
	}
	function.Handle = ctx.Backend().CreateFunction(function.Name, loweredType)
	return nil
}

// defineFunctions lowers the bodies of every declared function, recursing
// through namespaces.
//
// Top-level variable declarations, type aliases, and structured types
// deliberately lower to nothing here. Globals and structured-type layout
// are TODO; aliases are fully resolved away before codegen.
func defineFunctions(ctx *Context, declarations []ast.Declaration) error {
	for _, declaration := range declarations {
		switch n := declaration.(type) {
		case *ast.DeclarationFunction:
			if err := EmitDeclarationFunction(ctx, n); err != nil {
				return err
			}
		case *ast.DeclarationNamespace:
			if err := defineFunctions(ctx, n.Members); err != nil {
				return err
			}
		}
	}
	return nil
}

// EmitDeclarationFunction lowers one function body. Arguments are spilled
// to stack slots so that argument symbols have addressable storage like any
// other variable.
func EmitDeclarationFunction(ctx *Context, function *ast.DeclarationFunction) error {
	if function.Body == nil {
		return nil
	}
	b := ctx.Backend()

	handle, ok := function.Handle.(Function)
	if !ok || handle == nil {
		return fmt.Errorf("function %q has not been declared to the backend", function.Name)
	}

	entry := b.CreateBlock(handle, "entry")
	b.SetInsertPoint(entry)

	for i, arg := range function.Args {
		argType, err := EmitType(ctx, arg.ResolvedType())
		if err != nil {
			return err
		}
		pointer := b.Alloca(argType, arg.Name)
		b.Store(b.Param(handle, i), pointer)
		arg.Handle = pointer
	}

	fctx := &FunctionContext{Decl: function, Handle: handle, Entry: entry}
	end, err := EmitStatement(ctx, fctx, function.Body)
	if err != nil {
		return err
	}
	if end != nil {
		// Falling off the end is only legal for void functions; control
		// flow validation has already rejected it everywhere else.
		if !typelogic.IsVoid(function.ReturnType) {
			return fmt.Errorf("function %q falls off the end of a non-void body", function.Name)
		}
		b.RetVoid()
	}
	return nil
}
