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
	"forge/compiler/message"
	"forge/compiler/syntax"
	"forge/compiler/typelogic"
)

// NewValidationPass composes the full Forge validation pass. Handler order
// matters: well-formedness guards everything behind it, symbol resolution
// populates the back-references type resolution reads, and validation runs
// over fully resolved nodes before control flow is checked.
func NewValidationPass(messages *message.Context, target typelogic.Target) *syntax.Pass {
	pass := syntax.NewPass(messages)
	pass.AddHandler(ast.Dispatch(NewWellFormedHandler()))
	pass.AddHandler(syntax.NewSymbolResolutionHandler(syntax.SymbolResolutionOptions{
		CodeUndeclared: CodeScopeUndeclared,
		CodeRedeclared: CodeScopeRedeclared,
		CodeNoScope:    CodeInternalNoScope,
	}))
	pass.AddHandler(ast.Dispatch(NewTypeResolutionHandler(target)))
	pass.AddHandler(ast.Dispatch(NewTypeValidationHandler(target)))
	pass.AddHandler(ast.Dispatch(NewControlFlowHandler()))
	return pass
}
