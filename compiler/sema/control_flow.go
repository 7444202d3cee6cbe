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

// ControlFlowHandler validates control flow with a local abstract
// interpretation over the statement tree:
//
//   - a statement following one that unconditionally terminates its block is
//     unreachable (ECF001);
//   - a non-void function whose body can fall off the end without returning
//     does not return in all cases (ECF002).
//
// Two termination notions are needed. A return, break, or continue all end
// their enclosing block, but only returns end the function: break and
// continue terminate relative to the enclosing loop.
type ControlFlowHandler struct {
	ast.NopHandler
}

// NewControlFlowHandler creates the control flow handler.
func NewControlFlowHandler() *ControlFlowHandler {
	return &ControlFlowHandler{}
}

// LeaveStatementBlock reports every statement that follows a terminating
// statement within the block.
func (h *ControlFlowHandler) LeaveStatementBlock(in *syntax.HandlerInput, n *ast.StatementBlock) syntax.HandlerOutput {
	terminated := false
	for _, statement := range n.Statements {
		if terminated {
			emitControlFlowErrorUnreachableStatement(in.Messages, statement.Range())
			continue
		}
		if statementTerminatesBlock(statement) {
			terminated = true
		}
	}
	return syntax.Continue()
}

// LeaveDeclarationFunction reports non-void functions whose body does not
// return on every path.
func (h *ControlFlowHandler) LeaveDeclarationFunction(in *syntax.HandlerInput, n *ast.DeclarationFunction) syntax.HandlerOutput {
	if n.Body == nil || syntax.IsNilNode(n.ReturnType) || typelogic.IsVoid(n.ReturnType) {
		return syntax.Continue()
	}
	if !statementAlwaysReturns(n.Body) {
		emitControlFlowErrorFunctionDoesNotAlwaysReturn(in.Messages, n.Range())
	}
	return syntax.Continue()
}

// statementTerminatesBlock reports whether the statement unconditionally
// ends its enclosing block: returns, breaks, and continues all do, an if
// does when both branches do, and a loop never does (its body might not
// execute).
func statementTerminatesBlock(statement ast.Statement) bool {
	switch n := statement.(type) {
	case *ast.StatementBasic:
		return true
	case *ast.StatementValue:
		return n.ValueKind == ast.StatementReturn
	case *ast.StatementBlock:
		return anyStatementTerminatesBlock(n.Statements)
	case *ast.StatementIf:
		return !syntax.IsNilNode(n.Else) &&
			statementTerminatesBlock(n.Then) && statementTerminatesBlock(n.Else)
	}
	return false
}

// anyStatementTerminatesBlock reports whether any statement in the sequence
// terminates the block.
func anyStatementTerminatesBlock(statements []ast.Statement) bool {
	for _, statement := range statements {
		if statementTerminatesBlock(statement) {
			return true
		}
	}
	return false
}

// statementAlwaysReturns reports whether the statement returns from the
// function on every path. Unlike block termination, break and continue do
// not count: they leave a loop, not the function.
func statementAlwaysReturns(statement ast.Statement) bool {
	switch n := statement.(type) {
	case *ast.StatementBasic:
		return n.BasicKind == ast.StatementReturnVoid
	case *ast.StatementValue:
		return n.ValueKind == ast.StatementReturn
	case *ast.StatementBlock:
		for _, child := range n.Statements {
			if statementAlwaysReturns(child) {
				return true
			}
		}
		return false
	case *ast.StatementIf:
		return !syntax.IsNilNode(n.Else) &&
			statementAlwaysReturns(n.Then) && statementAlwaysReturns(n.Else)
	}
	return false
}
