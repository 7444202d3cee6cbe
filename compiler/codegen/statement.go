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

// FunctionContext is the control-flow context threaded through statement
// lowering: the enclosing function (tree node and backend handle), its
// entry block, and the branch targets of the innermost loop.
type FunctionContext struct {
	// Decl is the enclosing function declaration.
	Decl *ast.DeclarationFunction
	// Handle is the backend handle of the enclosing function.
	Handle Function
	// Entry is the function's entry block.
	Entry Block
	// LoopBody is the target of "continue": the innermost loop's condition
	// check. Nil outside loops.
	LoopBody Block
	// LoopAfter is the target of "break": the block after the innermost
	// loop. Nil outside loops.
	LoopAfter Block
}

// withLoop derives a context for statements inside a loop body.
func (f *FunctionContext) withLoop(loopBody Block, loopAfter Block) *FunctionContext {
	derived := *f
	derived.LoopBody = loopBody
	derived.LoopAfter = loopAfter
	return &derived
}

// EmitStatement lowers one statement into the backend's current insertion
// block and returns the block in which the next statement should be
// emitted, or nil if the statement terminated control flow.
func EmitStatement(ctx *Context, fctx *FunctionContext, statement ast.Statement) (Block, error) {
	b := ctx.Backend()

	switch n := statement.(type) {
	case *ast.StatementBasic:
		switch n.BasicKind {
		case ast.StatementContinue:
			if fctx.LoopBody == nil {
				return nil, fmt.Errorf("continue outside of a loop")
			}
			b.Br(fctx.LoopBody)
			return nil, nil
		case ast.StatementBreak:
			if fctx.LoopAfter == nil {
				return nil, fmt.Errorf("break outside of a loop")
			}
			b.Br(fctx.LoopAfter)
			return nil, nil
		case ast.StatementReturnVoid:
			b.RetVoid()
			return nil, nil
		}
		return nil, fmt.Errorf("unknown basic statement kind %v", n.BasicKind)

	case *ast.StatementValue:
		if n.ValueKind == ast.StatementReturn {
			value, err := EmitValueImplicitCast(ctx, n.Value, fctx.Decl.ReturnType)
			if err != nil {
				return nil, err
			}
			b.Ret(value)
			return nil, nil
		}
		if _, err := EmitValue(ctx, n.Value); err != nil {
			return nil, err
		}
		return b.InsertBlock(), nil

	case *ast.StatementDeclaration:
		variable, ok := n.Declaration.(*ast.DeclarationVariable)
		if !ok {
			return nil, fmt.Errorf("declaration %T cannot appear in statement position", n.Declaration)
		}
		return emitVariableStorage(ctx, variable)

	case *ast.StatementBlock:
		return emitBlock(ctx, fctx, n)

	case *ast.StatementIf:
		return emitIf(ctx, fctx, n)

	case *ast.StatementWhile:
		return emitWhile(ctx, fctx, n)
	}

	return nil, fmt.Errorf("unknown statement node %T", statement)
}

// emitVariableStorage allocates storage for a local variable and stores its
// initializer.
func emitVariableStorage(ctx *Context, variable *ast.DeclarationVariable) (Block, error) {
	b := ctx.Backend()

	variableType, err := EmitType(ctx, variable.ResolvedType())
	if err != nil {
		return nil, err
	}
	pointer := b.Alloca(variableType, variable.Name)
	variable.Handle = pointer

	if !syntax.IsNilNode(variable.InitialValue) {
		initial, err := EmitValueImplicitCast(ctx, variable.InitialValue, variable.ResolvedType())
		if err != nil {
			return nil, err
		}
		b.Store(initial, pointer)
	}
	return b.InsertBlock(), nil
}

// emitBlock lowers a block's statements in order, stopping once a statement
// terminates control flow (any statements past it were already reported as
// unreachable by validation).
func emitBlock(ctx *Context, fctx *FunctionContext, block *ast.StatementBlock) (Block, error) {
	current := ctx.Backend().InsertBlock()
	for _, statement := range block.Statements {
		next, err := EmitStatement(ctx, fctx, statement)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, nil
		}
		current = next
	}
	return current, nil
}

// emitIf lowers an if statement to a conditional branch. Both branches fall
// through to a join block unless they terminate on their own.
func emitIf(ctx *Context, fctx *FunctionContext, n *ast.StatementIf) (Block, error) {
	b := ctx.Backend()

	condition, err := EmitValue(ctx, n.Condition)
	if err != nil {
		return nil, err
	}

	thenBlock := b.CreateBlock(fctx.Handle, "if.then")
	afterBlock := b.CreateBlock(fctx.Handle, "if.after")
	elseTarget := afterBlock
	hasElse := !syntax.IsNilNode(n.Else)
	if hasElse {
		elseTarget = b.CreateBlock(fctx.Handle, "if.else")
	}
	b.CondBr(condition, thenBlock, elseTarget)

	b.SetInsertPoint(thenBlock)
	thenEnd, err := EmitStatement(ctx, fctx, n.Then)
	if err != nil {
		return nil, err
	}
	if thenEnd != nil {
		b.Br(afterBlock)
	}

	elseEnd := Block(nil)
	if hasElse {
		b.SetInsertPoint(elseTarget)
		elseEnd, err = EmitStatement(ctx, fctx, n.Else)
		if err != nil {
			return nil, err
		}
		if elseEnd != nil {
			b.Br(afterBlock)
		}
	}

	if hasElse && thenEnd == nil && elseEnd == nil {
		// Both branches terminated; nothing ever reaches the join block.
		return nil, nil
	}
	b.SetInsertPoint(afterBlock)
	return afterBlock, nil
}

// emitWhile lowers while and do-while loops. The condition check is the
// "continue" target; the block after the loop is the "break" target. A
// do-while enters the body before the first condition check.
func emitWhile(ctx *Context, fctx *FunctionContext, n *ast.StatementWhile) (Block, error) {
	b := ctx.Backend()

	condBlock := b.CreateBlock(fctx.Handle, "while.cond")
	bodyBlock := b.CreateBlock(fctx.Handle, "while.body")
	afterBlock := b.CreateBlock(fctx.Handle, "while.after")

	if n.IsDoWhile {
		b.Br(bodyBlock)
	} else {
		b.Br(condBlock)
	}

	b.SetInsertPoint(condBlock)
	condition, err := EmitValue(ctx, n.Condition)
	if err != nil {
		return nil, err
	}
	b.CondBr(condition, bodyBlock, afterBlock)

	b.SetInsertPoint(bodyBlock)
	bodyEnd, err := EmitStatement(ctx, fctx.withLoop(condBlock, afterBlock), n.Body)
	if err != nil {
		return nil, err
	}
	if bodyEnd != nil {
		b.Br(condBlock)
	}

	b.SetInsertPoint(afterBlock)
	return afterBlock, nil
}
