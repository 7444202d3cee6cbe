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

package syntax_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/ast"
	"forge/compiler/message"
	"forge/compiler/source"
	"forge/compiler/syntax"
)

// recordingHandler logs every hook invocation together with the stack depth
// at the time.
type recordingHandler struct {
	events []string
	// enterStatus lets tests steer the traversal per node kind.
	enterStatus func(node syntax.Node) syntax.HandlerOutput
}

func (h *recordingHandler) OnEnter(in *syntax.HandlerInput) syntax.HandlerOutput {
	h.events = append(h.events, fmt.Sprintf("enter %s depth=%d", in.Node.NodeKind(), len(in.Stack)))
	if h.enterStatus != nil {
		return h.enterStatus(in.Node)
	}
	return syntax.Continue()
}

func (h *recordingHandler) OnLeave(in *syntax.HandlerInput) syntax.HandlerOutput {
	h.events = append(h.events, fmt.Sprintf("leave %s depth=%d", in.Node.NodeKind(), len(in.Stack)))
	return syntax.Continue()
}

// smallTree builds: block { continue; break; }.
func smallTree() *ast.StatementBlock {
	return ast.NewStatementBlock(source.Range{}, []ast.Statement{
		ast.NewStatementBasic(source.Range{}, ast.StatementContinue),
		ast.NewStatementBasic(source.Range{}, ast.StatementBreak),
	})
}

func TestPassVisitsEachNodeInEnterLeavePairs(t *testing.T) {
	handler := &recordingHandler{}
	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(handler)

	_, completed := pass.Run(smallTree())
	require.True(t, completed)

	assert.Equal(t, []string{
		"enter StatementBlock depth=0",
		"enter StatementBasic depth=1",
		"leave StatementBasic depth=1",
		"enter StatementBasic depth=1",
		"leave StatementBasic depth=1",
		"leave StatementBlock depth=0",
	}, handler.events)
	assert.Empty(t, pass.Stack(), "the stack unwinds completely")
}

func TestPassSkipChildren(t *testing.T) {
	handler := &recordingHandler{
		enterStatus: func(node syntax.Node) syntax.HandlerOutput {
			if node.NodeKind() == ast.KindStatementBlock {
				return syntax.SkipChildren()
			}
			return syntax.Continue()
		},
	}
	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(handler)

	_, completed := pass.Run(smallTree())
	require.True(t, completed)

	assert.Equal(t, []string{
		"enter StatementBlock depth=0",
		"leave StatementBlock depth=0",
	}, handler.events)
}

func TestPassHaltStopsBeforeAnyLaterEnter(t *testing.T) {
	first := &recordingHandler{
		enterStatus: func(node syntax.Node) syntax.HandlerOutput {
			if node.NodeKind() == ast.KindStatementBasic {
				return syntax.Halt()
			}
			return syntax.Continue()
		},
	}
	second := &recordingHandler{}
	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(first)
	pass.AddHandler(second)

	_, completed := pass.Run(smallTree())
	assert.False(t, completed)

	// The second handler saw the block's enter, but never the halted
	// statement, and no leave hooks ran after the halt.
	assert.Equal(t, []string{"enter StatementBlock depth=0"}, second.events)
	assert.Equal(t, []string{
		"enter StatementBlock depth=0",
		"enter StatementBasic depth=1",
	}, first.events)
}

// replacingHandler swaps every true literal for a false one on enter.
type replacingHandler struct{}

func (replacingHandler) OnEnter(in *syntax.HandlerInput) syntax.HandlerOutput {
	if literal, ok := in.Node.(*ast.ValueLiteralBool); ok && literal.Value {
		return syntax.Replace(ast.NewValueLiteralBool(literal.Range(), false))
	}
	return syntax.Continue()
}

func (replacingHandler) OnLeave(*syntax.HandlerInput) syntax.HandlerOutput {
	return syntax.Continue()
}

func TestPassReplacementIsWrittenIntoTheParent(t *testing.T) {
	unary := ast.NewValueUnary(source.Range{}, ast.UnaryBoolNot,
		ast.NewValueLiteralBool(source.Range{}, true))

	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(replacingHandler{})

	_, completed := pass.Run(unary)
	require.True(t, completed)

	literal, ok := unary.Operand.(*ast.ValueLiteralBool)
	require.True(t, ok)
	assert.False(t, literal.Value, "the replacement landed in the child slot")
}

func TestPassReplacementOfTheRoot(t *testing.T) {
	root := ast.NewValueLiteralBool(source.Range{}, true)

	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(replacingHandler{})

	replaced, completed := pass.Run(root)
	require.True(t, completed)
	literal, ok := replaced.(*ast.ValueLiteralBool)
	require.True(t, ok)
	assert.False(t, literal.Value)
}

func TestPassDetectsCycles(t *testing.T) {
	block := ast.NewStatementBlock(source.Range{}, nil)
	block.Statements = []ast.Statement{block}

	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(&recordingHandler{})

	require.Panics(t, func() {
		pass.Run(block)
	})
}

func TestSurroundingOf(t *testing.T) {
	inner := ast.NewStatementBasic(source.Range{}, ast.StatementContinue)
	block := ast.NewStatementBlock(source.Range{}, []ast.Statement{inner})
	while := ast.NewStatementWhile(source.Range{},
		ast.NewValueLiteralBool(source.Range{}, true), block, false)

	var foundWhile *ast.StatementWhile
	handler := &recordingHandler{
		enterStatus: func(node syntax.Node) syntax.HandlerOutput {
			return syntax.Continue()
		},
	}
	pass := syntax.NewPass(message.NewContext())
	pass.AddHandler(handler)
	pass.AddHandler(&surroundingProbe{target: inner, found: &foundWhile})

	_, completed := pass.Run(while)
	require.True(t, completed)
	assert.Same(t, while, foundWhile)
}

// surroundingProbe records the nearest surrounding while statement when it
// reaches the target node.
type surroundingProbe struct {
	target syntax.Node
	found  **ast.StatementWhile
}

func (p *surroundingProbe) OnEnter(in *syntax.HandlerInput) syntax.HandlerOutput {
	if in.Node == p.target {
		if surrounding, ok := syntax.SurroundingOf[*ast.StatementWhile](in); ok {
			*p.found = surrounding
		}
	}
	return syntax.Continue()
}

func (p *surroundingProbe) OnLeave(*syntax.HandlerInput) syntax.HandlerOutput {
	return syntax.Continue()
}
