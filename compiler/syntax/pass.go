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

package syntax

import (
	"errors"

	"forge/compiler/message"
)

// errHaltTraversal is the sentinel that propagates a StatusHalt up the
// recursion. It never escapes Pass.Run.
var errHaltTraversal = errors.New("traversal halted by handler")

// HandlerInput is the set of parameters passed into a handler hook.
type HandlerInput struct {
	// Messages is the context used to emit messages from validation and
	// such.
	Messages *message.Context
	// Stack holds the ancestors of the current node: the root is at index 0
	// and the direct parent is at the last index. The current node is not on
	// the stack while its hooks run.
	Stack []Node
	// Node is the node being visited.
	Node Node
}

// SurroundingOf returns the nearest ancestor of the input's node whose
// concrete type is T, or false if there is none.
func SurroundingOf[T Node](in *HandlerInput) (T, bool) {
	for i := len(in.Stack) - 1; i >= 0; i-- {
		if casted, ok := in.Stack[i].(T); ok {
			return casted, true
		}
	}
	var zero T
	return zero, false
}

// HandlerOutput is the compound return type of a handler hook: a traversal
// status plus an optional replacement for the current node.
type HandlerOutput struct {
	Status      VisitorStatus
	Replacement Node
}

// Continue returns the default handler output: no replacement, traversal
// continues as normal.
func Continue() HandlerOutput {
	return HandlerOutput{}
}

// SkipChildren returns an output that skips the walk over the current node's
// children.
func SkipChildren() HandlerOutput {
	return HandlerOutput{Status: StatusSkipChildren}
}

// Halt returns an output that aborts the entire walk.
func Halt() HandlerOutput {
	return HandlerOutput{Status: StatusHalt}
}

// Replace returns an output that swaps the current node for replacement and
// continues traversal as normal.
func Replace(replacement Node) HandlerOutput {
	return HandlerOutput{Replacement: replacement}
}

// Handler is a pluggable unit of per-node behavior within a pass. Hooks can
// mutate the current node, emit messages, replace the node, and direct how
// the traversal continues.
type Handler interface {
	// OnEnter is called when the pass enters a node, before its children are
	// visited.
	OnEnter(in *HandlerInput) HandlerOutput
	// OnLeave is called when the pass leaves a node, after its children were
	// visited.
	OnLeave(in *HandlerInput) HandlerOutput
}

// Pass is a visitor composed of an ordered sequence of handlers, so that
// independent analyses share a single walk over the tree. On entering a node
// every handler's OnEnter runs in sequence; on leaving, every handler's
// OnLeave runs in the same forward order.
type Pass struct {
	messages *message.Context
	handlers []Handler
	stack    []Node
}

// NewPass creates a pass that emits messages into the given context.
func NewPass(messages *message.Context) *Pass {
	return &Pass{messages: messages}
}

// AddHandler appends a handler to the pass. Handlers run in the order they
// were added.
func (p *Pass) AddHandler(h Handler) {
	p.messagesMustExist()
	p.handlers = append(p.handlers, h)
}

// Run walks the tree rooted at root. It returns the (possibly replaced) root
// and true if the walk ran to completion, or false if a handler halted it.
func (p *Pass) Run(root Node) (Node, bool) {
	replaced, err := p.Visit(root)
	if err != nil {
		if errors.Is(err, errHaltTraversal) {
			return replaced, false
		}
		// AcceptChildren implementations only propagate visitor errors, and
		// the only error this visitor produces is the halt sentinel.
		panic(err)
	}
	return replaced, true
}

// Visit implements Visitor. It runs the enter hooks, pushes the node onto
// the ancestor stack, walks the children (unless skipped), pops the node,
// and runs the leave hooks. Replacements swap the node in place so that
// subsequent handlers and the child walk observe the replacement.
func (p *Pass) Visit(node Node) (Node, error) {
	node, enterStatus := p.runHandlers(node, true)
	if enterStatus == StatusHalt {
		return node, errHaltTraversal
	}

	// A node that is already a live ancestor means the tree has a cycle,
	// which would make the walk revisit live frames and never terminate.
	for _, ancestor := range p.stack {
		if ancestor == node {
			panic("node is already in the traversal stack - there is a cycle in the syntax tree")
		}
	}
	p.stack = append(p.stack, node)

	if enterStatus != StatusSkipChildren {
		if err := node.AcceptChildren(p); err != nil {
			p.stack = p.stack[:len(p.stack)-1]
			return node, err
		}
	}

	p.stack = p.stack[:len(p.stack)-1]

	node, leaveStatus := p.runHandlers(node, false)
	if leaveStatus == StatusHalt {
		return node, errHaltTraversal
	}
	return node, nil
}

// runHandlers runs every handler's enter or leave hook on node, swapping in
// replacements between handlers. A skip-children request is remembered but
// the remaining handlers still run; a halt request wins immediately.
func (p *Pass) runHandlers(node Node, enter bool) (Node, VisitorStatus) {
	skipChildren := false
	for _, h := range p.handlers {
		in := &HandlerInput{Messages: p.messages, Stack: p.stack, Node: node}
		var out HandlerOutput
		if enter {
			out = h.OnEnter(in)
		} else {
			out = h.OnLeave(in)
		}
		switch out.Status {
		case StatusSkipChildren:
			skipChildren = true
		case StatusHalt:
			if out.Replacement != nil {
				node = out.Replacement
			}
			return node, StatusHalt
		}
		if out.Replacement != nil {
			node = out.Replacement
		}
	}
	if skipChildren {
		return node, StatusSkipChildren
	}
	return node, StatusContinue
}

// Stack returns the current ancestor stack. It is primarily useful in tests.
func (p *Pass) Stack() []Node {
	return p.stack
}

// messagesMustExist guards against constructing a Pass without NewPass.
func (p *Pass) messagesMustExist() {
	if p.messages == nil {
		panic("pass constructed without a message context")
	}
}
