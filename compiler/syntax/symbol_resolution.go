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

import "forge/compiler/message"

// severityForScopeErrors is the severity of every diagnostic the symbol
// resolution handler emits.
var severityForScopeErrors = message.SeverityError

// SymbolResolvingNode is the surface a node exposes to the symbol resolution
// handler. Languages that use symbol resolution must have all of their nodes
// implement this interface; NoSymbol supplies the defaults for nodes that
// neither declare nor reference symbols nor bear a scope.
type SymbolResolvingNode interface {
	Node
	// DeclaredSymbolName returns the name this node declares, or "" if the
	// node does not introduce a symbol.
	DeclaredSymbolName() string
	// ReferencedSymbolName returns the name this node references, or "" if
	// the node does not name a symbol.
	ReferencedSymbolName() string
	// ResolveSymbol stores a back-reference to the declaring node. It is
	// called by the resolver on a successful lookup and does nothing on
	// nodes that do not reference symbols.
	ResolveSymbol(declaringNode Node)
	// ScopeNode reports whether this node owns a scope.
	ScopeNode() bool
	// ScopeFlags returns the declaration rules for this node's scope. Only
	// meaningful when ScopeNode is true.
	ScopeFlags() ScopeFlags
	// Scope returns the node's scope, or nil if it has none (or it has not
	// been created yet).
	Scope() *Scope
	// SetScope stores the lazily-created scope on the node.
	SetScope(scope *Scope)
}

// NoSymbol is an embeddable default implementation of the symbol-resolution
// surface for nodes that do not participate in symbol resolution.
type NoSymbol struct{}

// DeclaredSymbolName implements SymbolResolvingNode; the node declares
// nothing.
func (NoSymbol) DeclaredSymbolName() string { return "" }

// ReferencedSymbolName implements SymbolResolvingNode; the node references
// nothing.
func (NoSymbol) ReferencedSymbolName() string { return "" }

// ResolveSymbol implements SymbolResolvingNode as a no-op.
func (NoSymbol) ResolveSymbol(Node) {}

// ScopeNode implements SymbolResolvingNode; the node owns no scope.
func (NoSymbol) ScopeNode() bool { return false }

// ScopeFlags implements SymbolResolvingNode.
func (NoSymbol) ScopeFlags() ScopeFlags { return ScopeFlagNone }

// Scope implements SymbolResolvingNode.
func (NoSymbol) Scope() *Scope { return nil }

// SetScope implements SymbolResolvingNode as a no-op.
func (NoSymbol) SetScope(*Scope) {}

// ScopeHolder is an embeddable implementation of scope storage for
// scope-bearing nodes. The embedding node still defines ScopeFlags itself.
type ScopeHolder struct {
	scope *Scope
}

// ScopeNode implements SymbolResolvingNode; the node owns a scope.
func (*ScopeHolder) ScopeNode() bool { return true }

// Scope implements SymbolResolvingNode.
func (h *ScopeHolder) Scope() *Scope { return h.scope }

// SetScope implements SymbolResolvingNode.
func (h *ScopeHolder) SetScope(scope *Scope) { h.scope = scope }

// SymbolResolutionOptions configures the message codes the symbol resolution
// handler emits, so that languages keep their own code namespaces.
type SymbolResolutionOptions struct {
	// CodeUndeclared is emitted when a referenced symbol cannot be found in
	// the surrounding scope chain.
	CodeUndeclared string
	// CodeRedeclared is emitted when a declaration violates the shadowing
	// rules of its scope.
	CodeRedeclared string
	// CodeNoScope is emitted when a node declares or references a symbol but
	// no ancestor bears a scope. This is an internal error: any well-formed
	// tree roots symbols under a scope-bearing node.
	CodeNoScope string
}

// SymbolResolutionHandler lazily threads lexical scopes through the
// traversal stack and binds declarations and references bidirectionally.
//
// Scopes are created on demand: when a node needs its surrounding scope, the
// handler walks the ancestor stack from the innermost node outward until a
// scope-bearing ancestor is found, instantiates that ancestor's scope with
// the flags it reports, and chains it to the next outer scope (recursively
// instantiated the same way).
//
// Scopes flagged unordered get a pre-pass: when the scope-bearing node is
// entered, all of its direct-child declarations are registered before any
// hook runs for its descendants, so references may point at declarations
// that appear later in source order.
type SymbolResolutionHandler struct {
	options SymbolResolutionOptions
}

// NewSymbolResolutionHandler creates a symbol resolution handler with the
// given message codes.
func NewSymbolResolutionHandler(options SymbolResolutionOptions) *SymbolResolutionHandler {
	return &SymbolResolutionHandler{options: options}
}

// OnEnter implements Handler. Declarations are recorded before references at
// each level: the node's own declaration is added to the surrounding scope
// first, and within an unordered scope the pre-pass has already registered
// the sibling declarations a reference may need.
func (h *SymbolResolutionHandler) OnEnter(in *HandlerInput) HandlerOutput {
	node, ok := in.Node.(SymbolResolvingNode)
	if !ok {
		return Continue()
	}

	if node.ScopeNode() && node.ScopeFlags()&ScopeFlagUnordered != 0 {
		scope := h.ensureScope(node, in.Stack)
		node.EachChild(func(child Node) {
			declarer, ok := child.(SymbolResolvingNode)
			if !ok {
				return
			}
			if name := declarer.DeclaredSymbolName(); name != "" {
				// Redeclarations are reported when the child itself is
				// entered; the pre-pass only makes names visible early.
				scope.Add(name, child)
			}
		})
	}

	declared := node.DeclaredSymbolName()
	referenced := node.ReferencedSymbolName()
	if declared == "" && referenced == "" {
		return Continue()
	}

	parentScope := h.findSurroundingScope(in.Stack)
	if parentScope == nil {
		in.Messages.Emit(in.Node.Range(), severityForScopeErrors, h.options.CodeNoScope,
			"no surrounding scope in which to declare or resolve symbol")
		return Continue()
	}

	if declared != "" {
		if !parentScope.Add(declared, in.Node) {
			in.Messages.Emit(in.Node.Range(), severityForScopeErrors, h.options.CodeRedeclared,
				"redeclaration of existing symbol '"+declared+"'")
		}
	}

	if referenced != "" {
		if declaringNode := parentScope.Get(referenced); declaringNode != nil {
			node.ResolveSymbol(declaringNode)
		} else {
			in.Messages.Emit(in.Node.Range(), severityForScopeErrors, h.options.CodeUndeclared,
				"use of undeclared symbol '"+referenced+"'")
		}
	}

	return Continue()
}

// OnLeave implements Handler as a no-op.
func (h *SymbolResolutionHandler) OnLeave(*HandlerInput) HandlerOutput {
	return Continue()
}

// findSurroundingScope walks the ancestor stack from the innermost node
// outward and returns the scope of the nearest scope-bearing ancestor,
// instantiating it (and its outer chain) lazily. It returns nil when no
// ancestor bears a scope.
func (h *SymbolResolutionHandler) findSurroundingScope(stack []Node) *Scope {
	for i := len(stack) - 1; i >= 0; i-- {
		if ancestor, ok := stack[i].(SymbolResolvingNode); ok && ancestor.ScopeNode() {
			return h.ensureScope(ancestor, stack[:i])
		}
	}
	return nil
}

// ensureScope returns the node's scope, creating it chained to the nearest
// outer scope found in outerStack if it does not exist yet.
func (h *SymbolResolutionHandler) ensureScope(node SymbolResolvingNode, outerStack []Node) *Scope {
	if node.Scope() != nil {
		return node.Scope()
	}
	parent := h.findSurroundingScope(outerStack)
	scope := NewScope(parent, node.ScopeFlags())
	node.SetScope(scope)
	return scope
}
