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

import (
	"forge/compiler/source"
	"forge/compiler/syntax"
)

// DeclarationVariable declares a variable (or a function argument). The
// backend handle is opaque analysis state written by codegen; like resolved
// types and symbol back-references it is excluded from comparison and
// cloning.
type DeclarationVariable struct {
	declarationBase
	// Name is the declared variable name.
	Name string
	// Type is the declared type.
	Type Type
	// InitialValue is the optional initializer; nil when absent.
	InitialValue Value
	// IsConst marks a const declaration.
	IsConst bool
	// Handle is the opaque backend handle (the variable's storage).
	Handle any
}

// NewDeclarationVariable creates a variable declaration node.
func NewDeclarationVariable(r source.Range, name string, t Type, initialValue Value, isConst bool) *DeclarationVariable {
	n := &DeclarationVariable{Name: name, Type: t, InitialValue: initialValue, IsConst: isConst}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *DeclarationVariable) NodeKind() *syntax.Kind { return KindDeclarationVariable }

// Compare implements syntax.Node.
func (n *DeclarationVariable) Compare(other syntax.Node) bool {
	o, ok := other.(*DeclarationVariable)
	return ok && n.Name == o.Name && n.IsConst == o.IsConst &&
		syntax.CompareNodes(n.Type, o.Type) &&
		syntax.CompareNodes(n.InitialValue, o.InitialValue)
}

// Clone implements syntax.Node.
func (n *DeclarationVariable) Clone() syntax.Node {
	return NewDeclarationVariable(n.rng, n.Name, syntax.CloneNode(n.Type),
		syntax.CloneNode(n.InitialValue), n.IsConst)
}

// AcceptChildren implements syntax.Node.
func (n *DeclarationVariable) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.Type, err = syntax.VisitChild(v, n.Type); err != nil {
		return err
	}
	n.InitialValue, err = syntax.VisitChild(v, n.InitialValue)
	return err
}

// EachChild implements syntax.Node.
func (n *DeclarationVariable) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Type) {
		fn(n.Type)
	}
	if !syntax.IsNilNode(n.InitialValue) {
		fn(n.InitialValue)
	}
}

// FormatDebug implements syntax.Node.
func (n *DeclarationVariable) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldNode(f, "type", n.Type)
	syntax.DebugFieldNode(f, "initial_value", n.InitialValue)
	syntax.DebugFieldValue(f, "is_const", n.IsConst)
}

// DeclaredSymbolName implements syntax.SymbolResolvingNode.
func (n *DeclarationVariable) DeclaredSymbolName() string { return n.Name }

// DeclarationFunction declares a function. The function bears the scope its
// arguments live in; the body block bears its own nested scope.
type DeclarationFunction struct {
	declarationBase
	syntax.ScopeHolder
	// Name is the declared function name.
	Name string
	// Args are the argument declarations in order.
	Args []*DeclarationVariable
	// ReturnType is the declared return type.
	ReturnType Type
	// Body is the function body; nil for declarations without a body.
	Body *StatementBlock
	// Handle is the opaque backend handle (the lowered function).
	Handle any
}

// NewDeclarationFunction creates a function declaration node.
func NewDeclarationFunction(r source.Range, name string, args []*DeclarationVariable, returnType Type, body *StatementBlock) *DeclarationFunction {
	n := &DeclarationFunction{Name: name, Args: args, ReturnType: returnType, Body: body}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *DeclarationFunction) NodeKind() *syntax.Kind { return KindDeclarationFunction }

// Compare implements syntax.Node.
func (n *DeclarationFunction) Compare(other syntax.Node) bool {
	o, ok := other.(*DeclarationFunction)
	return ok && n.Name == o.Name &&
		syntax.CompareNodeSlices(n.Args, o.Args) &&
		syntax.CompareNodes(n.ReturnType, o.ReturnType) &&
		syntax.CompareNodes(n.Body, o.Body)
}

// Clone implements syntax.Node.
func (n *DeclarationFunction) Clone() syntax.Node {
	return NewDeclarationFunction(n.rng, n.Name, syntax.CloneNodeSlice(n.Args),
		syntax.CloneNode(n.ReturnType), syntax.CloneNode(n.Body))
}

// AcceptChildren implements syntax.Node.
func (n *DeclarationFunction) AcceptChildren(v syntax.Visitor) error {
	if err := syntax.VisitChildren(v, n.Args); err != nil {
		return err
	}
	var err error
	if n.ReturnType, err = syntax.VisitChild(v, n.ReturnType); err != nil {
		return err
	}
	n.Body, err = syntax.VisitChild(v, n.Body)
	return err
}

// EachChild implements syntax.Node.
func (n *DeclarationFunction) EachChild(fn func(syntax.Node)) {
	for _, arg := range n.Args {
		if arg != nil {
			fn(arg)
		}
	}
	if !syntax.IsNilNode(n.ReturnType) {
		fn(n.ReturnType)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

// FormatDebug implements syntax.Node.
func (n *DeclarationFunction) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldNodes(f, "args", n.Args)
	syntax.DebugFieldNode(f, "return_type", n.ReturnType)
	syntax.DebugFieldNode(f, "body", n.Body)
}

// DeclaredSymbolName implements syntax.SymbolResolvingNode.
func (n *DeclarationFunction) DeclaredSymbolName() string { return n.Name }

// ScopeFlags implements syntax.SymbolResolvingNode: the argument scope is
// ordered and may shadow outer declarations.
func (n *DeclarationFunction) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagAllowShadowingParent
}

// DeclarationTypeAlias declares a named alias for a type.
type DeclarationTypeAlias struct {
	declarationBase
	// Name is the declared alias name.
	Name string
	// Type is the aliased type.
	Type Type
	// IsExplicit marks aliases that require explicit casting to and from
	// the underlying type.
	IsExplicit bool
}

// NewDeclarationTypeAlias creates a type alias declaration node.
func NewDeclarationTypeAlias(r source.Range, name string, t Type, isExplicit bool) *DeclarationTypeAlias {
	n := &DeclarationTypeAlias{Name: name, Type: t, IsExplicit: isExplicit}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *DeclarationTypeAlias) NodeKind() *syntax.Kind { return KindDeclarationTypeAlias }

// Compare implements syntax.Node.
func (n *DeclarationTypeAlias) Compare(other syntax.Node) bool {
	o, ok := other.(*DeclarationTypeAlias)
	return ok && n.Name == o.Name && n.IsExplicit == o.IsExplicit &&
		syntax.CompareNodes(n.Type, o.Type)
}

// Clone implements syntax.Node.
func (n *DeclarationTypeAlias) Clone() syntax.Node {
	return NewDeclarationTypeAlias(n.rng, n.Name, syntax.CloneNode(n.Type), n.IsExplicit)
}

// AcceptChildren implements syntax.Node.
func (n *DeclarationTypeAlias) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.Type, err = syntax.VisitChild(v, n.Type)
	return err
}

// EachChild implements syntax.Node.
func (n *DeclarationTypeAlias) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Type) {
		fn(n.Type)
	}
}

// FormatDebug implements syntax.Node.
func (n *DeclarationTypeAlias) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldNode(f, "type", n.Type)
	syntax.DebugFieldValue(f, "is_explicit", n.IsExplicit)
}

// DeclaredSymbolName implements syntax.SymbolResolvingNode.
func (n *DeclarationTypeAlias) DeclaredSymbolName() string { return n.Name }

// DeclarationStructuredType declares a named struct or interface. Its body
// is an unordered scope.
type DeclarationStructuredType struct {
	declarationBase
	syntax.ScopeHolder
	// Name is the declared type name.
	Name string
	// StructuredKind selects between struct and interface.
	StructuredKind StructuredKind
	// Members are the member declarations of the body.
	Members []Declaration
	// Inherits are the types the declaration inherits from.
	Inherits []Type
}

// NewDeclarationStructuredType creates a structured type declaration node.
func NewDeclarationStructuredType(r source.Range, name string, kind StructuredKind, members []Declaration, inherits []Type) *DeclarationStructuredType {
	n := &DeclarationStructuredType{Name: name, StructuredKind: kind, Members: members, Inherits: inherits}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *DeclarationStructuredType) NodeKind() *syntax.Kind { return KindDeclarationStructuredType }

// Compare implements syntax.Node.
func (n *DeclarationStructuredType) Compare(other syntax.Node) bool {
	o, ok := other.(*DeclarationStructuredType)
	return ok && n.Name == o.Name && n.StructuredKind == o.StructuredKind &&
		syntax.CompareNodeSlices(n.Members, o.Members) &&
		syntax.CompareNodeSlices(n.Inherits, o.Inherits)
}

// Clone implements syntax.Node.
func (n *DeclarationStructuredType) Clone() syntax.Node {
	return NewDeclarationStructuredType(n.rng, n.Name, n.StructuredKind,
		syntax.CloneNodeSlice(n.Members), syntax.CloneNodeSlice(n.Inherits))
}

// AcceptChildren implements syntax.Node.
func (n *DeclarationStructuredType) AcceptChildren(v syntax.Visitor) error {
	if err := syntax.VisitChildren(v, n.Members); err != nil {
		return err
	}
	return syntax.VisitChildren(v, n.Inherits)
}

// EachChild implements syntax.Node.
func (n *DeclarationStructuredType) EachChild(fn func(syntax.Node)) {
	for _, member := range n.Members {
		if !syntax.IsNilNode(member) {
			fn(member)
		}
	}
	for _, inherit := range n.Inherits {
		if !syntax.IsNilNode(inherit) {
			fn(inherit)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *DeclarationStructuredType) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldValue(f, "structured_kind", n.StructuredKind)
	syntax.DebugFieldNodes(f, "members", n.Members)
	syntax.DebugFieldNodes(f, "inherits", n.Inherits)
}

// DeclaredSymbolName implements syntax.SymbolResolvingNode.
func (n *DeclarationStructuredType) DeclaredSymbolName() string { return n.Name }

// ScopeFlags implements syntax.SymbolResolvingNode: the body scope is
// unordered and may shadow outer declarations.
func (n *DeclarationStructuredType) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagUnordered | syntax.ScopeFlagAllowShadowingParent
}

// DeclarationNamespace declares a namespace of member declarations. Its body
// is an unordered scope.
type DeclarationNamespace struct {
	declarationBase
	syntax.ScopeHolder
	// Name is the declared namespace name.
	Name string
	// Members are the declarations inside the namespace.
	Members []Declaration
}

// NewDeclarationNamespace creates a namespace declaration node.
func NewDeclarationNamespace(r source.Range, name string, members []Declaration) *DeclarationNamespace {
	n := &DeclarationNamespace{Name: name, Members: members}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *DeclarationNamespace) NodeKind() *syntax.Kind { return KindDeclarationNamespace }

// Compare implements syntax.Node.
func (n *DeclarationNamespace) Compare(other syntax.Node) bool {
	o, ok := other.(*DeclarationNamespace)
	return ok && n.Name == o.Name && syntax.CompareNodeSlices(n.Members, o.Members)
}

// Clone implements syntax.Node.
func (n *DeclarationNamespace) Clone() syntax.Node {
	return NewDeclarationNamespace(n.rng, n.Name, syntax.CloneNodeSlice(n.Members))
}

// AcceptChildren implements syntax.Node.
func (n *DeclarationNamespace) AcceptChildren(v syntax.Visitor) error {
	return syntax.VisitChildren(v, n.Members)
}

// EachChild implements syntax.Node.
func (n *DeclarationNamespace) EachChild(fn func(syntax.Node)) {
	for _, member := range n.Members {
		if !syntax.IsNilNode(member) {
			fn(member)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *DeclarationNamespace) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldNodes(f, "members", n.Members)
}

// DeclaredSymbolName implements syntax.SymbolResolvingNode.
func (n *DeclarationNamespace) DeclaredSymbolName() string { return n.Name }

// ScopeFlags implements syntax.SymbolResolvingNode.
func (n *DeclarationNamespace) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagUnordered | syntax.ScopeFlagAllowShadowingParent
}
