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

// StatementBasicKind is the kind of a StatementBasic node.
type StatementBasicKind uint8

const (
	// StatementContinue is a "continue;" statement.
	StatementContinue StatementBasicKind = iota
	// StatementBreak is a "break;" statement.
	StatementBreak
	// StatementReturnVoid is a "return;" statement with no value.
	StatementReturnVoid
)

// String returns the source spelling of the basic statement kind.
func (k StatementBasicKind) String() string {
	switch k {
	case StatementContinue:
		return "continue"
	case StatementBreak:
		return "break"
	case StatementReturnVoid:
		return "return"
	}
	return "?"
}

// StatementBasic is a statement with no children: continue, break, or a
// void return.
type StatementBasic struct {
	statementBase
	// BasicKind selects which basic statement this is.
	BasicKind StatementBasicKind
}

// NewStatementBasic creates a basic statement node.
func NewStatementBasic(r source.Range, kind StatementBasicKind) *StatementBasic {
	n := &StatementBasic{BasicKind: kind}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementBasic) NodeKind() *syntax.Kind { return KindStatementBasic }

// Compare implements syntax.Node.
func (n *StatementBasic) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementBasic)
	return ok && n.BasicKind == o.BasicKind
}

// Clone implements syntax.Node.
func (n *StatementBasic) Clone() syntax.Node {
	return NewStatementBasic(n.rng, n.BasicKind)
}

// AcceptChildren implements syntax.Node; basic statements have no children.
func (n *StatementBasic) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node.
func (n *StatementBasic) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *StatementBasic) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "basic_kind", n.BasicKind)
}

// StatementValueKind is the kind of a StatementValue node.
type StatementValueKind uint8

const (
	// StatementExecute evaluates a value for its effects ("f();").
	StatementExecute StatementValueKind = iota
	// StatementReturn returns a value ("return a;").
	StatementReturn
)

// String returns a display name for the statement value kind.
func (k StatementValueKind) String() string {
	if k == StatementReturn {
		return "return"
	}
	return "execute"
}

// StatementValue is a statement built around one value: either a standalone
// expression or a value-returning return.
type StatementValue struct {
	statementBase
	// ValueKind selects between execution and return.
	ValueKind StatementValueKind
	// Value is the value of the statement.
	Value Value
}

// NewStatementValue creates a value statement node.
func NewStatementValue(r source.Range, kind StatementValueKind, value Value) *StatementValue {
	n := &StatementValue{ValueKind: kind, Value: value}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementValue) NodeKind() *syntax.Kind { return KindStatementValue }

// Compare implements syntax.Node.
func (n *StatementValue) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementValue)
	return ok && n.ValueKind == o.ValueKind && syntax.CompareNodes(n.Value, o.Value)
}

// Clone implements syntax.Node.
func (n *StatementValue) Clone() syntax.Node {
	return NewStatementValue(n.rng, n.ValueKind, syntax.CloneNode(n.Value))
}

// AcceptChildren implements syntax.Node.
func (n *StatementValue) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.Value, err = syntax.VisitChild(v, n.Value)
	return err
}

// EachChild implements syntax.Node.
func (n *StatementValue) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Value) {
		fn(n.Value)
	}
}

// FormatDebug implements syntax.Node.
func (n *StatementValue) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "value_kind", n.ValueKind)
	syntax.DebugFieldNode(f, "value", n.Value)
}

// StatementDeclaration wraps a declaration appearing in statement position.
type StatementDeclaration struct {
	statementBase
	// Declaration is the wrapped declaration.
	Declaration Declaration
}

// NewStatementDeclaration creates a declaration statement node.
func NewStatementDeclaration(r source.Range, declaration Declaration) *StatementDeclaration {
	n := &StatementDeclaration{Declaration: declaration}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementDeclaration) NodeKind() *syntax.Kind { return KindStatementDeclaration }

// Compare implements syntax.Node.
func (n *StatementDeclaration) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementDeclaration)
	return ok && syntax.CompareNodes(n.Declaration, o.Declaration)
}

// Clone implements syntax.Node.
func (n *StatementDeclaration) Clone() syntax.Node {
	return NewStatementDeclaration(n.rng, syntax.CloneNode(n.Declaration))
}

// AcceptChildren implements syntax.Node.
func (n *StatementDeclaration) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.Declaration, err = syntax.VisitChild(v, n.Declaration)
	return err
}

// EachChild implements syntax.Node.
func (n *StatementDeclaration) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Declaration) {
		fn(n.Declaration)
	}
}

// FormatDebug implements syntax.Node.
func (n *StatementDeclaration) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "declaration", n.Declaration)
}

// StatementBlock is a braced sequence of statements. Blocks bear an ordered
// scope that may shadow names declared in outer scopes.
type StatementBlock struct {
	statementBase
	syntax.ScopeHolder
	// Statements are the statements of the block in order.
	Statements []Statement
}

// NewStatementBlock creates a block node.
func NewStatementBlock(r source.Range, statements []Statement) *StatementBlock {
	n := &StatementBlock{Statements: statements}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementBlock) NodeKind() *syntax.Kind { return KindStatementBlock }

// Compare implements syntax.Node.
func (n *StatementBlock) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementBlock)
	return ok && syntax.CompareNodeSlices(n.Statements, o.Statements)
}

// Clone implements syntax.Node.
func (n *StatementBlock) Clone() syntax.Node {
	return NewStatementBlock(n.rng, syntax.CloneNodeSlice(n.Statements))
}

// AcceptChildren implements syntax.Node.
func (n *StatementBlock) AcceptChildren(v syntax.Visitor) error {
	return syntax.VisitChildren(v, n.Statements)
}

// EachChild implements syntax.Node.
func (n *StatementBlock) EachChild(fn func(syntax.Node)) {
	for _, statement := range n.Statements {
		if !syntax.IsNilNode(statement) {
			fn(statement)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *StatementBlock) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNodes(f, "statements", n.Statements)
}

// ScopeFlags implements syntax.SymbolResolvingNode: block scopes are ordered
// and may shadow outer declarations.
func (n *StatementBlock) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagAllowShadowingParent
}

// StatementIf is an if statement with an optional else branch. An
// "if ... else if ..." chain is an else branch whose statement is another
// StatementIf.
type StatementIf struct {
	statementBase
	// Condition is the condition value.
	Condition Value
	// Then is the true branch.
	Then *StatementBlock
	// Else is the optional false branch: either a block or another
	// StatementIf. Nil when absent.
	Else Statement
}

// NewStatementIf creates an if statement node.
func NewStatementIf(r source.Range, condition Value, then *StatementBlock, els Statement) *StatementIf {
	n := &StatementIf{Condition: condition, Then: then, Else: els}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementIf) NodeKind() *syntax.Kind { return KindStatementIf }

// Compare implements syntax.Node.
func (n *StatementIf) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementIf)
	return ok && syntax.CompareNodes(n.Condition, o.Condition) &&
		syntax.CompareNodes(n.Then, o.Then) && syntax.CompareNodes(n.Else, o.Else)
}

// Clone implements syntax.Node.
func (n *StatementIf) Clone() syntax.Node {
	return NewStatementIf(n.rng, syntax.CloneNode(n.Condition),
		syntax.CloneNode(n.Then), syntax.CloneNode(n.Else))
}

// AcceptChildren implements syntax.Node.
func (n *StatementIf) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.Condition, err = syntax.VisitChild(v, n.Condition); err != nil {
		return err
	}
	if n.Then, err = syntax.VisitChild(v, n.Then); err != nil {
		return err
	}
	n.Else, err = syntax.VisitChild(v, n.Else)
	return err
}

// EachChild implements syntax.Node.
func (n *StatementIf) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Condition) {
		fn(n.Condition)
	}
	if n.Then != nil {
		fn(n.Then)
	}
	if !syntax.IsNilNode(n.Else) {
		fn(n.Else)
	}
}

// FormatDebug implements syntax.Node.
func (n *StatementIf) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "condition", n.Condition)
	syntax.DebugFieldNode(f, "then", n.Then)
	syntax.DebugFieldNode(f, "else", n.Else)
}

// StatementWhile is a while or do-while loop.
type StatementWhile struct {
	statementBase
	// Condition is the loop condition.
	Condition Value
	// Body is the loop body.
	Body *StatementBlock
	// IsDoWhile marks a do-while loop, whose body executes once before the
	// condition is first checked.
	IsDoWhile bool
}

// NewStatementWhile creates a while statement node.
func NewStatementWhile(r source.Range, condition Value, body *StatementBlock, isDoWhile bool) *StatementWhile {
	n := &StatementWhile{Condition: condition, Body: body, IsDoWhile: isDoWhile}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *StatementWhile) NodeKind() *syntax.Kind { return KindStatementWhile }

// Compare implements syntax.Node.
func (n *StatementWhile) Compare(other syntax.Node) bool {
	o, ok := other.(*StatementWhile)
	return ok && n.IsDoWhile == o.IsDoWhile &&
		syntax.CompareNodes(n.Condition, o.Condition) && syntax.CompareNodes(n.Body, o.Body)
}

// Clone implements syntax.Node.
func (n *StatementWhile) Clone() syntax.Node {
	return NewStatementWhile(n.rng, syntax.CloneNode(n.Condition),
		syntax.CloneNode(n.Body), n.IsDoWhile)
}

// AcceptChildren implements syntax.Node.
func (n *StatementWhile) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.Condition, err = syntax.VisitChild(v, n.Condition); err != nil {
		return err
	}
	n.Body, err = syntax.VisitChild(v, n.Body)
	return err
}

// EachChild implements syntax.Node.
func (n *StatementWhile) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Condition) {
		fn(n.Condition)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

// FormatDebug implements syntax.Node.
func (n *StatementWhile) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "condition", n.Condition)
	syntax.DebugFieldNode(f, "body", n.Body)
	syntax.DebugFieldValue(f, "is_do_while", n.IsDoWhile)
}
