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
	"fmt"

	"forge/compiler/source"
	"forge/compiler/syntax"
)

// Number is the tagged value of a number literal, keyed by the literal's
// numeric kind and bit width. Equality is structural.
type Number struct {
	// Kind mirrors the numeric kind of the literal's type.
	Kind NumericKind
	// BitWidth mirrors the bit width of the literal's type.
	BitWidth int
	// Int holds the value for signed literals.
	Int int64
	// Uint holds the value for unsigned literals.
	Uint uint64
	// Float holds the value for float literals.
	Float float64
}

// String formats the number by its active variant.
func (n Number) String() string {
	switch n.Kind {
	case NumericSignedInt:
		return fmt.Sprintf("%d", n.Int)
	case NumericUnsignedInt:
		return fmt.Sprintf("%d", n.Uint)
	default:
		return fmt.Sprintf("%g", n.Float)
	}
}

// ValueLiteralBool is a boolean literal.
type ValueLiteralBool struct {
	valueBase
	// Value is the literal value.
	Value bool
}

// NewValueLiteralBool creates a boolean literal node.
func NewValueLiteralBool(r source.Range, value bool) *ValueLiteralBool {
	n := &ValueLiteralBool{Value: value}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueLiteralBool) NodeKind() *syntax.Kind { return KindValueLiteralBool }

// Compare implements syntax.Node.
func (n *ValueLiteralBool) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueLiteralBool)
	return ok && n.Value == o.Value
}

// Clone implements syntax.Node.
func (n *ValueLiteralBool) Clone() syntax.Node {
	return NewValueLiteralBool(n.rng, n.Value)
}

// AcceptChildren implements syntax.Node; literals have no children.
func (n *ValueLiteralBool) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node.
func (n *ValueLiteralBool) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *ValueLiteralBool) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "value", n.Value)
}

// ValueLiteralNumber is a number literal. The literal owns its declared
// type, which the type resolution handler clones into the resolved type.
type ValueLiteralNumber struct {
	valueBase
	// Type is the declared type of the literal.
	Type *TypeWithBitWidth
	// Value is the literal value, tagged consistently with Type.
	Value Number
}

// NewValueLiteralNumber creates a number literal node.
func NewValueLiteralNumber(r source.Range, t *TypeWithBitWidth, value Number) *ValueLiteralNumber {
	n := &ValueLiteralNumber{Type: t, Value: value}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueLiteralNumber) NodeKind() *syntax.Kind { return KindValueLiteralNumber }

// Compare implements syntax.Node.
func (n *ValueLiteralNumber) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueLiteralNumber)
	return ok && n.Value == o.Value && syntax.CompareNodes(n.Type, o.Type)
}

// Clone implements syntax.Node.
func (n *ValueLiteralNumber) Clone() syntax.Node {
	return NewValueLiteralNumber(n.rng, syntax.CloneNode(n.Type), n.Value)
}

// AcceptChildren implements syntax.Node.
func (n *ValueLiteralNumber) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.Type, err = syntax.VisitChild(v, n.Type)
	return err
}

// EachChild implements syntax.Node.
func (n *ValueLiteralNumber) EachChild(fn func(syntax.Node)) {
	if n.Type != nil {
		fn(n.Type)
	}
}

// FormatDebug implements syntax.Node.
func (n *ValueLiteralNumber) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "type", n.Type)
	syntax.DebugFieldValue(f, "value", n.Value)
}

// ValueSymbol is a value referenced by name.
type ValueSymbol struct {
	valueBase
	// Name is the referenced symbol name.
	Name string
	// ReferencedDeclaration is the non-owning back-reference populated by
	// the symbol resolution handler; excluded from comparison and cloning.
	ReferencedDeclaration Declaration
}

// NewValueSymbol creates a value symbol node.
func NewValueSymbol(r source.Range, name string) *ValueSymbol {
	n := &ValueSymbol{Name: name}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueSymbol) NodeKind() *syntax.Kind { return KindValueSymbol }

// Compare implements syntax.Node.
func (n *ValueSymbol) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueSymbol)
	return ok && n.Name == o.Name
}

// Clone implements syntax.Node.
func (n *ValueSymbol) Clone() syntax.Node {
	return NewValueSymbol(n.rng, n.Name)
}

// AcceptChildren implements syntax.Node; the referenced declaration is a
// back-reference, not a child.
func (n *ValueSymbol) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node.
func (n *ValueSymbol) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *ValueSymbol) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
}

// ReferencedSymbolName implements syntax.SymbolResolvingNode.
func (n *ValueSymbol) ReferencedSymbolName() string { return n.Name }

// ResolveSymbol implements syntax.SymbolResolvingNode.
func (n *ValueSymbol) ResolveSymbol(declaringNode syntax.Node) {
	if decl, ok := declaringNode.(Declaration); ok {
		n.ReferencedDeclaration = decl
	}
}

// ValueUnary is a unary operation on a value.
type ValueUnary struct {
	valueBase
	// Operator is the unary operator.
	Operator UnaryOperator
	// Operand is the value the operator is applied to.
	Operand Value
}

// NewValueUnary creates a unary value node.
func NewValueUnary(r source.Range, operator UnaryOperator, operand Value) *ValueUnary {
	n := &ValueUnary{Operator: operator, Operand: operand}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueUnary) NodeKind() *syntax.Kind { return KindValueUnary }

// Compare implements syntax.Node.
func (n *ValueUnary) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueUnary)
	return ok && n.Operator == o.Operator && syntax.CompareNodes(n.Operand, o.Operand)
}

// Clone implements syntax.Node.
func (n *ValueUnary) Clone() syntax.Node {
	return NewValueUnary(n.rng, n.Operator, syntax.CloneNode(n.Operand))
}

// AcceptChildren implements syntax.Node.
func (n *ValueUnary) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.Operand, err = syntax.VisitChild(v, n.Operand)
	return err
}

// EachChild implements syntax.Node.
func (n *ValueUnary) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Operand) {
		fn(n.Operand)
	}
}

// FormatDebug implements syntax.Node.
func (n *ValueUnary) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "operator", n.Operator.String())
	syntax.DebugFieldNode(f, "operand", n.Operand)
}

// ValueBinary is a binary operation on two values.
type ValueBinary struct {
	valueBase
	// Operator is the binary operator.
	Operator BinaryOperator
	// LHS is the left-hand operand.
	LHS Value
	// RHS is the right-hand operand.
	RHS Value
}

// NewValueBinary creates a binary value node.
func NewValueBinary(r source.Range, operator BinaryOperator, lhs Value, rhs Value) *ValueBinary {
	n := &ValueBinary{Operator: operator, LHS: lhs, RHS: rhs}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueBinary) NodeKind() *syntax.Kind { return KindValueBinary }

// Compare implements syntax.Node.
func (n *ValueBinary) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueBinary)
	return ok && n.Operator == o.Operator &&
		syntax.CompareNodes(n.LHS, o.LHS) && syntax.CompareNodes(n.RHS, o.RHS)
}

// Clone implements syntax.Node.
func (n *ValueBinary) Clone() syntax.Node {
	return NewValueBinary(n.rng, n.Operator, syntax.CloneNode(n.LHS), syntax.CloneNode(n.RHS))
}

// AcceptChildren implements syntax.Node.
func (n *ValueBinary) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.LHS, err = syntax.VisitChild(v, n.LHS); err != nil {
		return err
	}
	n.RHS, err = syntax.VisitChild(v, n.RHS)
	return err
}

// EachChild implements syntax.Node.
func (n *ValueBinary) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.LHS) {
		fn(n.LHS)
	}
	if !syntax.IsNilNode(n.RHS) {
		fn(n.RHS)
	}
}

// FormatDebug implements syntax.Node.
func (n *ValueBinary) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "operator", n.Operator.String())
	syntax.DebugFieldNode(f, "lhs", n.LHS)
	syntax.DebugFieldNode(f, "rhs", n.RHS)
}

// ValueCall is a function call.
type ValueCall struct {
	valueBase
	// Callee is the value being called.
	Callee Value
	// Args are the call arguments in order.
	Args []Value
}

// NewValueCall creates a call node.
func NewValueCall(r source.Range, callee Value, args []Value) *ValueCall {
	n := &ValueCall{Callee: callee, Args: args}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueCall) NodeKind() *syntax.Kind { return KindValueCall }

// Compare implements syntax.Node.
func (n *ValueCall) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueCall)
	return ok && syntax.CompareNodes(n.Callee, o.Callee) &&
		syntax.CompareNodeSlices(n.Args, o.Args)
}

// Clone implements syntax.Node.
func (n *ValueCall) Clone() syntax.Node {
	return NewValueCall(n.rng, syntax.CloneNode(n.Callee), syntax.CloneNodeSlice(n.Args))
}

// AcceptChildren implements syntax.Node.
func (n *ValueCall) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.Callee, err = syntax.VisitChild(v, n.Callee); err != nil {
		return err
	}
	return syntax.VisitChildren(v, n.Args)
}

// EachChild implements syntax.Node.
func (n *ValueCall) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Callee) {
		fn(n.Callee)
	}
	for _, arg := range n.Args {
		if !syntax.IsNilNode(arg) {
			fn(arg)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *ValueCall) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "callee", n.Callee)
	syntax.DebugFieldNodes(f, "args", n.Args)
}

// ValueCast converts a value to a type. Explicit casts come from "as"
// expressions in source; implicit casts are synthesized by the passes.
type ValueCast struct {
	valueBase
	// Value is the value being cast.
	Value Value
	// Type is the target type.
	Type Type
	// IsImplicit marks casts synthesized by the compiler rather than
	// written in source.
	IsImplicit bool
}

// NewValueCast creates a cast node.
func NewValueCast(r source.Range, value Value, t Type) *ValueCast {
	n := &ValueCast{Value: value, Type: t}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *ValueCast) NodeKind() *syntax.Kind { return KindValueCast }

// Compare implements syntax.Node.
func (n *ValueCast) Compare(other syntax.Node) bool {
	o, ok := other.(*ValueCast)
	return ok && n.IsImplicit == o.IsImplicit &&
		syntax.CompareNodes(n.Value, o.Value) && syntax.CompareNodes(n.Type, o.Type)
}

// Clone implements syntax.Node.
func (n *ValueCast) Clone() syntax.Node {
	clone := NewValueCast(n.rng, syntax.CloneNode(n.Value), syntax.CloneNode(n.Type))
	clone.IsImplicit = n.IsImplicit
	return clone
}

// AcceptChildren implements syntax.Node.
func (n *ValueCast) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.Value, err = syntax.VisitChild(v, n.Value); err != nil {
		return err
	}
	n.Type, err = syntax.VisitChild(v, n.Type)
	return err
}

// EachChild implements syntax.Node.
func (n *ValueCast) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.Value) {
		fn(n.Value)
	}
	if !syntax.IsNilNode(n.Type) {
		fn(n.Type)
	}
}

// FormatDebug implements syntax.Node.
func (n *ValueCast) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "value", n.Value)
	syntax.DebugFieldNode(f, "type", n.Type)
	syntax.DebugFieldValue(f, "is_implicit", n.IsImplicit)
}
