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

// BasicKind is the kind of a TypeBasic node.
type BasicKind uint8

const (
	// BasicBool is the boolean type.
	BasicBool BasicKind = iota
	// BasicVoid is the void type.
	BasicVoid
	// BasicISize is the pointer-sized signed integer type.
	BasicISize
	// BasicUSize is the pointer-sized unsigned integer type.
	BasicUSize
)

// String returns the source spelling of the basic kind.
func (k BasicKind) String() string {
	switch k {
	case BasicBool:
		return "bool"
	case BasicVoid:
		return "void"
	case BasicISize:
		return "isize"
	case BasicUSize:
		return "usize"
	}
	return "?"
}

// TypeBasic is a type with no properties beyond its kind: bool, void, isize,
// or usize.
type TypeBasic struct {
	typeBase
	// Const marks the type as const-qualified.
	Const bool
	// BasicKind selects which basic type this is.
	BasicKind BasicKind
}

// NewTypeBasic creates a basic type node.
func NewTypeBasic(r source.Range, kind BasicKind) *TypeBasic {
	n := &TypeBasic{BasicKind: kind}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeBasic) NodeKind() *syntax.Kind { return KindTypeBasic }

// Compare implements syntax.Node.
func (n *TypeBasic) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeBasic)
	return ok && n.Const == o.Const && n.BasicKind == o.BasicKind
}

// Clone implements syntax.Node.
func (n *TypeBasic) Clone() syntax.Node {
	clone := NewTypeBasic(n.rng, n.BasicKind)
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node; basic types have no children.
func (n *TypeBasic) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node; basic types have no children.
func (n *TypeBasic) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *TypeBasic) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "basic_kind", n.BasicKind)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// NumericKind is the kind of a TypeWithBitWidth node.
type NumericKind uint8

const (
	// NumericSignedInt is a signed integer of an explicit width.
	NumericSignedInt NumericKind = iota
	// NumericUnsignedInt is an unsigned integer of an explicit width.
	NumericUnsignedInt
	// NumericFloat is a floating-point number of an explicit width.
	NumericFloat
)

// String returns the spelling prefix of the numeric kind ("i", "u", or "f").
func (k NumericKind) String() string {
	switch k {
	case NumericSignedInt:
		return "i"
	case NumericUnsignedInt:
		return "u"
	case NumericFloat:
		return "f"
	}
	return "?"
}

// TypeWithBitWidth is a numeric type with an explicit bit width: i8..i64,
// u8..u64, f32, or f64. Legal widths are 8, 16, 32, and 64 for integers and
// 32 and 64 for floats; the well-formedness pass enforces this.
type TypeWithBitWidth struct {
	typeBase
	// Const marks the type as const-qualified.
	Const bool
	// NumericKind selects between signed, unsigned, and float.
	NumericKind NumericKind
	// BitWidth is the width of the type in bits.
	BitWidth int
}

// NewTypeWithBitWidth creates a numeric type node.
func NewTypeWithBitWidth(r source.Range, kind NumericKind, bitWidth int) *TypeWithBitWidth {
	n := &TypeWithBitWidth{NumericKind: kind, BitWidth: bitWidth}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeWithBitWidth) NodeKind() *syntax.Kind { return KindTypeWithBitWidth }

// Compare implements syntax.Node.
func (n *TypeWithBitWidth) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeWithBitWidth)
	return ok && n.Const == o.Const && n.NumericKind == o.NumericKind && n.BitWidth == o.BitWidth
}

// Clone implements syntax.Node.
func (n *TypeWithBitWidth) Clone() syntax.Node {
	clone := NewTypeWithBitWidth(n.rng, n.NumericKind, n.BitWidth)
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node; numeric types have no children.
func (n *TypeWithBitWidth) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node; numeric types have no children.
func (n *TypeWithBitWidth) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *TypeWithBitWidth) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "numeric_kind", n.NumericKind)
	syntax.DebugFieldValue(f, "bit_width", n.BitWidth)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// TypeSymbol is a type referenced by name, such as the name of a type alias
// or a structured type.
type TypeSymbol struct {
	typeBase
	// Const marks the type as const-qualified.
	Const bool
	// Name is the referenced symbol name.
	Name string
	// ReferencedDeclaration is the non-owning back-reference to the
	// declaration this symbol resolves to. It is populated by the symbol
	// resolution handler and excluded from comparison and cloning.
	ReferencedDeclaration Declaration
}

// NewTypeSymbol creates a type symbol node.
func NewTypeSymbol(r source.Range, name string) *TypeSymbol {
	n := &TypeSymbol{Name: name}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeSymbol) NodeKind() *syntax.Kind { return KindTypeSymbol }

// Compare implements syntax.Node.
func (n *TypeSymbol) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeSymbol)
	return ok && n.Const == o.Const && n.Name == o.Name
}

// Clone implements syntax.Node.
func (n *TypeSymbol) Clone() syntax.Node {
	clone := NewTypeSymbol(n.rng, n.Name)
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node; the referenced declaration is a
// back-reference, not a child.
func (n *TypeSymbol) AcceptChildren(syntax.Visitor) error { return nil }

// EachChild implements syntax.Node.
func (n *TypeSymbol) EachChild(func(syntax.Node)) {}

// FormatDebug implements syntax.Node.
func (n *TypeSymbol) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldString(f, "name", n.Name)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// ReferencedSymbolName implements syntax.SymbolResolvingNode.
func (n *TypeSymbol) ReferencedSymbolName() string { return n.Name }

// ResolveSymbol implements syntax.SymbolResolvingNode.
func (n *TypeSymbol) ResolveSymbol(declaringNode syntax.Node) {
	if decl, ok := declaringNode.(Declaration); ok {
		n.ReferencedDeclaration = decl
	}
}

// TypeUnaryKind is the kind of a TypeUnary node.
type TypeUnaryKind uint8

const (
	// TypeUnaryPointer is a pointer type ("*T").
	TypeUnaryPointer TypeUnaryKind = iota
)

// String returns the source spelling of the unary type kind.
func (k TypeUnaryKind) String() string {
	if k == TypeUnaryPointer {
		return "*"
	}
	return "?"
}

// TypeUnary is a type constructed from one operand type, currently only
// pointers.
type TypeUnary struct {
	typeBase
	// Const marks the type as const-qualified.
	Const bool
	// UnaryKind selects which unary type constructor this is.
	UnaryKind TypeUnaryKind
	// OperandType is the type the constructor is applied to.
	OperandType Type
}

// NewTypeUnary creates a unary type node.
func NewTypeUnary(r source.Range, kind TypeUnaryKind, operandType Type) *TypeUnary {
	n := &TypeUnary{UnaryKind: kind, OperandType: operandType}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeUnary) NodeKind() *syntax.Kind { return KindTypeUnary }

// Compare implements syntax.Node.
func (n *TypeUnary) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeUnary)
	return ok && n.Const == o.Const && n.UnaryKind == o.UnaryKind &&
		syntax.CompareNodes(n.OperandType, o.OperandType)
}

// Clone implements syntax.Node.
func (n *TypeUnary) Clone() syntax.Node {
	clone := NewTypeUnary(n.rng, n.UnaryKind, syntax.CloneNode(n.OperandType))
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node.
func (n *TypeUnary) AcceptChildren(v syntax.Visitor) error {
	var err error
	n.OperandType, err = syntax.VisitChild(v, n.OperandType)
	return err
}

// EachChild implements syntax.Node.
func (n *TypeUnary) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.OperandType) {
		fn(n.OperandType)
	}
}

// FormatDebug implements syntax.Node.
func (n *TypeUnary) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "unary_kind", n.UnaryKind)
	syntax.DebugFieldNode(f, "operand_type", n.OperandType)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// TypeFunction is the type of a function: a return type plus argument types.
type TypeFunction struct {
	typeBase
	// Const marks the type as const-qualified.
	Const bool
	// ReturnType is the type the function returns.
	ReturnType Type
	// ArgTypes are the types of the arguments in declaration order.
	ArgTypes []Type
}

// NewTypeFunction creates a function type node.
func NewTypeFunction(r source.Range, returnType Type, argTypes []Type) *TypeFunction {
	n := &TypeFunction{ReturnType: returnType, ArgTypes: argTypes}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeFunction) NodeKind() *syntax.Kind { return KindTypeFunction }

// Compare implements syntax.Node.
func (n *TypeFunction) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeFunction)
	return ok && n.Const == o.Const &&
		syntax.CompareNodes(n.ReturnType, o.ReturnType) &&
		syntax.CompareNodeSlices(n.ArgTypes, o.ArgTypes)
}

// Clone implements syntax.Node.
func (n *TypeFunction) Clone() syntax.Node {
	clone := NewTypeFunction(n.rng, syntax.CloneNode(n.ReturnType), syntax.CloneNodeSlice(n.ArgTypes))
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node.
func (n *TypeFunction) AcceptChildren(v syntax.Visitor) error {
	var err error
	if n.ReturnType, err = syntax.VisitChild(v, n.ReturnType); err != nil {
		return err
	}
	return syntax.VisitChildren(v, n.ArgTypes)
}

// EachChild implements syntax.Node.
func (n *TypeFunction) EachChild(fn func(syntax.Node)) {
	if !syntax.IsNilNode(n.ReturnType) {
		fn(n.ReturnType)
	}
	for _, arg := range n.ArgTypes {
		if !syntax.IsNilNode(arg) {
			fn(arg)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *TypeFunction) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNode(f, "return_type", n.ReturnType)
	syntax.DebugFieldNodes(f, "arg_types", n.ArgTypes)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// StructuredKind selects between the two structured type flavors.
type StructuredKind uint8

const (
	// StructuredStruct is a struct type.
	StructuredStruct StructuredKind = iota
	// StructuredInterface is an interface type.
	StructuredInterface
)

// String returns the source spelling of the structured kind.
func (k StructuredKind) String() string {
	if k == StructuredInterface {
		return "interface"
	}
	return "struct"
}

// TypeStructured is an anonymous structured type: a struct or interface body
// with member declarations and inherited types. Its body is an unordered
// scope, so members may reference members declared later.
type TypeStructured struct {
	typeBase
	syntax.ScopeHolder
	// Const marks the type as const-qualified.
	Const bool
	// StructuredKind selects between struct and interface.
	StructuredKind StructuredKind
	// Members are the member declarations of the body.
	Members []Declaration
	// Inherits are the types the structured type inherits from.
	Inherits []Type
}

// NewTypeStructured creates a structured type node.
func NewTypeStructured(r source.Range, kind StructuredKind, members []Declaration, inherits []Type) *TypeStructured {
	n := &TypeStructured{StructuredKind: kind, Members: members, Inherits: inherits}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TypeStructured) NodeKind() *syntax.Kind { return KindTypeStructured }

// Compare implements syntax.Node.
func (n *TypeStructured) Compare(other syntax.Node) bool {
	o, ok := other.(*TypeStructured)
	return ok && n.Const == o.Const && n.StructuredKind == o.StructuredKind &&
		syntax.CompareNodeSlices(n.Members, o.Members) &&
		syntax.CompareNodeSlices(n.Inherits, o.Inherits)
}

// Clone implements syntax.Node.
func (n *TypeStructured) Clone() syntax.Node {
	clone := NewTypeStructured(n.rng, n.StructuredKind,
		syntax.CloneNodeSlice(n.Members), syntax.CloneNodeSlice(n.Inherits))
	clone.Const = n.Const
	return clone
}

// AcceptChildren implements syntax.Node.
func (n *TypeStructured) AcceptChildren(v syntax.Visitor) error {
	if err := syntax.VisitChildren(v, n.Members); err != nil {
		return err
	}
	return syntax.VisitChildren(v, n.Inherits)
}

// EachChild implements syntax.Node.
func (n *TypeStructured) EachChild(fn func(syntax.Node)) {
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
func (n *TypeStructured) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldValue(f, "structured_kind", n.StructuredKind)
	syntax.DebugFieldNodes(f, "members", n.Members)
	syntax.DebugFieldNodes(f, "inherits", n.Inherits)
	syntax.DebugFieldValue(f, "const", n.Const)
}

// ScopeFlags implements syntax.SymbolResolvingNode: a structured type body
// is unordered and may shadow names from outer scopes.
func (n *TypeStructured) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagUnordered | syntax.ScopeFlagAllowShadowingParent
}
