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

// Type is the interface all Forge type nodes implement.
type Type interface {
	syntax.Node
	// typeNode ensures that only type nodes can be assigned to Type.
	typeNode()
}

// Value is the interface all Forge value nodes implement. Every value
// carries an assignable resolved type, written by the type resolution
// handler.
type Value interface {
	syntax.Node
	// valueNode ensures that only value nodes can be assigned to Value.
	valueNode()
	// ResolvedType returns the type inferred for the value, or nil before
	// type resolution (or after a resolution failure).
	ResolvedType() Type
	// SetResolvedType stores the inferred type.
	SetResolvedType(t Type)
}

// Statement is the interface all Forge statement nodes implement.
type Statement interface {
	syntax.Node
	// statementNode ensures that only statement nodes can be assigned to
	// Statement.
	statementNode()
}

// Declaration is the interface all Forge declaration nodes implement. Every
// declaration carries an assignable resolved type.
type Declaration interface {
	syntax.Node
	// declarationNode ensures that only declaration nodes can be assigned to
	// Declaration.
	declarationNode()
	// ResolvedType returns the type resolved for the declaration, or nil.
	ResolvedType() Type
	// SetResolvedType stores the resolved type.
	SetResolvedType(t Type)
}

// nodeBase carries the source range shared by every node. Analysis state
// (resolved types, symbol back-references, backend handles, scopes) is
// deliberately excluded from Compare and Clone: comparison is structural and
// a clone starts analysis from scratch.
type nodeBase struct {
	rng source.Range
}

// Range implements syntax.Node.
func (n *nodeBase) Range() source.Range {
	return n.rng
}

// typeBase is the envelope embedded by every type node.
type typeBase struct {
	nodeBase
	syntax.NoSymbol
}

func (*typeBase) typeNode() {}

// valueBase is the envelope embedded by every value node.
type valueBase struct {
	nodeBase
	syntax.NoSymbol
	resolvedType Type
}

func (*valueBase) valueNode() {}

// ResolvedType implements Value.
func (v *valueBase) ResolvedType() Type {
	return v.resolvedType
}

// SetResolvedType implements Value.
func (v *valueBase) SetResolvedType(t Type) {
	v.resolvedType = t
}

// statementBase is the envelope embedded by every statement node.
type statementBase struct {
	nodeBase
	syntax.NoSymbol
}

func (*statementBase) statementNode() {}

// declarationBase is the envelope embedded by every declaration node.
type declarationBase struct {
	nodeBase
	syntax.NoSymbol
	resolvedType Type
}

func (*declarationBase) declarationNode() {}

// ResolvedType implements Declaration.
func (d *declarationBase) ResolvedType() Type {
	return d.resolvedType
}

// SetResolvedType implements Declaration.
func (d *declarationBase) SetResolvedType(t Type) {
	d.resolvedType = t
}
