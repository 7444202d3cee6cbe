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

// unitBase nests the default symbol surface one embedding level down so the
// scope storage in ScopeHolder takes precedence over the NoSymbol defaults.
type unitBase struct {
	nodeBase
	syntax.NoSymbol
}

// TranslationUnit is the root node of a parsed source file. Its scope is
// unordered: top-level declarations may reference declarations that appear
// later in the file.
type TranslationUnit struct {
	unitBase
	syntax.ScopeHolder
	// Declarations are the top-level declarations in source order.
	Declarations []Declaration
}

// NewTranslationUnit creates a translation unit node.
func NewTranslationUnit(r source.Range, declarations []Declaration) *TranslationUnit {
	n := &TranslationUnit{Declarations: declarations}
	n.rng = r
	return n
}

// NodeKind implements syntax.Node.
func (n *TranslationUnit) NodeKind() *syntax.Kind { return KindTranslationUnit }

// Compare implements syntax.Node.
func (n *TranslationUnit) Compare(other syntax.Node) bool {
	o, ok := other.(*TranslationUnit)
	return ok && syntax.CompareNodeSlices(n.Declarations, o.Declarations)
}

// Clone implements syntax.Node.
func (n *TranslationUnit) Clone() syntax.Node {
	return NewTranslationUnit(n.rng, syntax.CloneNodeSlice(n.Declarations))
}

// AcceptChildren implements syntax.Node.
func (n *TranslationUnit) AcceptChildren(v syntax.Visitor) error {
	return syntax.VisitChildren(v, n.Declarations)
}

// EachChild implements syntax.Node.
func (n *TranslationUnit) EachChild(fn func(syntax.Node)) {
	for _, declaration := range n.Declarations {
		if !syntax.IsNilNode(declaration) {
			fn(declaration)
		}
	}
}

// FormatDebug implements syntax.Node.
func (n *TranslationUnit) FormatDebug(f *syntax.DebugFormatter) {
	syntax.DebugFieldNodes(f, "declarations", n.Declarations)
}

// ScopeFlags implements syntax.SymbolResolvingNode: the top-level scope is
// unordered.
func (n *TranslationUnit) ScopeFlags() syntax.ScopeFlags {
	return syntax.ScopeFlagUnordered
}
