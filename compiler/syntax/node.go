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

// Package syntax implements the language-agnostic syntax-tree substrate: the
// node contract with identity, structural equality, deep cloning and debug
// formatting, the replace-capable traversal engine with composable handler
// pipelines, and the scope and symbol-resolution machinery.
//
// The concrete node variants for the Forge language live in the ast package;
// everything in this package works for any language whose nodes implement
// the Node interface.
package syntax

import (
	"reflect"

	"forge/compiler/source"
)

// Kind identifies the kind of a node. Kinds are compared by pointer
// identity, never by name, so that classifying a node is a single pointer
// comparison before any downcast.
type Kind struct {
	name string
}

// NewKind creates a new globally-unique node kind with a display name.
func NewKind(name string) *Kind {
	return &Kind{name: name}
}

// String returns the display name of the kind.
func (k *Kind) String() string {
	return k.name
}

// Node is the contract every syntax-tree node implements. A tree is
// exclusively owned: each node owns its children, and back-references (such
// as resolved declarations) never participate in ownership, comparison, or
// cloning.
type Node interface {
	// NodeKind returns the kind identity of the node.
	NodeKind() *Kind
	// Range returns the source range the node spans, or the null range for
	// synthesized nodes.
	Range() source.Range
	// Compare deep-compares the node to another. It returns false
	// immediately if the kinds differ and ignores source ranges. Callers
	// that need nil-tolerance should use CompareNodes instead.
	Compare(other Node) bool
	// Clone deep-clones the node, duplicating source ranges as well.
	Clone() Node
	// AcceptChildren calls v.Visit on each child in declaration order and
	// writes any replacement the visitor returns back into the child slot.
	// Nil children are skipped.
	AcceptChildren(v Visitor) error
	// EachChild enumerates the immediate children of the node, skipping nil
	// children. It does not recurse.
	EachChild(fn func(child Node))
	// FormatDebug dumps a reproducible, indented representation of the node
	// to the formatter.
	FormatDebug(f *DebugFormatter)
}

// IsNilNode reports whether n is nil or wraps a nil concrete pointer.
// Nilness checking for interface types in Go is not intuitive: "an interface
// value that holds a nil concrete value is itself non-nil" (A Tour of Go),
// so a concrete nil pointer widened to Node compares non-nil against nil.
// Optional children stored in concretely-typed fields hit exactly this case
// when they are passed to the generic helpers, so the helpers go through
// this check first.
func IsNilNode(n Node) bool {
	if n == nil {
		return true
	}
	value := reflect.ValueOf(n)
	return value.Kind() == reflect.Ptr && value.IsNil()
}
