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

// VisitorStatus directs how a traversal continues after a handler hook.
type VisitorStatus int

const (
	// StatusContinue continues the traversal as normal.
	StatusContinue VisitorStatus = iota
	// StatusSkipChildren visits the current node but skips the walk over its
	// children. Other handlers still see the node.
	StatusSkipChildren
	// StatusHalt aborts the entire walk; no further handler runs on any
	// node.
	StatusHalt
)

// Visitor is the minimal walker interface. Visit receives a node and returns
// the node that should take its place, which allows a visitor to replace the
// node it currently processes; parents write the returned node back into the
// child slot. A visitor that does not replace returns its argument.
type Visitor interface {
	Visit(node Node) (Node, error)
}

// VisitChild visits one possibly-nil child and returns the (possibly
// replaced) child with its concrete type preserved. Nil children are skipped
// without entering the visitor, following the nilness discipline described
// by IsNilNode.
func VisitChild[T Node](v Visitor, child T) (T, error) {
	if IsNilNode(child) {
		return child, nil
	}
	replaced, err := v.Visit(child)
	if err != nil {
		return child, err
	}
	casted, ok := replaced.(T)
	if !ok {
		// A replacement changed the node family; surface it loudly rather
		// than silently dropping the replacement.
		panic("replacement node is not assignable to the child slot it replaces")
	}
	return casted, nil
}

// VisitChildren visits a slice of children in order, writing replacements
// back in place.
func VisitChildren[T Node](v Visitor, children []T) error {
	for i := range children {
		replaced, err := VisitChild(v, children[i])
		if err != nil {
			return err
		}
		children[i] = replaced
	}
	return nil
}
