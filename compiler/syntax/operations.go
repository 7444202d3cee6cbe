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

// CompareNodes deep-compares two possibly-nil nodes: two nils are equal, one
// nil is not equal to a non-nil node, and otherwise the comparison is
// delegated to a.Compare(b).
func CompareNodes(a Node, b Node) bool {
	aNil, bNil := IsNilNode(a), IsNilNode(b)
	if aNil || bNil {
		return aNil == bNil
	}
	return a.Compare(b)
}

// CompareNodeSlices deep-compares two node slices pairwise. Slices of
// different lengths are never equal.
func CompareNodeSlices[T Node](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !CompareNodes(a[i], b[i]) {
			return false
		}
	}
	return true
}

// CloneNode deep-clones a possibly-nil node, preserving its concrete type.
func CloneNode[T Node](n T) T {
	if IsNilNode(n) {
		var zero T
		return zero
	}
	return n.Clone().(T)
}

// CloneNodeSlice deep-clones a slice of nodes. A nil slice clones to nil.
func CloneNodeSlice[T Node](nodes []T) []T {
	if nodes == nil {
		return nil
	}
	cloned := make([]T, len(nodes))
	for i, n := range nodes {
		cloned[i] = CloneNode(n)
	}
	return cloned
}

// TryCast downcasts a node to a concrete node type. It returns false if the
// node is of a different kind and propagates nil nodes as a failed cast.
func TryCast[T Node](n Node) (T, bool) {
	var zero T
	if IsNilNode(n) {
		return zero, false
	}
	casted, ok := n.(T)
	return casted, ok
}
