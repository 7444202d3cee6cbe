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

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ScopeFlags control the declaration rules of a scope.
type ScopeFlags uint32

const (
	// ScopeFlagNone is the empty flag set.
	ScopeFlagNone ScopeFlags = 0
	// ScopeFlagAllowShadowingParent allows a key declared in a parent scope
	// to be redeclared in this scope.
	ScopeFlagAllowShadowingParent ScopeFlags = 1 << 0
	// ScopeFlagAllowShadowingWithin allows a key already declared in this
	// scope to be redeclared. It does not imply ScopeFlagAllowShadowingParent;
	// the two are independent.
	ScopeFlagAllowShadowingWithin ScopeFlags = 1 << 1
	// ScopeFlagUnordered makes declarations in this scope visible to
	// references that appear earlier in source order. The symbol resolution
	// handler pre-registers all direct-child declarations of such a scope
	// before resolving anything inside it.
	ScopeFlagUnordered ScopeFlags = 1 << 2
)

// Scope is a flat key-to-node map composed with ancestor scopes through a
// parent chain. The chain is formed externally (by the symbol resolution
// handler, following the traversal stack), not by the scope itself.
//
// Symbols keep their insertion order so that any iteration over a scope is
// deterministic.
type Scope struct {
	parent  *Scope
	flags   ScopeFlags
	symbols *linkedhashmap.Map
}

// NewScope creates an empty scope chained to parent (which may be nil) with
// the given flags.
func NewScope(parent *Scope, flags ScopeFlags) *Scope {
	return &Scope{parent: parent, flags: flags, symbols: linkedhashmap.New()}
}

// Parent returns the next outer scope, or nil for the outermost scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Flags returns the declaration rules of the scope.
func (s *Scope) Flags() ScopeFlags {
	return s.flags
}

// Add declares a symbol in this scope. It returns false if the declaration
// would shadow an existing symbol against the scope's flags. Re-adding the
// same node under the same key is not a redeclaration: the unordered
// pre-pass registers declarations that are registered again when their node
// is entered.
func (s *Scope) Add(key string, node Node) bool {
	if existing, found := s.symbols.Get(key); found {
		if existing.(Node) == node {
			return true
		}
		if s.flags&ScopeFlagAllowShadowingWithin == 0 {
			return false
		}
	} else if s.parent != nil && s.flags&ScopeFlagAllowShadowingParent == 0 {
		if s.parent.Get(key) != nil {
			return false
		}
	}
	s.symbols.Put(key, node)
	return true
}

// Remove removes a symbol from this scope only (never from a parent). It
// returns false if the key was not declared here.
func (s *Scope) Remove(key string) bool {
	if _, found := s.symbols.Get(key); !found {
		return false
	}
	s.symbols.Remove(key)
	return true
}

// Get returns the node declared under key, searching this scope and then the
// parent chain. It returns nil if the symbol does not exist anywhere on the
// chain.
func (s *Scope) Get(key string) Node {
	if value, found := s.symbols.Get(key); found {
		return value.(Node)
	}
	if s.parent != nil {
		return s.parent.Get(key)
	}
	return nil
}

// String returns a debug representation of the scope chain.
func (s *Scope) String() string {
	var b strings.Builder
	for scope := s; scope != nil; scope = scope.parent {
		if scope != s {
			b.WriteString(" <- ")
		}
		b.WriteString("{")
		first := true
		it := scope.symbols.Iterator()
		for it.Next() {
			if !first {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s", it.Key())
			first = false
		}
		b.WriteString("}")
	}
	return b.String()
}
