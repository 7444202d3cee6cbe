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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/ast"
	"forge/compiler/source"
	"forge/compiler/syntax"
)

func declaration(name string) syntax.Node {
	return ast.NewDeclarationVariable(source.Range{}, name,
		ast.NewTypeBasic(source.Range{}, ast.BasicBool), nil, false)
}

func TestScopeAddAndGet(t *testing.T) {
	scope := syntax.NewScope(nil, syntax.ScopeFlagNone)
	node := declaration("x")

	require.True(t, scope.Add("x", node))
	assert.Same(t, node, scope.Get("x"))
	assert.Nil(t, scope.Get("y"))
}

func TestScopeParentChainLookup(t *testing.T) {
	parent := syntax.NewScope(nil, syntax.ScopeFlagNone)
	child := syntax.NewScope(parent, syntax.ScopeFlagNone)
	node := declaration("x")

	require.True(t, parent.Add("x", node))
	assert.Same(t, node, child.Get("x"), "lookup searches the parent chain")
}

func TestScopeShadowingWithinScope(t *testing.T) {
	strict := syntax.NewScope(nil, syntax.ScopeFlagNone)
	require.True(t, strict.Add("x", declaration("x")))
	assert.False(t, strict.Add("x", declaration("x")), "redeclaration in the same scope is rejected")

	permissive := syntax.NewScope(nil, syntax.ScopeFlagAllowShadowingWithin)
	require.True(t, permissive.Add("x", declaration("x")))
	assert.True(t, permissive.Add("x", declaration("x")))
}

func TestScopeShadowingParentScope(t *testing.T) {
	parent := syntax.NewScope(nil, syntax.ScopeFlagNone)
	require.True(t, parent.Add("x", declaration("x")))

	strict := syntax.NewScope(parent, syntax.ScopeFlagNone)
	assert.False(t, strict.Add("x", declaration("x")), "shadowing the parent is rejected")

	permissive := syntax.NewScope(parent, syntax.ScopeFlagAllowShadowingParent)
	assert.True(t, permissive.Add("x", declaration("x")))
}

func TestScopeReAddingSameNodeIsNotARedeclaration(t *testing.T) {
	scope := syntax.NewScope(nil, syntax.ScopeFlagUnordered)
	node := declaration("x")

	require.True(t, scope.Add("x", node))
	assert.True(t, scope.Add("x", node), "the unordered pre-pass re-adds declarations")
}

func TestScopeRemove(t *testing.T) {
	scope := syntax.NewScope(nil, syntax.ScopeFlagNone)
	require.True(t, scope.Add("x", declaration("x")))

	assert.True(t, scope.Remove("x"))
	assert.Nil(t, scope.Get("x"))
	assert.False(t, scope.Remove("x"), "removing twice fails")
}

func TestCompareNodesNilHandling(t *testing.T) {
	node := declaration("x")
	assert.True(t, syntax.CompareNodes(nil, nil))
	assert.False(t, syntax.CompareNodes(node, nil))
	assert.False(t, syntax.CompareNodes(nil, node))
	assert.True(t, syntax.CompareNodes(node, node))
}

func TestCompareNodesTypedNil(t *testing.T) {
	var typed *ast.DeclarationVariable
	assert.True(t, syntax.CompareNodes(typed, nil),
		"a typed nil pointer widened to Node still compares as null")
}

func TestTryCast(t *testing.T) {
	node := declaration("x")

	variable, ok := syntax.TryCast[*ast.DeclarationVariable](node)
	require.True(t, ok)
	assert.Same(t, node, variable)

	_, ok = syntax.TryCast[*ast.DeclarationFunction](node)
	assert.False(t, ok)

	_, ok = syntax.TryCast[*ast.DeclarationVariable](nil)
	assert.False(t, ok, "nil propagates as a failed cast")
}

func TestCloneNodeNil(t *testing.T) {
	var typed *ast.DeclarationVariable
	assert.Nil(t, syntax.CloneNode[syntax.Node](nil))
	assert.Nil(t, syntax.CloneNode(typed))
}
