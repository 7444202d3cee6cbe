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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/source"
	"forge/compiler/syntax"
)

// sampleNodes builds one representative instance of every node variant.
func sampleNodes() map[string]syntax.Node {
	boolType := func() *TypeBasic { return NewTypeBasic(source.Range{}, BasicBool) }
	i32Type := func() *TypeWithBitWidth {
		return NewTypeWithBitWidth(source.Range{}, NumericSignedInt, 32)
	}
	one := func() *ValueLiteralNumber {
		return NewValueLiteralNumber(source.Range{}, i32Type(),
			Number{Kind: NumericSignedInt, BitWidth: 32, Int: 1})
	}

	variable := NewDeclarationVariable(source.Range{}, "x", i32Type(), one(), false)
	function := NewDeclarationFunction(source.Range{}, "f",
		[]*DeclarationVariable{NewDeclarationVariable(source.Range{}, "a", boolType(), nil, false)},
		boolType(),
		NewStatementBlock(source.Range{}, []Statement{
			NewStatementValue(source.Range{}, StatementReturn, NewValueSymbol(source.Range{}, "a")),
		}))

	return map[string]syntax.Node{
		"TypeBasic":        boolType(),
		"TypeWithBitWidth": i32Type(),
		"TypeSymbol":       NewTypeSymbol(source.Range{}, "T"),
		"TypeUnary":        NewTypeUnary(source.Range{}, TypeUnaryPointer, i32Type()),
		"TypeFunction": NewTypeFunction(source.Range{}, boolType(),
			[]Type{i32Type(), boolType()}),
		"TypeStructured": NewTypeStructured(source.Range{}, StructuredStruct,
			[]Declaration{NewDeclarationVariable(source.Range{}, "m", i32Type(), nil, false)}, nil),
		"ValueLiteralBool":   NewValueLiteralBool(source.Range{}, true),
		"ValueLiteralNumber": one(),
		"ValueSymbol":        NewValueSymbol(source.Range{}, "x"),
		"ValueUnary":         NewValueUnary(source.Range{}, UnaryNeg, one()),
		"ValueBinary":        NewValueBinary(source.Range{}, BinaryAdd, one(), one()),
		"ValueCall": NewValueCall(source.Range{}, NewValueSymbol(source.Range{}, "f"),
			[]Value{one()}),
		"ValueCast":            NewValueCast(source.Range{}, one(), i32Type()),
		"StatementBasic":       NewStatementBasic(source.Range{}, StatementBreak),
		"StatementValue":       NewStatementValue(source.Range{}, StatementExecute, one()),
		"StatementDeclaration": NewStatementDeclaration(source.Range{}, variable.Clone().(*DeclarationVariable)),
		"StatementBlock": NewStatementBlock(source.Range{}, []Statement{
			NewStatementBasic(source.Range{}, StatementContinue),
		}),
		"StatementIf": NewStatementIf(source.Range{}, NewValueLiteralBool(source.Range{}, true),
			NewStatementBlock(source.Range{}, nil), nil),
		"StatementWhile": NewStatementWhile(source.Range{}, NewValueLiteralBool(source.Range{}, false),
			NewStatementBlock(source.Range{}, nil), true),
		"DeclarationVariable": variable,
		"DeclarationFunction": function,
		"DeclarationTypeAlias": NewDeclarationTypeAlias(source.Range{}, "A", i32Type(), true),
		"DeclarationStructuredType": NewDeclarationStructuredType(source.Range{}, "S",
			StructuredInterface, nil, []Type{NewTypeSymbol(source.Range{}, "T")}),
		"DeclarationNamespace": NewDeclarationNamespace(source.Range{}, "ns",
			[]Declaration{NewDeclarationTypeAlias(source.Range{}, "B", boolType(), false)}),
		"TranslationUnit": NewTranslationUnit(source.Range{},
			[]Declaration{function.Clone().(*DeclarationFunction)}),
	}
}

func TestCloneCompareRoundTrip(t *testing.T) {
	for name, node := range sampleNodes() {
		node := node
		t.Run(name, func(t *testing.T) {
			clone := node.Clone()
			assert.True(t, clone.Compare(node), "a clone compares equal to its original")
			assert.True(t, node.Compare(clone), "comparison is symmetric")
			assert.NotSame(t, node, clone)
		})
	}
}

func TestCompareRejectsDifferentKinds(t *testing.T) {
	nodes := sampleNodes()
	a := nodes["TypeBasic"]
	b := nodes["ValueLiteralBool"]
	assert.False(t, a.Compare(b))
	assert.False(t, b.Compare(a))
}

func TestCompareIgnoresSourceRanges(t *testing.T) {
	src := source.New("a.frg", "bool bool")
	first := NewTypeBasic(source.NewRange(source.NewLocation(src, 1, 1, 0), source.Location{}), BasicBool)
	second := NewTypeBasic(source.NewRange(source.NewLocation(src, 1, 6, 5), source.Location{}), BasicBool)
	assert.True(t, first.Compare(second))
}

func TestCompareSeesFieldDifferences(t *testing.T) {
	assert.False(t, NewTypeBasic(source.Range{}, BasicBool).
		Compare(NewTypeBasic(source.Range{}, BasicVoid)))
	assert.False(t, NewValueSymbol(source.Range{}, "a").
		Compare(NewValueSymbol(source.Range{}, "b")))

	constType := NewTypeBasic(source.Range{}, BasicBool)
	constType.Const = true
	assert.False(t, NewTypeBasic(source.Range{}, BasicBool).Compare(constType))
}

func TestCloneDoesNotCarryAnalysisState(t *testing.T) {
	symbol := NewValueSymbol(source.Range{}, "x")
	declaration := NewDeclarationVariable(source.Range{}, "x",
		NewTypeBasic(source.Range{}, BasicBool), nil, false)
	symbol.ResolveSymbol(declaration)
	symbol.SetResolvedType(NewTypeBasic(source.Range{}, BasicBool))

	clone := symbol.Clone().(*ValueSymbol)
	assert.Nil(t, clone.ReferencedDeclaration)
	assert.Nil(t, clone.ResolvedType())
}

func TestDebugFormatIsStable(t *testing.T) {
	for name, node := range sampleNodes() {
		node := node
		t.Run(name, func(t *testing.T) {
			first := formatNode(node)
			second := formatNode(node)
			require.Equal(t, first, second)
			assert.Equal(t, first, formatNode(node.Clone()),
				"a clone formats identically")
		})
	}
}

func TestDebugFormatShape(t *testing.T) {
	unary := NewValueUnary(source.Range{}, UnaryBoolNot, NewValueLiteralBool(source.Range{}, true))
	want := "[ValueUnary]\n" +
		"  operator = \"!\"\n" +
		"  operand = [ValueLiteralBool]\n" +
		"    value = true"
	assert.Equal(t, want, formatNode(unary))
}

func TestEachChildSkipsNilChildren(t *testing.T) {
	statement := NewStatementIf(source.Range{},
		NewValueLiteralBool(source.Range{}, true),
		NewStatementBlock(source.Range{}, nil),
		nil)

	var count int
	statement.EachChild(func(syntax.Node) { count++ })
	assert.Equal(t, 2, count, "the absent else branch is skipped")
}

func TestFormatType(t *testing.T) {
	testCases := []struct {
		want string
		t    Type
	}{
		{want: "bool", t: NewTypeBasic(source.Range{}, BasicBool)},
		{want: "usize", t: NewTypeBasic(source.Range{}, BasicUSize)},
		{want: "i32", t: NewTypeWithBitWidth(source.Range{}, NumericSignedInt, 32)},
		{want: "f64", t: NewTypeWithBitWidth(source.Range{}, NumericFloat, 64)},
		{want: "*u8", t: NewTypeUnary(source.Range{}, TypeUnaryPointer,
			NewTypeWithBitWidth(source.Range{}, NumericUnsignedInt, 8))},
		{want: "T", t: NewTypeSymbol(source.Range{}, "T")},
		{want: "(i32) -> bool", t: NewTypeFunction(source.Range{},
			NewTypeBasic(source.Range{}, BasicBool),
			[]Type{NewTypeWithBitWidth(source.Range{}, NumericSignedInt, 32)})},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatType(tc.t))
	}
}

func formatNode(n syntax.Node) string {
	var out strings.Builder
	syntax.NewDebugFormatter(&out).Node(n)
	return out.String()
}
