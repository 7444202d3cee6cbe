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

package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/ast"
	"forge/compiler/lexer"
	"forge/compiler/message"
	"forge/compiler/source"
)

// parse parses source text, requiring a non-nil tree and zero errors.
func parse(t *testing.T, text string) *ast.TranslationUnit {
	t.Helper()
	unit, messages := tryParse(t, text)
	require.Zero(t, messages.ErrorCount(), "unexpected parse errors")
	require.NotNil(t, unit)
	return unit
}

// tryParse parses source text without asserting success.
func tryParse(t *testing.T, text string) (*ast.TranslationUnit, *message.Context) {
	t.Helper()
	messages := message.NewContext()
	tokens := lexer.New().Lex(messages, source.New("test.frg", text))
	unit := ParseTranslationUnit(NewContext(messages, tokens))
	return unit, messages
}

// onlyFunction extracts the single function declaration of a unit.
func onlyFunction(t *testing.T, unit *ast.TranslationUnit) *ast.DeclarationFunction {
	t.Helper()
	require.Len(t, unit.Declarations, 1)
	function, ok := unit.Declarations[0].(*ast.DeclarationFunction)
	require.True(t, ok)
	return function
}

// expressionIn extracts the value of a function whose body is a single
// statement wrapping one value.
func expressionIn(t *testing.T, text string) ast.Value {
	t.Helper()
	unit := parse(t, fmt.Sprintf("func f() { %s; }", text))
	function := onlyFunction(t, unit)
	require.Len(t, function.Body.Statements, 1)
	statement, ok := function.Body.Statements[0].(*ast.StatementValue)
	require.True(t, ok)
	return statement.Value
}

func TestParseIdentityFunction(t *testing.T) {
	unit := parse(t, "func f(a: bool) -> bool { return a; }")
	function := onlyFunction(t, unit)

	assert.Equal(t, "f", function.Name)
	require.Len(t, function.Args, 1)
	assert.Equal(t, "a", function.Args[0].Name)
	basic, ok := function.Args[0].Type.(*ast.TypeBasic)
	require.True(t, ok)
	assert.Equal(t, ast.BasicBool, basic.BasicKind)

	require.Len(t, function.Body.Statements, 1)
	ret, ok := function.Body.Statements[0].(*ast.StatementValue)
	require.True(t, ok)
	assert.Equal(t, ast.StatementReturn, ret.ValueKind)
	symbol, ok := ret.Value.(*ast.ValueSymbol)
	require.True(t, ok)
	assert.Equal(t, "a", symbol.Name)
}

func TestParseOmittedReturnTypeIsVoid(t *testing.T) {
	unit := parse(t, "func f() { return; }")
	function := onlyFunction(t, unit)
	basic, ok := function.ReturnType.(*ast.TypeBasic)
	require.True(t, ok)
	assert.Equal(t, ast.BasicVoid, basic.BasicKind)
}

func TestParsePrecedence(t *testing.T) {
	value := expressionIn(t, "1 + 2 * 3")
	add, ok := value.(*ast.ValueBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAdd, add.Operator)

	mul, ok := add.RHS.(*ast.ValueBinary)
	require.True(t, ok, "multiplication binds tighter than addition")
	assert.Equal(t, ast.BinaryMul, mul.Operator)
}

func TestParseComparisonBindsLooserThanArithmetic(t *testing.T) {
	value := expressionIn(t, "a + 1 < b")
	cmp, ok := value.(*ast.ValueBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryLt, cmp.Operator)
	_, ok = cmp.LHS.(*ast.ValueBinary)
	assert.True(t, ok)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	value := expressionIn(t, "a = b = 1")
	outer, ok := value.(*ast.ValueBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAssign, outer.Operator)

	inner, ok := outer.RHS.(*ast.ValueBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAssign, inner.Operator)
}

func TestParseCast(t *testing.T) {
	value := expressionIn(t, "a as f64")
	cast, ok := value.(*ast.ValueCast)
	require.True(t, ok)
	assert.False(t, cast.IsImplicit)
	numeric, ok := cast.Type.(*ast.TypeWithBitWidth)
	require.True(t, ok)
	assert.Equal(t, ast.NumericFloat, numeric.NumericKind)
	assert.Equal(t, 64, numeric.BitWidth)
}

func TestParseCallWithArguments(t *testing.T) {
	value := expressionIn(t, "g(1, true)")
	call, ok := value.(*ast.ValueCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	symbol, ok := call.Callee.(*ast.ValueSymbol)
	require.True(t, ok)
	assert.Equal(t, "g", symbol.Name)
}

func TestParseNumberLiteralDefaults(t *testing.T) {
	testCases := []struct {
		text  string
		kind  ast.NumericKind
		width int
	}{
		{text: "0", kind: ast.NumericSignedInt, width: 32},
		{text: "3.5", kind: ast.NumericFloat, width: 64},
		{text: "7i8", kind: ast.NumericSignedInt, width: 8},
		{text: "200u8", kind: ast.NumericUnsignedInt, width: 8},
		{text: "1.5f32", kind: ast.NumericFloat, width: 32},
	}
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			value := expressionIn(t, tc.text)
			literal, ok := value.(*ast.ValueLiteralNumber)
			require.True(t, ok)
			assert.Equal(t, tc.kind, literal.Type.NumericKind)
			assert.Equal(t, tc.width, literal.Type.BitWidth)
		})
	}
}

func TestParseDoWhile(t *testing.T) {
	unit := parse(t, "func f() { do { continue; } while true; }")
	function := onlyFunction(t, unit)
	loop, ok := function.Body.Statements[0].(*ast.StatementWhile)
	require.True(t, ok)
	assert.True(t, loop.IsDoWhile)
}

func TestParseElseIfChain(t *testing.T) {
	unit := parse(t, "func f() { if true { } else if false { } else { } }")
	function := onlyFunction(t, unit)
	outer, ok := function.Body.Statements[0].(*ast.StatementIf)
	require.True(t, ok)

	chained, ok := outer.Else.(*ast.StatementIf)
	require.True(t, ok, "else-if chains nest an if into the else branch")
	_, ok = chained.Else.(*ast.StatementBlock)
	assert.True(t, ok)
}

func TestParseLetDeclaration(t *testing.T) {
	unit := parse(t, "func f() { let x: i32 = 0; }")
	function := onlyFunction(t, unit)
	statement, ok := function.Body.Statements[0].(*ast.StatementDeclaration)
	require.True(t, ok)
	variable, ok := statement.Declaration.(*ast.DeclarationVariable)
	require.True(t, ok)
	assert.Equal(t, "x", variable.Name)
	assert.NotNil(t, variable.InitialValue)
}

func TestParseTopLevelDeclarations(t *testing.T) {
	unit := parse(t, `
type Id = u64;
struct Point { let x: i32; let y: i32; }
interface Shape { }
namespace util { func id(a: i32) -> i32 { return a; } }
let answer: i32 = 42;
`)
	require.Len(t, unit.Declarations, 5)
	_, ok := unit.Declarations[0].(*ast.DeclarationTypeAlias)
	assert.True(t, ok)
	structDecl, ok := unit.Declarations[1].(*ast.DeclarationStructuredType)
	require.True(t, ok)
	assert.Equal(t, ast.StructuredStruct, structDecl.StructuredKind)
	assert.Len(t, structDecl.Members, 2)
	interfaceDecl, ok := unit.Declarations[2].(*ast.DeclarationStructuredType)
	require.True(t, ok)
	assert.Equal(t, ast.StructuredInterface, interfaceDecl.StructuredKind)
	namespace, ok := unit.Declarations[3].(*ast.DeclarationNamespace)
	require.True(t, ok)
	assert.Len(t, namespace.Members, 1)
	_, ok = unit.Declarations[4].(*ast.DeclarationVariable)
	assert.True(t, ok)
}

func TestParsePointerTypes(t *testing.T) {
	unit := parse(t, "func f(p: *i32) { }")
	function := onlyFunction(t, unit)
	pointer, ok := function.Args[0].Type.(*ast.TypeUnary)
	require.True(t, ok)
	assert.Equal(t, ast.TypeUnaryPointer, pointer.UnaryKind)
	_, ok = pointer.OperandType.(*ast.TypeWithBitWidth)
	assert.True(t, ok)
}

func TestParseConstType(t *testing.T) {
	unit := parse(t, "func f(p: const i32) { }")
	function := onlyFunction(t, unit)
	numeric, ok := function.Args[0].Type.(*ast.TypeWithBitWidth)
	require.True(t, ok)
	assert.True(t, numeric.Const)
}

func TestParseUnrecoverableFailureReturnsNil(t *testing.T) {
	unit, messages := tryParse(t, "func f( {")
	assert.Nil(t, unit)
	assert.Greater(t, messages.ErrorCount(), 0)
	found := false
	for _, m := range messages.Messages() {
		if m.Code == CodeUnexpectedToken {
			found = true
		}
	}
	assert.True(t, found, "an unexpected-token diagnostic explains the failure")
}

func TestRepeatedParsesProduceEqualTrees(t *testing.T) {
	const text = "func f(a: bool) -> bool { return !a; }"
	first := parse(t, text)
	second := parse(t, text)
	assert.True(t, first.Compare(second))
}

func TestParsedTypeRoundTripsThroughFormatting(t *testing.T) {
	types := []ast.Type{
		ast.NewTypeBasic(source.Range{}, ast.BasicBool),
		ast.NewTypeBasic(source.Range{}, ast.BasicUSize),
		ast.NewTypeWithBitWidth(source.Range{}, ast.NumericSignedInt, 16),
		ast.NewTypeUnary(source.Range{}, ast.TypeUnaryPointer,
			ast.NewTypeWithBitWidth(source.Range{}, ast.NumericFloat, 32)),
	}
	for _, want := range types {
		text := ast.FormatType(want)
		t.Run(text, func(t *testing.T) {
			unit := parse(t, fmt.Sprintf("type X = %s;", text))
			alias, ok := unit.Declarations[0].(*ast.DeclarationTypeAlias)
			require.True(t, ok)
			assert.True(t, alias.Type.Compare(want), "parse(format(t)) == t")
		})
	}
}
