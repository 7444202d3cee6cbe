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

package typelogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/ast"
	"forge/compiler/source"
	"forge/compiler/syntax"
)

// testTarget is a fixed 64-bit target.
type testTarget struct{}

func (testTarget) PointerBitWidth() int { return 64 }

func boolType() ast.Type  { return ast.NewTypeBasic(source.Range{}, ast.BasicBool) }
func voidType() ast.Type  { return ast.NewTypeBasic(source.Range{}, ast.BasicVoid) }
func isizeType() ast.Type { return ast.NewTypeBasic(source.Range{}, ast.BasicISize) }
func usizeType() ast.Type { return ast.NewTypeBasic(source.Range{}, ast.BasicUSize) }

func signed(bits int) ast.Type {
	return ast.NewTypeWithBitWidth(source.Range{}, ast.NumericSignedInt, bits)
}

func unsigned(bits int) ast.Type {
	return ast.NewTypeWithBitWidth(source.Range{}, ast.NumericUnsignedInt, bits)
}

func float(bits int) ast.Type {
	return ast.NewTypeWithBitWidth(source.Range{}, ast.NumericFloat, bits)
}

func pointer(element ast.Type) ast.Type {
	return ast.NewTypeUnary(source.Range{}, ast.TypeUnaryPointer, element)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsVoid(voidType()))
	assert.True(t, IsBool(boolType()))
	assert.False(t, IsBool(voidType()))

	assert.True(t, IsInteger(signed(8)))
	assert.True(t, IsInteger(unsigned(64)))
	assert.True(t, IsInteger(isizeType()))
	assert.True(t, IsInteger(usizeType()))
	assert.False(t, IsInteger(float(32)))

	assert.True(t, IsFloat(float(64)))
	assert.False(t, IsFloat(signed(64)))

	assert.True(t, IsNumber(signed(16)))
	assert.True(t, IsNumber(float(32)))
	assert.False(t, IsNumber(boolType()))

	assert.True(t, IsPointer(pointer(signed(8))))
	assert.False(t, IsPointer(signed(8)))
}

func TestIntegerSignedness(t *testing.T) {
	isSigned, ok := IntegerSignedness(signed(32))
	require.True(t, ok)
	assert.True(t, isSigned)

	isSigned, ok = IntegerSignedness(unsigned(32))
	require.True(t, ok)
	assert.False(t, isSigned)

	isSigned, ok = IntegerSignedness(isizeType())
	require.True(t, ok)
	assert.True(t, isSigned)

	_, ok = IntegerSignedness(float(32))
	assert.False(t, ok)
	_, ok = IntegerSignedness(boolType())
	assert.False(t, ok)
}

func TestNumberBitWidthUsesTargetPointerSize(t *testing.T) {
	width, ok := NumberBitWidth(testTarget{}, signed(16))
	require.True(t, ok)
	assert.Equal(t, 16, width)

	width, ok = NumberBitWidth(testTarget{}, usizeType())
	require.True(t, ok)
	assert.Equal(t, 64, width)

	_, ok = NumberBitWidth(testTarget{}, boolType())
	assert.False(t, ok)
}

func TestPointerElement(t *testing.T) {
	element := PointerElement(pointer(boolType()))
	require.NotNil(t, element)
	assert.True(t, IsBool(element))
	assert.Nil(t, PointerElement(boolType()))
}

func TestArithmeticContainingTypeIdentical(t *testing.T) {
	result := ArithmeticContainingType(testTarget{}, boolType(), boolType())
	require.NotNil(t, result)
	assert.True(t, syntax.CompareNodes(result, boolType()),
		"identical types contain themselves even outside the number family")
}

func TestArithmeticContainingTypeNumbers(t *testing.T) {
	testCases := []struct {
		name string
		a, b ast.Type
		want ast.Type
	}{
		{name: "wider integer wins", a: signed(8), b: signed(32), want: signed(32)},
		{name: "signed wins over unsigned", a: unsigned(16), b: signed(8), want: signed(16)},
		{name: "float wins over integer", a: signed(64), b: float(32), want: float(64)},
		{name: "unsigned stays unsigned", a: unsigned(8), b: unsigned(32), want: unsigned(32)},
		{name: "size types use pointer width", a: isizeType(), b: signed(8), want: signed(64)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ArithmeticContainingType(testTarget{}, tc.a, tc.b)
			require.NotNil(t, result)
			assert.True(t, syntax.CompareNodes(result, tc.want),
				"got %s, want %s", ast.FormatType(result), ast.FormatType(tc.want))

			flipped := ArithmeticContainingType(testTarget{}, tc.b, tc.a)
			require.NotNil(t, flipped)
			assert.True(t, syntax.CompareNodes(result, flipped), "the operation is symmetric")
		})
	}
}

func TestArithmeticContainingTypeNonNumbers(t *testing.T) {
	assert.Nil(t, ArithmeticContainingType(testTarget{}, boolType(), signed(32)))
	assert.Nil(t, ArithmeticContainingType(testTarget{}, pointer(signed(8)), signed(8)))
}

func TestGetCastingModeIdentity(t *testing.T) {
	for _, typ := range []ast.Type{boolType(), voidType(), signed(8), unsigned(64), float(32), pointer(signed(8))} {
		assert.Equal(t, CastImplicit, GetCastingMode(testTarget{}, typ, typ),
			"%s to itself is implicit", ast.FormatType(typ))
	}
}

func TestGetCastingModeTable(t *testing.T) {
	testCases := []struct {
		name string
		from ast.Type
		to   ast.Type
		want CastingMode
	}{
		{name: "float widening is implicit", from: float(32), to: float(64), want: CastImplicit},
		{name: "float narrowing is explicit", from: float(64), to: float(32), want: CastExplicit},
		{name: "integer to float is implicit", from: signed(64), to: float(32), want: CastImplicit},
		{name: "float to integer is explicit", from: float(32), to: signed(64), want: CastExplicit},
		{name: "same-signedness widening is implicit", from: signed(8), to: signed(64), want: CastImplicit},
		{name: "same-signedness narrowing is explicit", from: signed(64), to: signed(8), want: CastExplicit},
		{name: "unsigned to strictly wider signed is implicit", from: unsigned(8), to: signed(16), want: CastImplicit},
		{name: "unsigned to same-width signed is explicit", from: unsigned(16), to: signed(16), want: CastExplicit},
		{name: "signed to unsigned is explicit", from: signed(8), to: unsigned(16), want: CastExplicit},
		{name: "usize to u64 on a 64-bit target is implicit", from: usizeType(), to: unsigned(64), want: CastImplicit},
		{name: "bool to integer is illegal", from: boolType(), to: signed(32), want: CastIllegal},
		{name: "pointer to integer is illegal", from: pointer(signed(8)), to: usizeType(), want: CastIllegal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetCastingMode(testTarget{}, tc.from, tc.to))
		})
	}
}
