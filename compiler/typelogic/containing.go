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
	"forge/compiler/ast"
	"forge/compiler/source"
	"forge/compiler/syntax"
)

// ArithmeticContainingType returns the smallest number type that losslessly
// represents both operand types, used to type binary arithmetic results:
//
//   - identical types contain themselves;
//   - for two number types the result is float if either is float, else
//     signed if either is signed, else unsigned, at the larger of the two
//     bit widths (pointer-sized integers count at the target width);
//   - any other combination has no containing type and yields nil.
//
// The operation is symmetric up to structural equality.
func ArithmeticContainingType(target Target, a ast.Type, b ast.Type) ast.Type {
	if syntax.IsNilNode(a) || syntax.IsNilNode(b) {
		return nil
	}

	if syntax.CompareNodes(a, b) {
		return syntax.CloneNode(a)
	}

	if !IsNumber(a) || !IsNumber(b) {
		return nil
	}

	kind := ast.NumericUnsignedInt
	if IsFloat(a) || IsFloat(b) {
		kind = ast.NumericFloat
	} else if signedA, _ := IntegerSignedness(a); signedA {
		kind = ast.NumericSignedInt
	} else if signedB, _ := IntegerSignedness(b); signedB {
		kind = ast.NumericSignedInt
	}

	widthA, _ := NumberBitWidth(target, a)
	widthB, _ := NumberBitWidth(target, b)
	width := widthA
	if widthB > width {
		width = widthB
	}

	return ast.NewTypeWithBitWidth(source.Range{}, kind, width)
}
