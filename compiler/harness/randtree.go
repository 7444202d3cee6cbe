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

package harness

import (
	"math/rand"

	"forge/compiler/ast"
	"forge/compiler/source"
)

// RandomTreeGenerator produces random well-formed syntax trees for
// reflective round-trip fuzzing (tree, format, lex, parse, compare). Seeded
// generation keeps failures reproducible.
type RandomTreeGenerator struct {
	rng *rand.Rand
}

// NewRandomTreeGenerator creates a generator from a seed.
func NewRandomTreeGenerator(seed int64) *RandomTreeGenerator {
	return &RandomTreeGenerator{rng: rand.New(rand.NewSource(seed))}
}

// integerWidths are the legal integer bit widths.
var integerWidths = []int{8, 16, 32, 64}

// floatWidths are the legal float bit widths.
var floatWidths = []int{32, 64}

// Type generates a random well-formed type tree at most maxDepth levels
// deep. Only variants with a source spelling are generated, so the result
// always round-trips through the parser.
func (g *RandomTreeGenerator) Type(maxDepth int) ast.Type {
	if maxDepth > 1 && g.rng.Intn(3) == 0 {
		return ast.NewTypeUnary(source.Range{}, ast.TypeUnaryPointer, g.Type(maxDepth-1))
	}
	switch g.rng.Intn(4) {
	case 0:
		return ast.NewTypeBasic(source.Range{}, ast.BasicBool)
	case 1:
		kinds := []ast.BasicKind{ast.BasicISize, ast.BasicUSize}
		return ast.NewTypeBasic(source.Range{}, kinds[g.rng.Intn(len(kinds))])
	case 2:
		kinds := []ast.NumericKind{ast.NumericSignedInt, ast.NumericUnsignedInt}
		return ast.NewTypeWithBitWidth(source.Range{}, kinds[g.rng.Intn(len(kinds))],
			integerWidths[g.rng.Intn(len(integerWidths))])
	default:
		return ast.NewTypeWithBitWidth(source.Range{}, ast.NumericFloat,
			floatWidths[g.rng.Intn(len(floatWidths))])
	}
}
