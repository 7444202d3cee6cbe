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
	"fmt"
	"strings"

	"forge/compiler/syntax"
)

// FormatType renders a type the way it is spelled in source. The output of
// the parseable variants (basic, bit-width, symbol, and pointer types)
// round-trips through the parser; function and structured types only appear
// in diagnostics.
func FormatType(t Type) string {
	var b strings.Builder
	formatTypeTo(&b, t)
	return b.String()
}

func formatTypeTo(b *strings.Builder, t Type) {
	if syntax.IsNilNode(t) {
		b.WriteString("<unresolved>")
		return
	}
	switch n := t.(type) {
	case *TypeBasic:
		b.WriteString(n.BasicKind.String())
	case *TypeWithBitWidth:
		fmt.Fprintf(b, "%s%d", n.NumericKind, n.BitWidth)
	case *TypeSymbol:
		b.WriteString(n.Name)
	case *TypeUnary:
		b.WriteString(n.UnaryKind.String())
		formatTypeTo(b, n.OperandType)
	case *TypeFunction:
		b.WriteString("(")
		for i, arg := range n.ArgTypes {
			if i > 0 {
				b.WriteString(", ")
			}
			formatTypeTo(b, arg)
		}
		b.WriteString(") -> ")
		formatTypeTo(b, n.ReturnType)
	case *TypeStructured:
		b.WriteString(n.StructuredKind.String())
	default:
		b.WriteString("<unknown>")
	}
}
