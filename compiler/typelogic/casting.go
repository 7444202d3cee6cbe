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
	"forge/compiler/syntax"
)

// CastingMode classifies a cast between two types.
type CastingMode uint8

const (
	// CastImplicit casts are performed silently where needed.
	CastImplicit CastingMode = iota
	// CastExplicit casts are legal only with an explicit "as" expression.
	CastExplicit
	// CastIllegal casts cannot be performed at all.
	CastIllegal
)

// String returns a display name for the casting mode.
func (m CastingMode) String() string {
	switch m {
	case CastImplicit:
		return "implicit"
	case CastExplicit:
		return "explicit"
	}
	return "illegal"
}

// GetCastingMode classifies the cast from one type to another:
//
//   - identical types cast implicitly;
//   - float to float casts implicitly iff the width does not decrease;
//   - integer to float casts implicitly;
//   - integer to integer of the same signedness casts implicitly iff the
//     width does not decrease;
//   - unsigned to signed integer casts implicitly iff the width strictly
//     increases, so the value's non-sign bits all fit;
//   - every remaining number-to-number cast is explicit;
//   - everything else is illegal.
func GetCastingMode(target Target, from ast.Type, to ast.Type) CastingMode {
	if syntax.IsNilNode(from) || syntax.IsNilNode(to) {
		return CastIllegal
	}

	if syntax.CompareNodes(from, to) {
		return CastImplicit
	}

	if IsNumber(from) && IsNumber(to) {
		fromWidth, _ := NumberBitWidth(target, from)
		toWidth, _ := NumberBitWidth(target, to)

		if IsFloat(from) && IsFloat(to) && fromWidth <= toWidth {
			return CastImplicit
		}

		if IsInteger(from) && IsFloat(to) {
			return CastImplicit
		}

		if IsInteger(from) && IsInteger(to) {
			fromSigned, _ := IntegerSignedness(from)
			toSigned, _ := IntegerSignedness(to)

			if fromSigned == toSigned && fromWidth <= toWidth {
				return CastImplicit
			}

			// Note the strict '<': widening by at least one bit is what
			// guarantees the unsigned value fits below the sign bit.
			if !fromSigned && toSigned && fromWidth < toWidth {
				return CastImplicit
			}
		}

		return CastExplicit
	}

	return CastIllegal
}
