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

import "forge/compiler/lexer"

// parseFn is the shape every parse function shares: attempt to parse a T,
// reporting success through the second return value. A failed parse may
// leave the cursor anywhere; callers that need backtracking wrap the call in
// ParseOptional.
type parseFn[T any] func(c *Context) (T, bool)

// ParseOptional attempts a parse and restores the cursor on failure, so the
// caller can try something else.
func ParseOptional[T any](c *Context, parse parseFn[T]) (T, bool) {
	saved := c.SaveCursor()
	result, ok := parse(c)
	if !ok {
		c.RestoreCursor(saved)
	}
	return result, ok
}

// ParseAnyOf tries each parser in order, returning the first success. All
// failed attempts are rolled back.
func ParseAnyOf[T any](c *Context, parsers ...parseFn[T]) (T, bool) {
	for _, parse := range parsers {
		if result, ok := ParseOptional(c, parse); ok {
			return result, true
		}
	}
	var zero T
	return zero, false
}

// ParseToken consumes the next token if it has the wanted kind.
func ParseToken(c *Context, kind *lexer.TokenKind) (lexer.Token, bool) {
	token, ok := c.PeekNextToken()
	if !ok || token.Kind != kind {
		return lexer.Token{}, false
	}
	c.ReadNextToken()
	return token, true
}

// ParsePrefixed parses a prefix token followed by an item.
func ParsePrefixed[T any](c *Context, prefix *lexer.TokenKind, parse parseFn[T]) (T, bool) {
	if _, ok := ParseToken(c, prefix); !ok {
		var zero T
		return zero, false
	}
	return parse(c)
}

// ParseSuffixed parses an item followed by a suffix token. The suffix is
// reported through emitUnexpectedToken when missing, since at that point the
// item has committed the parse.
func ParseSuffixed[T any](c *Context, parse parseFn[T], suffix *lexer.TokenKind) (T, bool) {
	result, ok := parse(c)
	if !ok {
		var zero T
		return zero, false
	}
	if _, ok := ParseToken(c, suffix); !ok {
		c.emitUnexpectedToken(suffix.String())
		var zero T
		return zero, false
	}
	return result, true
}

// ParseBound parses open, an item, and close.
func ParseBound[T any](c *Context, open *lexer.TokenKind, parse parseFn[T], close *lexer.TokenKind) (T, bool) {
	if _, ok := ParseToken(c, open); !ok {
		var zero T
		return zero, false
	}
	return ParseSuffixed(c, parse, close)
}

// ParseRepeatedBound parses open, any number of items, and close.
func ParseRepeatedBound[T any](c *Context, open *lexer.TokenKind, parse parseFn[T], close *lexer.TokenKind) ([]T, bool) {
	if _, ok := ParseToken(c, open); !ok {
		return nil, false
	}
	items := []T{}
	for {
		if _, ok := ParseToken(c, close); ok {
			return items, true
		}
		item, ok := ParseOptional(c, parse)
		if !ok {
			c.emitUnexpectedToken(close.String())
			return nil, false
		}
		items = append(items, item)
	}
}

// ParseRepeatedSeparatedBound parses open, a separator-delimited list of
// items, and close. The list may be empty.
func ParseRepeatedSeparatedBound[T any](c *Context, open *lexer.TokenKind, parse parseFn[T], separator *lexer.TokenKind, close *lexer.TokenKind) ([]T, bool) {
	if _, ok := ParseToken(c, open); !ok {
		return nil, false
	}
	items := []T{}
	if _, ok := ParseToken(c, close); ok {
		return items, true
	}
	for {
		item, ok := ParseOptional(c, parse)
		if !ok {
			c.emitUnexpectedToken(close.String())
			return nil, false
		}
		items = append(items, item)
		if _, ok := ParseToken(c, separator); ok {
			continue
		}
		if _, ok := ParseToken(c, close); ok {
			return items, true
		}
		c.emitUnexpectedToken(separator.String(), close.String())
		return nil, false
	}
}

// binaryOperatorTable maps operator token kinds to a combine callback for
// one precedence level.
type binaryOperatorTable[T any] struct {
	kinds   []*lexer.TokenKind
	combine func(operator *lexer.TokenKind, lhs T, rhs T) T
}

// ParseBinaryOperation parses a left-associative chain of operand
// (operator operand)* for one precedence level.
func ParseBinaryOperation[T any](c *Context, operand parseFn[T], table binaryOperatorTable[T]) (T, bool) {
	lhs, ok := operand(c)
	if !ok {
		var zero T
		return zero, false
	}
	for {
		matched := false
		for _, kind := range table.kinds {
			if _, ok := ParseToken(c, kind); ok {
				rhs, ok := ParseOptional(c, operand)
				if !ok {
					c.emitUnexpectedToken("value")
					var zero T
					return zero, false
				}
				lhs = table.combine(kind, lhs, rhs)
				matched = true
				break
			}
		}
		if !matched {
			return lhs, true
		}
	}
}
