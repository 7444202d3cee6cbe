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

// Package parser implements the Forge recursive-descent parser: a token
// cursor with save/restore, a small set of generic parsing combinators, and
// the grammar itself. The parser recovers where it can and returns a nil
// tree only on unrecoverable failure.
package parser

import (
	"strings"

	"forge/compiler/lexer"
	"forge/compiler/message"
	"forge/compiler/source"
)

// CodeUnexpectedToken is emitted when the parser finds a token it cannot
// consume.
const CodeUnexpectedToken = "ESY004"

// Context is the cursor over the token stream shared by all parse
// functions.
type Context struct {
	messages *message.Context
	tokens   []lexer.Token
	cursor   int
}

// NewContext creates a parsing context over a token stream.
func NewContext(messages *message.Context, tokens []lexer.Token) *Context {
	return &Context{messages: messages, tokens: tokens}
}

// Messages returns the message context parse errors are emitted into.
func (c *Context) Messages() *message.Context {
	return c.messages
}

// SaveCursor returns the current cursor so a failed speculative parse can
// restore it.
func (c *Context) SaveCursor() int {
	return c.cursor
}

// RestoreCursor rewinds the cursor to a previously saved position.
func (c *Context) RestoreCursor(saved int) {
	c.cursor = saved
}

// AreMoreTokens reports whether any unread tokens remain.
func (c *Context) AreMoreTokens() bool {
	return c.cursor < len(c.tokens)
}

// PeekNextToken returns the next token without consuming it.
func (c *Context) PeekNextToken() (lexer.Token, bool) {
	if !c.AreMoreTokens() {
		return lexer.Token{}, false
	}
	return c.tokens[c.cursor], true
}

// ReadNextToken consumes and returns the next token.
func (c *Context) ReadNextToken() (lexer.Token, bool) {
	token, ok := c.PeekNextToken()
	if ok {
		c.cursor++
	}
	return token, ok
}

// currentRange returns the range of the next token, or of the last token
// when the stream is exhausted, for positioning error messages.
func (c *Context) currentRange() source.Range {
	if token, ok := c.PeekNextToken(); ok {
		return token.Range
	}
	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1].Range
	}
	return source.Range{}
}

// emitUnexpectedToken emits the unexpected-token message listing what was
// expected instead.
func (c *Context) emitUnexpectedToken(expected ...string) {
	c.messages.Emit(c.currentRange(), message.SeverityError, CodeUnexpectedToken,
		"unexpected token, expected "+strings.Join(expected, ", "))
}
