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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/message"
	"forge/compiler/source"
)

func lex(t *testing.T, text string) ([]Token, *message.Context) {
	t.Helper()
	messages := message.NewContext()
	tokens := New().Lex(messages, source.New("test.frg", text))
	return tokens, messages
}

func kinds(tokens []Token) []*TokenKind {
	result := make([]*TokenKind, len(tokens))
	for i, token := range tokens {
		result[i] = token.Kind
	}
	return result
}

func TestLexFunctionDeclaration(t *testing.T) {
	tokens, messages := lex(t, "func f(a: bool) -> bool { return a; }")
	require.Zero(t, messages.ErrorCount())

	assert.Equal(t, []*TokenKind{
		TokenKwFunc, TokenSymbol, TokenLParen, TokenSymbol, TokenColon, TokenKwBool,
		TokenRParen, TokenRArrow, TokenKwBool, TokenLBrace, TokenKwReturn, TokenSymbol,
		TokenSemicolon, TokenRBrace,
	}, kinds(tokens))
	assert.Equal(t, "f", tokens[1].Text)
	assert.Equal(t, "a", tokens[3].Text)
}

func TestLexMaximalMunchOperators(t *testing.T) {
	tokens, messages := lex(t, "a <<= b << c < d **= e ** f")
	require.Zero(t, messages.ErrorCount())

	assert.Equal(t, []*TokenKind{
		TokenSymbol, TokenBitShlAssign, TokenSymbol, TokenBitShl, TokenSymbol,
		TokenLt, TokenSymbol, TokenExpAssign, TokenSymbol, TokenExp, TokenSymbol,
	}, kinds(tokens))
}

func TestLexNumberLiterals(t *testing.T) {
	tokens, messages := lex(t, "0 42 1_000 3.25 7i8 200u8 1.5f32")
	require.Zero(t, messages.ErrorCount())

	texts := make([]string, len(tokens))
	for i, token := range tokens {
		require.Same(t, TokenLiteralNumber, token.Kind)
		texts[i] = token.Text
	}
	assert.Equal(t, []string{"0", "42", "1_000", "3.25", "7i8", "200u8", "1.5f32"}, texts)
}

func TestLexComments(t *testing.T) {
	tokens, messages := lex(t, "a // comment\nb /* multi\nline */ c")
	require.Zero(t, messages.ErrorCount())
	assert.Equal(t, []*TokenKind{TokenSymbol, TokenSymbol, TokenSymbol}, kinds(tokens))
}

func TestLexUnclosedBlockComment(t *testing.T) {
	_, messages := lex(t, "a /* never closed")
	require.Equal(t, 1, messages.ErrorCount())
	assert.Equal(t, CodeUnclosedBlockComment, messages.Messages()[0].Code)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	tokens, messages := lex(t, "a @ b")
	require.Equal(t, 1, messages.ErrorCount())
	assert.Equal(t, CodeUnexpectedCharacter, messages.Messages()[0].Code)
	// Lexing recovers and keeps producing tokens.
	assert.Equal(t, []*TokenKind{TokenSymbol, TokenSymbol}, kinds(tokens))
}

func TestLexTokenRanges(t *testing.T) {
	tokens, messages := lex(t, "ab\n  cd")
	require.Zero(t, messages.ErrorCount())
	require.Len(t, tokens, 2)

	assert.Equal(t, 1, tokens[0].Range.Start.Line)
	assert.Equal(t, 1, tokens[0].Range.Start.Column)
	assert.Equal(t, 0, tokens[0].Range.Start.Offset)
	assert.Equal(t, 3, tokens[0].Range.End.Column)

	assert.Equal(t, 2, tokens[1].Range.Start.Line)
	assert.Equal(t, 3, tokens[1].Range.Start.Column)
	assert.Equal(t, 5, tokens[1].Range.Start.Offset)
}

func TestLexKeywordsAreNotSymbols(t *testing.T) {
	tokens, messages := lex(t, "while whilex")
	require.Zero(t, messages.ErrorCount())
	require.Len(t, tokens, 2)
	assert.Same(t, TokenKwWhile, tokens[0].Kind)
	assert.Same(t, TokenSymbol, tokens[1].Kind)
}
