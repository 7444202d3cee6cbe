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

// Package lexer implements the Forge lexer: it turns a source buffer into a
// flat sequence of tokens with source ranges, counting columns in grapheme
// clusters.
package lexer

import "forge/compiler/source"

// TokenKind identifies the kind of a token. Kinds are compared by pointer
// identity, never by name; the name is only used in diagnostics.
type TokenKind struct {
	name string
}

// NewTokenKind creates a new globally-unique token kind with a display name.
func NewTokenKind(name string) *TokenKind {
	return &TokenKind{name: name}
}

// String returns the display name of the token kind.
func (k *TokenKind) String() string {
	return k.name
}

// Token is one lexed token.
type Token struct {
	// Kind is the token kind identity.
	Kind *TokenKind
	// Range is the source range the token spans.
	Range source.Range
	// Text is the token's text as written in source.
	Text string
}

// Keyword token kinds, in alphabetical order.
var (
	TokenKwAs        = NewTokenKind("'as'")
	TokenKwBool      = NewTokenKind("'bool'")
	TokenKwBreak     = NewTokenKind("'break'")
	TokenKwConst     = NewTokenKind("'const'")
	TokenKwContinue  = NewTokenKind("'continue'")
	TokenKwDo        = NewTokenKind("'do'")
	TokenKwElse      = NewTokenKind("'else'")
	TokenKwExplicit  = NewTokenKind("'explicit'")
	TokenKwF32       = NewTokenKind("'f32'")
	TokenKwF64       = NewTokenKind("'f64'")
	TokenKwFalse     = NewTokenKind("'false'")
	TokenKwFunc      = NewTokenKind("'func'")
	TokenKwI16       = NewTokenKind("'i16'")
	TokenKwI32       = NewTokenKind("'i32'")
	TokenKwI64       = NewTokenKind("'i64'")
	TokenKwI8        = NewTokenKind("'i8'")
	TokenKwIf        = NewTokenKind("'if'")
	TokenKwInherits  = NewTokenKind("'inherits'")
	TokenKwInterface = NewTokenKind("'interface'")
	TokenKwISize     = NewTokenKind("'isize'")
	TokenKwLet       = NewTokenKind("'let'")
	TokenKwNamespace = NewTokenKind("'namespace'")
	TokenKwReturn    = NewTokenKind("'return'")
	TokenKwSelf      = NewTokenKind("'self'")
	TokenKwStruct    = NewTokenKind("'struct'")
	TokenKwTrue      = NewTokenKind("'true'")
	TokenKwType      = NewTokenKind("'type'")
	TokenKwU16       = NewTokenKind("'u16'")
	TokenKwU32       = NewTokenKind("'u32'")
	TokenKwU64       = NewTokenKind("'u64'")
	TokenKwU8        = NewTokenKind("'u8'")
	TokenKwUSize     = NewTokenKind("'usize'")
	TokenKwVoid      = NewTokenKind("'void'")
	TokenKwWhile     = NewTokenKind("'while'")
)

// Boolean operator token kinds.
var (
	TokenBoolNot = NewTokenKind("!")
	TokenBoolAnd = NewTokenKind("&&")
	TokenBoolOr  = NewTokenKind("||")
)

// Bitwise operator token kinds.
var (
	TokenBitNot       = NewTokenKind("~")
	TokenBitAnd       = NewTokenKind("&")
	TokenBitAndAssign = NewTokenKind("&=")
	TokenBitOr        = NewTokenKind("|")
	TokenBitOrAssign  = NewTokenKind("|=")
	TokenBitXor       = NewTokenKind("^")
	TokenBitXorAssign = NewTokenKind("^=")
	TokenBitShl       = NewTokenKind("<<")
	TokenBitShlAssign = NewTokenKind("<<=")
	TokenBitShr       = NewTokenKind(">>")
	TokenBitShrAssign = NewTokenKind(">>=")
)

// Arithmetic operator token kinds.
var (
	TokenAdd       = NewTokenKind("+")
	TokenAddAssign = NewTokenKind("+=")
	TokenSub       = NewTokenKind("-")
	TokenSubAssign = NewTokenKind("-=")
	TokenMul       = NewTokenKind("*")
	TokenMulAssign = NewTokenKind("*=")
	TokenExp       = NewTokenKind("**")
	TokenExpAssign = NewTokenKind("**=")
	TokenDiv       = NewTokenKind("/")
	TokenDivAssign = NewTokenKind("/=")
	TokenMod       = NewTokenKind("%")
	TokenModAssign = NewTokenKind("%=")
	TokenAssign    = NewTokenKind("=")
)

// Comparator token kinds.
var (
	TokenEq = NewTokenKind("==")
	TokenNe = NewTokenKind("!=")
	TokenLt = NewTokenKind("<")
	TokenLe = NewTokenKind("<=")
	TokenGt = NewTokenKind(">")
	TokenGe = NewTokenKind(">=")
)

// Punctuation token kinds.
var (
	TokenLParen    = NewTokenKind("(")
	TokenComma     = NewTokenKind(",")
	TokenRParen    = NewTokenKind(")")
	TokenLBrace    = NewTokenKind("{")
	TokenSemicolon = NewTokenKind(";")
	TokenRBrace    = NewTokenKind("}")
	TokenColon     = NewTokenKind(":")
	TokenDot       = NewTokenKind(".")
	TokenRArrow    = NewTokenKind("->")
)

// Symbol and literal token kinds.
var (
	TokenSymbol        = NewTokenKind("'symbol'")
	TokenLiteralNumber = NewTokenKind("number literal")
)

// keywords maps keyword spellings to their token kinds.
var keywords = map[string]*TokenKind{
	"as":        TokenKwAs,
	"bool":      TokenKwBool,
	"break":     TokenKwBreak,
	"const":     TokenKwConst,
	"continue":  TokenKwContinue,
	"do":        TokenKwDo,
	"else":      TokenKwElse,
	"explicit":  TokenKwExplicit,
	"f32":       TokenKwF32,
	"f64":       TokenKwF64,
	"false":     TokenKwFalse,
	"func":      TokenKwFunc,
	"i16":       TokenKwI16,
	"i32":       TokenKwI32,
	"i64":       TokenKwI64,
	"i8":        TokenKwI8,
	"if":        TokenKwIf,
	"inherits":  TokenKwInherits,
	"interface": TokenKwInterface,
	"isize":     TokenKwISize,
	"let":       TokenKwLet,
	"namespace": TokenKwNamespace,
	"return":    TokenKwReturn,
	"self":      TokenKwSelf,
	"struct":    TokenKwStruct,
	"true":      TokenKwTrue,
	"type":      TokenKwType,
	"u16":       TokenKwU16,
	"u32":       TokenKwU32,
	"u64":       TokenKwU64,
	"u8":        TokenKwU8,
	"usize":     TokenKwUSize,
	"void":      TokenKwVoid,
	"while":     TokenKwWhile,
}

// operators lists operator and punctuation spellings together with their
// kinds, ordered longest-first for maximal-munch scanning.
var operators = []struct {
	text string
	kind *TokenKind
}{
	{"**=", TokenExpAssign},
	{"<<=", TokenBitShlAssign},
	{">>=", TokenBitShrAssign},
	{"&&", TokenBoolAnd},
	{"||", TokenBoolOr},
	{"&=", TokenBitAndAssign},
	{"|=", TokenBitOrAssign},
	{"^=", TokenBitXorAssign},
	{"<<", TokenBitShl},
	{">>", TokenBitShr},
	{"**", TokenExp},
	{"+=", TokenAddAssign},
	{"-=", TokenSubAssign},
	{"*=", TokenMulAssign},
	{"/=", TokenDivAssign},
	{"%=", TokenModAssign},
	{"==", TokenEq},
	{"!=", TokenNe},
	{"<=", TokenLe},
	{">=", TokenGe},
	{"->", TokenRArrow},
	{"!", TokenBoolNot},
	{"~", TokenBitNot},
	{"&", TokenBitAnd},
	{"|", TokenBitOr},
	{"^", TokenBitXor},
	{"+", TokenAdd},
	{"-", TokenSub},
	{"*", TokenMul},
	{"/", TokenDiv},
	{"%", TokenMod},
	{"=", TokenAssign},
	{"<", TokenLt},
	{">", TokenGt},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{",", TokenComma},
	{";", TokenSemicolon},
	{":", TokenColon},
	{".", TokenDot},
}
