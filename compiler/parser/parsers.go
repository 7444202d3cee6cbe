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
	"strconv"
	"strings"

	"forge/compiler/ast"
	"forge/compiler/lexer"
	"forge/compiler/message"
	"forge/compiler/source"
)

// ParseTranslationUnit parses a whole token stream into a translation unit.
// It returns nil on unrecoverable failure; the message context then holds at
// least one error explaining why.
func ParseTranslationUnit(c *Context) *ast.TranslationUnit {
	declarations := []ast.Declaration{}
	r := source.Range{}
	for c.AreMoreTokens() {
		declaration, ok := ParseOptional(c, parseDeclaration)
		if !ok {
			c.emitUnexpectedToken("declaration")
			return nil
		}
		declarations = append(declarations, declaration)
		r = source.Combine(r, declaration.Range())
	}
	return ast.NewTranslationUnit(r, declarations)
}

//
// Types
//

// parseType parses any type.
func parseType(c *Context) (ast.Type, bool) {
	return parseTypeUnary(c)
}

// parseTypeUnary parses pointer types ("*T") and falls through to terms.
func parseTypeUnary(c *Context) (ast.Type, bool) {
	if star, ok := ParseToken(c, lexer.TokenMul); ok {
		operand, ok := parseTypeUnary(c)
		if !ok {
			c.emitUnexpectedToken("type")
			return nil, false
		}
		return ast.NewTypeUnary(source.Combine(star.Range, operand.Range()),
			ast.TypeUnaryPointer, operand), true
	}
	// "**" lexes as one exponent token; in type position it is two pointers.
	if stars, ok := ParseToken(c, lexer.TokenExp); ok {
		operand, ok := parseTypeUnary(c)
		if !ok {
			c.emitUnexpectedToken("type")
			return nil, false
		}
		r := source.Combine(stars.Range, operand.Range())
		inner := ast.NewTypeUnary(r, ast.TypeUnaryPointer, operand)
		return ast.NewTypeUnary(r, ast.TypeUnaryPointer, inner), true
	}
	return parseTypeTerm(c)
}

// basicTypeTokens maps basic type keywords to their kinds.
var basicTypeTokens = []struct {
	token *lexer.TokenKind
	kind  ast.BasicKind
}{
	{lexer.TokenKwBool, ast.BasicBool},
	{lexer.TokenKwVoid, ast.BasicVoid},
	{lexer.TokenKwISize, ast.BasicISize},
	{lexer.TokenKwUSize, ast.BasicUSize},
}

// numericTypeTokens maps bit-width type keywords to their kinds and widths.
var numericTypeTokens = []struct {
	token    *lexer.TokenKind
	kind     ast.NumericKind
	bitWidth int
}{
	{lexer.TokenKwI8, ast.NumericSignedInt, 8},
	{lexer.TokenKwI16, ast.NumericSignedInt, 16},
	{lexer.TokenKwI32, ast.NumericSignedInt, 32},
	{lexer.TokenKwI64, ast.NumericSignedInt, 64},
	{lexer.TokenKwU8, ast.NumericUnsignedInt, 8},
	{lexer.TokenKwU16, ast.NumericUnsignedInt, 16},
	{lexer.TokenKwU32, ast.NumericUnsignedInt, 32},
	{lexer.TokenKwU64, ast.NumericUnsignedInt, 64},
	{lexer.TokenKwF32, ast.NumericFloat, 32},
	{lexer.TokenKwF64, ast.NumericFloat, 64},
}

// parseTypeTerm parses a basic type, a bit-width type, a const-qualified
// type, a parenthesized type, or a type symbol.
func parseTypeTerm(c *Context) (ast.Type, bool) {
	if _, ok := ParseToken(c, lexer.TokenKwConst); ok {
		inner, ok := parseTypeUnary(c)
		if !ok {
			c.emitUnexpectedToken("type")
			return nil, false
		}
		setTypeConst(inner)
		return inner, true
	}

	for _, basic := range basicTypeTokens {
		if token, ok := ParseToken(c, basic.token); ok {
			return ast.NewTypeBasic(token.Range, basic.kind), true
		}
	}

	for _, numeric := range numericTypeTokens {
		if token, ok := ParseToken(c, numeric.token); ok {
			return ast.NewTypeWithBitWidth(token.Range, numeric.kind, numeric.bitWidth), true
		}
	}

	if inner, ok := ParseBound(c, lexer.TokenLParen, parseType, lexer.TokenRParen); ok {
		return inner, true
	}

	if token, ok := ParseToken(c, lexer.TokenSymbol); ok {
		return ast.NewTypeSymbol(token.Range, token.Text), true
	}

	return nil, false
}

// setTypeConst marks a parsed type as const-qualified.
func setTypeConst(t ast.Type) {
	switch n := t.(type) {
	case *ast.TypeBasic:
		n.Const = true
	case *ast.TypeWithBitWidth:
		n.Const = true
	case *ast.TypeSymbol:
		n.Const = true
	case *ast.TypeUnary:
		n.Const = true
	case *ast.TypeFunction:
		n.Const = true
	case *ast.TypeStructured:
		n.Const = true
	}
}

//
// Values
//

// parseValue parses any value expression.
func parseValue(c *Context) (ast.Value, bool) {
	return parseValueAssignments(c)
}

// assignmentOperators maps assignment token kinds to binary operators.
var assignmentOperators = map[*lexer.TokenKind]ast.BinaryOperator{
	lexer.TokenAssign:       ast.BinaryAssign,
	lexer.TokenAddAssign:    ast.BinaryAddAssign,
	lexer.TokenSubAssign:    ast.BinarySubAssign,
	lexer.TokenMulAssign:    ast.BinaryMulAssign,
	lexer.TokenExpAssign:    ast.BinaryExpAssign,
	lexer.TokenDivAssign:    ast.BinaryDivAssign,
	lexer.TokenModAssign:    ast.BinaryModAssign,
	lexer.TokenBitAndAssign: ast.BinaryBitAndAssign,
	lexer.TokenBitOrAssign:  ast.BinaryBitOrAssign,
	lexer.TokenBitXorAssign: ast.BinaryBitXorAssign,
	lexer.TokenBitShlAssign: ast.BinaryBitShlAssign,
	lexer.TokenBitShrAssign: ast.BinaryBitShrAssign,
}

// parseValueAssignments parses assignments, which are right-associative and
// bind loosest of all operators.
func parseValueAssignments(c *Context) (ast.Value, bool) {
	lhs, ok := parseValueCast(c)
	if !ok {
		return nil, false
	}
	for kind, operator := range assignmentOperators {
		if _, ok := ParseToken(c, kind); ok {
			rhs, ok := parseValueAssignments(c)
			if !ok {
				c.emitUnexpectedToken("value")
				return nil, false
			}
			return ast.NewValueBinary(source.Combine(lhs.Range(), rhs.Range()),
				operator, lhs, rhs), true
		}
	}
	return lhs, true
}

// parseValueCast parses "value as type" casts, which chain left to right.
func parseValueCast(c *Context) (ast.Value, bool) {
	value, ok := parseValueBooleanOr(c)
	if !ok {
		return nil, false
	}
	for {
		if _, ok := ParseToken(c, lexer.TokenKwAs); !ok {
			return value, true
		}
		target, ok := parseType(c)
		if !ok {
			c.emitUnexpectedToken("type")
			return nil, false
		}
		value = ast.NewValueCast(source.Combine(value.Range(), target.Range()), value, target)
	}
}

// binaryLevel builds the operator table for one precedence level.
func binaryLevel(kinds map[*lexer.TokenKind]ast.BinaryOperator, ordered ...*lexer.TokenKind) binaryOperatorTable[ast.Value] {
	return binaryOperatorTable[ast.Value]{
		kinds: ordered,
		combine: func(operator *lexer.TokenKind, lhs ast.Value, rhs ast.Value) ast.Value {
			return ast.NewValueBinary(source.Combine(lhs.Range(), rhs.Range()), kinds[operator], lhs, rhs)
		},
	}
}

var (
	booleanOrOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenBoolOr: ast.BinaryBoolOr,
	}
	booleanAndOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenBoolAnd: ast.BinaryBoolAnd,
	}
	comparativeOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenEq: ast.BinaryEq,
		lexer.TokenNe: ast.BinaryNe,
		lexer.TokenLt: ast.BinaryLt,
		lexer.TokenLe: ast.BinaryLe,
		lexer.TokenGt: ast.BinaryGt,
		lexer.TokenGe: ast.BinaryGe,
	}
	bitDisjunctiveOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenBitOr:  ast.BinaryBitOr,
		lexer.TokenBitXor: ast.BinaryBitXor,
	}
	bitConjunctiveOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenBitAnd: ast.BinaryBitAnd,
	}
	shiftOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenBitShl: ast.BinaryBitShl,
		lexer.TokenBitShr: ast.BinaryBitShr,
	}
	additiveOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenAdd: ast.BinaryAdd,
		lexer.TokenSub: ast.BinarySub,
	}
	multiplicativeOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenMul: ast.BinaryMul,
		lexer.TokenDiv: ast.BinaryDiv,
		lexer.TokenMod: ast.BinaryMod,
	}
	exponentiationOperators = map[*lexer.TokenKind]ast.BinaryOperator{
		lexer.TokenExp: ast.BinaryExp,
	}
)

func parseValueBooleanOr(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueBooleanAnd,
		binaryLevel(booleanOrOperators, lexer.TokenBoolOr))
}

func parseValueBooleanAnd(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueComparative,
		binaryLevel(booleanAndOperators, lexer.TokenBoolAnd))
}

func parseValueComparative(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueBitDisjunctive,
		binaryLevel(comparativeOperators, lexer.TokenEq, lexer.TokenNe,
			lexer.TokenLe, lexer.TokenGe, lexer.TokenLt, lexer.TokenGt))
}

func parseValueBitDisjunctive(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueBitConjunctive,
		binaryLevel(bitDisjunctiveOperators, lexer.TokenBitOr, lexer.TokenBitXor))
}

func parseValueBitConjunctive(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueBitShifts,
		binaryLevel(bitConjunctiveOperators, lexer.TokenBitAnd))
}

func parseValueBitShifts(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueAdditive,
		binaryLevel(shiftOperators, lexer.TokenBitShl, lexer.TokenBitShr))
}

func parseValueAdditive(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueMultiplicative,
		binaryLevel(additiveOperators, lexer.TokenAdd, lexer.TokenSub))
}

func parseValueMultiplicative(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueExponentiation,
		binaryLevel(multiplicativeOperators, lexer.TokenMul, lexer.TokenDiv, lexer.TokenMod))
}

func parseValueExponentiation(c *Context) (ast.Value, bool) {
	return ParseBinaryOperation(c, parseValueUnary,
		binaryLevel(exponentiationOperators, lexer.TokenExp))
}

// unaryOperators maps unary operator token kinds to operators.
var unaryOperators = []struct {
	token    *lexer.TokenKind
	operator ast.UnaryOperator
}{
	{lexer.TokenBoolNot, ast.UnaryBoolNot},
	{lexer.TokenBitNot, ast.UnaryBitNot},
	{lexer.TokenAdd, ast.UnaryPos},
	{lexer.TokenSub, ast.UnaryNeg},
	{lexer.TokenMul, ast.UnaryDeref},
	{lexer.TokenBitAnd, ast.UnaryGetAddr},
}

// parseValueUnary parses prefix unary operators.
func parseValueUnary(c *Context) (ast.Value, bool) {
	for _, unary := range unaryOperators {
		if token, ok := ParseToken(c, unary.token); ok {
			operand, ok := parseValueUnary(c)
			if !ok {
				c.emitUnexpectedToken("value")
				return nil, false
			}
			return ast.NewValueUnary(source.Combine(token.Range, operand.Range()),
				unary.operator, operand), true
		}
	}
	return parseValueFunctionCall(c)
}

// parseValueFunctionCall parses call chains ("f(a)(b)").
func parseValueFunctionCall(c *Context) (ast.Value, bool) {
	callee, ok := parseValueMemberAccess(c)
	if !ok {
		return nil, false
	}
	for {
		if token, ok := c.PeekNextToken(); !ok || token.Kind != lexer.TokenLParen {
			return callee, true
		}
		args, ok := ParseRepeatedSeparatedBound(c, lexer.TokenLParen, parseValue,
			lexer.TokenComma, lexer.TokenRParen)
		if !ok {
			return nil, false
		}
		r := callee.Range()
		for _, arg := range args {
			r = source.Combine(r, arg.Range())
		}
		callee = ast.NewValueCall(r, callee, args)
	}
}

// parseValueMemberAccess parses "a.b.c" chains.
func parseValueMemberAccess(c *Context) (ast.Value, bool) {
	operand, ok := parseValueTerm(c)
	if !ok {
		return nil, false
	}
	for {
		if _, ok := ParseToken(c, lexer.TokenDot); !ok {
			return operand, true
		}
		member, ok := ParseToken(c, lexer.TokenSymbol)
		if !ok {
			c.emitUnexpectedToken(lexer.TokenSymbol.String())
			return nil, false
		}
		operand = ast.NewValueBinary(source.Combine(operand.Range(), member.Range),
			ast.BinaryMemberAccess, operand, ast.NewValueSymbol(member.Range, member.Text))
	}
}

// parseValueTerm parses literals, symbols, and parenthesized values.
func parseValueTerm(c *Context) (ast.Value, bool) {
	if token, ok := ParseToken(c, lexer.TokenKwTrue); ok {
		return ast.NewValueLiteralBool(token.Range, true), true
	}
	if token, ok := ParseToken(c, lexer.TokenKwFalse); ok {
		return ast.NewValueLiteralBool(token.Range, false), true
	}
	if token, ok := ParseToken(c, lexer.TokenLiteralNumber); ok {
		return parseNumberLiteral(c, token)
	}
	if token, ok := ParseToken(c, lexer.TokenSymbol); ok {
		return ast.NewValueSymbol(token.Range, token.Text), true
	}
	return ParseBound(c, lexer.TokenLParen, parseValue, lexer.TokenRParen)
}

// parseNumberLiteral interprets a number token: an optional width suffix
// selects the literal type, a fraction makes it f64 by default, and plain
// integers default to i32.
func parseNumberLiteral(c *Context, token lexer.Token) (ast.Value, bool) {
	text := strings.ReplaceAll(token.Text, "_", "")

	kind := ast.NumericSignedInt
	bitWidth := 32
	digits := text
	hasSuffix := false
	if i := strings.IndexAny(text, "iuf"); i >= 0 {
		digits = text[:i]
		width, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return invalidNumberLiteral(c, token)
		}
		switch text[i] {
		case 'i':
			kind = ast.NumericSignedInt
		case 'u':
			kind = ast.NumericUnsignedInt
		case 'f':
			kind = ast.NumericFloat
		}
		bitWidth = width
		hasSuffix = true
	}

	isFractional := strings.Contains(digits, ".")
	if isFractional && !hasSuffix {
		kind = ast.NumericFloat
		bitWidth = 64
	}
	if isFractional && kind != ast.NumericFloat {
		return invalidNumberLiteral(c, token)
	}

	switch kind {
	case ast.NumericFloat:
		if bitWidth != 32 && bitWidth != 64 {
			return invalidNumberLiteral(c, token)
		}
		value, err := strconv.ParseFloat(digits, bitWidth)
		if err != nil {
			return invalidNumberLiteral(c, token)
		}
		return ast.NewValueLiteralNumber(token.Range,
			ast.NewTypeWithBitWidth(token.Range, kind, bitWidth),
			ast.Number{Kind: kind, BitWidth: bitWidth, Float: value}), true
	case ast.NumericUnsignedInt:
		if !isLegalIntegerWidth(bitWidth) {
			return invalidNumberLiteral(c, token)
		}
		value, err := strconv.ParseUint(digits, 10, bitWidth)
		if err != nil {
			return invalidNumberLiteral(c, token)
		}
		return ast.NewValueLiteralNumber(token.Range,
			ast.NewTypeWithBitWidth(token.Range, kind, bitWidth),
			ast.Number{Kind: kind, BitWidth: bitWidth, Uint: value}), true
	default:
		if !isLegalIntegerWidth(bitWidth) {
			return invalidNumberLiteral(c, token)
		}
		value, err := strconv.ParseInt(digits, 10, bitWidth)
		if err != nil {
			return invalidNumberLiteral(c, token)
		}
		return ast.NewValueLiteralNumber(token.Range,
			ast.NewTypeWithBitWidth(token.Range, kind, bitWidth),
			ast.Number{Kind: kind, BitWidth: bitWidth, Int: value}), true
	}
}

// invalidNumberLiteral emits the invalid-number diagnostic and fails the
// parse.
func invalidNumberLiteral(c *Context, token lexer.Token) (ast.Value, bool) {
	c.Messages().Emit(token.Range, message.SeverityError,
		lexer.CodeInvalidNumberLiteral, "invalid number literal")
	return nil, false
}

// isLegalIntegerWidth reports whether w is a legal integer bit width.
func isLegalIntegerWidth(w int) bool {
	return w == 8 || w == 16 || w == 32 || w == 64
}

//
// Statements
//

// parseStatement parses any statement.
func parseStatement(c *Context) (ast.Statement, bool) {
	return ParseAnyOf(c,
		parseStatementBlockAsStatement,
		parseStatementIfAsStatement,
		parseStatementWhile,
		parseStatementDoWhile,
		parseStatementContinue,
		parseStatementBreak,
		parseStatementReturn,
		parseStatementLet,
		parseStatementExecute,
	)
}

func parseStatementBlockAsStatement(c *Context) (ast.Statement, bool) {
	block, ok := parseStatementBlock(c)
	if !ok {
		return nil, false
	}
	return block, true
}

// parseStatementBlock parses "{ statement* }".
func parseStatementBlock(c *Context) (*ast.StatementBlock, bool) {
	open, ok := ParseToken(c, lexer.TokenLBrace)
	if !ok {
		return nil, false
	}
	statements := []ast.Statement{}
	for {
		if close, ok := ParseToken(c, lexer.TokenRBrace); ok {
			return ast.NewStatementBlock(source.Combine(open.Range, close.Range), statements), true
		}
		statement, ok := ParseOptional(c, parseStatement)
		if !ok {
			c.emitUnexpectedToken("statement", lexer.TokenRBrace.String())
			return nil, false
		}
		statements = append(statements, statement)
	}
}

func parseStatementIfAsStatement(c *Context) (ast.Statement, bool) {
	statement, ok := parseStatementIf(c)
	if !ok {
		return nil, false
	}
	return statement, true
}

// parseStatementIf parses "if cond { ... }" with an optional "else" branch
// that is either a block or a chained if.
func parseStatementIf(c *Context) (*ast.StatementIf, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwIf)
	if !ok {
		return nil, false
	}
	condition, ok := ParseOptional(c, parseValue)
	if !ok {
		c.emitUnexpectedToken("value")
		return nil, false
	}
	then, ok := parseStatementBlock(c)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	r := source.Combine(kw.Range, then.Range())

	if _, ok := ParseToken(c, lexer.TokenKwElse); !ok {
		return ast.NewStatementIf(r, condition, then, nil), true
	}

	if chained, ok := ParseOptional(c, parseStatementIf); ok {
		return ast.NewStatementIf(source.Combine(r, chained.Range()), condition, then, chained), true
	}
	elseBlock, ok := parseStatementBlock(c)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String(), lexer.TokenKwIf.String())
		return nil, false
	}
	return ast.NewStatementIf(source.Combine(r, elseBlock.Range()), condition, then, elseBlock), true
}

// parseStatementWhile parses "while cond { ... }".
func parseStatementWhile(c *Context) (ast.Statement, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwWhile)
	if !ok {
		return nil, false
	}
	condition, ok := ParseOptional(c, parseValue)
	if !ok {
		c.emitUnexpectedToken("value")
		return nil, false
	}
	body, ok := parseStatementBlock(c)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	return ast.NewStatementWhile(source.Combine(kw.Range, body.Range()),
		condition, body, false), true
}

// parseStatementDoWhile parses "do { ... } while cond;".
func parseStatementDoWhile(c *Context) (ast.Statement, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwDo)
	if !ok {
		return nil, false
	}
	body, ok := parseStatementBlock(c)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	if _, ok := ParseToken(c, lexer.TokenKwWhile); !ok {
		c.emitUnexpectedToken(lexer.TokenKwWhile.String())
		return nil, false
	}
	condition, ok := ParseOptional(c, parseValue)
	if !ok {
		c.emitUnexpectedToken("value")
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewStatementWhile(source.Combine(kw.Range, semicolon.Range),
		condition, body, true), true
}

// parseStatementContinue parses "continue;".
func parseStatementContinue(c *Context) (ast.Statement, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwContinue)
	if !ok {
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewStatementBasic(source.Combine(kw.Range, semicolon.Range),
		ast.StatementContinue), true
}

// parseStatementBreak parses "break;".
func parseStatementBreak(c *Context) (ast.Statement, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwBreak)
	if !ok {
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewStatementBasic(source.Combine(kw.Range, semicolon.Range),
		ast.StatementBreak), true
}

// parseStatementReturn parses "return;" and "return value;".
func parseStatementReturn(c *Context) (ast.Statement, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwReturn)
	if !ok {
		return nil, false
	}
	if semicolon, ok := ParseToken(c, lexer.TokenSemicolon); ok {
		return ast.NewStatementBasic(source.Combine(kw.Range, semicolon.Range),
			ast.StatementReturnVoid), true
	}
	value, ok := ParseOptional(c, parseValue)
	if !ok {
		c.emitUnexpectedToken("value", lexer.TokenSemicolon.String())
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewStatementValue(source.Combine(kw.Range, semicolon.Range),
		ast.StatementReturn, value), true
}

// parseStatementLet parses "let name: type = value;" in statement position.
func parseStatementLet(c *Context) (ast.Statement, bool) {
	declaration, ok := parseDeclarationVariable(c)
	if !ok {
		return nil, false
	}
	return ast.NewStatementDeclaration(declaration.Range(), declaration), true
}

// parseStatementExecute parses "value;".
func parseStatementExecute(c *Context) (ast.Statement, bool) {
	value, ok := parseValue(c)
	if !ok {
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewStatementValue(source.Combine(value.Range(), semicolon.Range),
		ast.StatementExecute, value), true
}

//
// Declarations
//

// parseDeclaration parses any declaration.
func parseDeclaration(c *Context) (ast.Declaration, bool) {
	return ParseAnyOf(c,
		parseDeclarationFunction,
		parseDeclarationVariable,
		parseDeclarationTypeAlias,
		parseDeclarationStructuredType,
		parseDeclarationNamespace,
	)
}

// parseDeclarationVariable parses "let [const] name: type [= value];".
func parseDeclarationVariable(c *Context) (ast.Declaration, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwLet)
	if !ok {
		return nil, false
	}
	_, isConst := ParseToken(c, lexer.TokenKwConst)
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSymbol.String())
		return nil, false
	}
	if _, ok := ParseToken(c, lexer.TokenColon); !ok {
		c.emitUnexpectedToken(lexer.TokenColon.String())
		return nil, false
	}
	declaredType, ok := ParseOptional(c, parseType)
	if !ok {
		c.emitUnexpectedToken("type")
		return nil, false
	}

	var initialValue ast.Value
	if _, ok := ParseToken(c, lexer.TokenAssign); ok {
		initialValue, ok = ParseOptional(c, parseValue)
		if !ok {
			c.emitUnexpectedToken("value")
			return nil, false
		}
	}

	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewDeclarationVariable(source.Combine(kw.Range, semicolon.Range),
		name.Text, declaredType, initialValue, isConst), true
}

// parseDeclarationFunctionArg parses "name: type" inside an argument list.
func parseDeclarationFunctionArg(c *Context) (*ast.DeclarationVariable, bool) {
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		return nil, false
	}
	if _, ok := ParseToken(c, lexer.TokenColon); !ok {
		c.emitUnexpectedToken(lexer.TokenColon.String())
		return nil, false
	}
	argType, ok := ParseOptional(c, parseType)
	if !ok {
		c.emitUnexpectedToken("type")
		return nil, false
	}
	return ast.NewDeclarationVariable(source.Combine(name.Range, argType.Range()),
		name.Text, argType, nil, false), true
}

// parseDeclarationFunction parses
// "func name(args) [-> type] { body }". An omitted return type means void.
func parseDeclarationFunction(c *Context) (ast.Declaration, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwFunc)
	if !ok {
		return nil, false
	}
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSymbol.String())
		return nil, false
	}
	args, ok := ParseRepeatedSeparatedBound(c, lexer.TokenLParen,
		parseDeclarationFunctionArg, lexer.TokenComma, lexer.TokenRParen)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLParen.String())
		return nil, false
	}

	var returnType ast.Type
	if _, ok := ParseToken(c, lexer.TokenRArrow); ok {
		returnType, ok = ParseOptional(c, parseType)
		if !ok {
			c.emitUnexpectedToken("type")
			return nil, false
		}
	} else {
		returnType = ast.NewTypeBasic(source.Range{}, ast.BasicVoid)
	}

	body, ok := parseStatementBlock(c)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	return ast.NewDeclarationFunction(source.Combine(kw.Range, body.Range()),
		name.Text, args, returnType, body), true
}

// parseDeclarationTypeAlias parses "type [explicit] name = type;".
func parseDeclarationTypeAlias(c *Context) (ast.Declaration, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwType)
	if !ok {
		return nil, false
	}
	_, isExplicit := ParseToken(c, lexer.TokenKwExplicit)
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSymbol.String())
		return nil, false
	}
	if _, ok := ParseToken(c, lexer.TokenAssign); !ok {
		c.emitUnexpectedToken(lexer.TokenAssign.String())
		return nil, false
	}
	aliased, ok := ParseOptional(c, parseType)
	if !ok {
		c.emitUnexpectedToken("type")
		return nil, false
	}
	semicolon, ok := ParseToken(c, lexer.TokenSemicolon)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSemicolon.String())
		return nil, false
	}
	return ast.NewDeclarationTypeAlias(source.Combine(kw.Range, semicolon.Range),
		name.Text, aliased, isExplicit), true
}

// parseDeclarationStructuredType parses
// "struct|interface name [inherits T, ...] { members }".
func parseDeclarationStructuredType(c *Context) (ast.Declaration, bool) {
	kind := ast.StructuredStruct
	kw, ok := ParseToken(c, lexer.TokenKwStruct)
	if !ok {
		kw, ok = ParseToken(c, lexer.TokenKwInterface)
		if !ok {
			return nil, false
		}
		kind = ast.StructuredInterface
	}
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSymbol.String())
		return nil, false
	}

	inherits := []ast.Type{}
	if _, ok := ParseToken(c, lexer.TokenKwInherits); ok {
		for {
			inherited, ok := ParseOptional(c, parseType)
			if !ok {
				c.emitUnexpectedToken("type")
				return nil, false
			}
			inherits = append(inherits, inherited)
			if _, ok := ParseToken(c, lexer.TokenComma); !ok {
				break
			}
		}
	}

	members, ok := ParseRepeatedBound(c, lexer.TokenLBrace, parseDeclaration, lexer.TokenRBrace)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	r := source.Combine(kw.Range, name.Range)
	for _, member := range members {
		r = source.Combine(r, member.Range())
	}
	return ast.NewDeclarationStructuredType(r, name.Text, kind, members, inherits), true
}

// parseDeclarationNamespace parses "namespace name { members }".
func parseDeclarationNamespace(c *Context) (ast.Declaration, bool) {
	kw, ok := ParseToken(c, lexer.TokenKwNamespace)
	if !ok {
		return nil, false
	}
	name, ok := ParseToken(c, lexer.TokenSymbol)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenSymbol.String())
		return nil, false
	}
	members, ok := ParseRepeatedBound(c, lexer.TokenLBrace, parseDeclaration, lexer.TokenRBrace)
	if !ok {
		c.emitUnexpectedToken(lexer.TokenLBrace.String())
		return nil, false
	}
	r := source.Combine(kw.Range, name.Range)
	for _, member := range members {
		r = source.Combine(r, member.Range())
	}
	return ast.NewDeclarationNamespace(r, name.Text, members), true
}
