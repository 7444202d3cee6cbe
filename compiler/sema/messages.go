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

// Package sema implements the Forge semantic analyses composed into the
// validation pass: well-formedness checking, symbol resolution wiring, type
// resolution, type validation, and control-flow validation, together with
// the message emitters that give every diagnostic a fixed code.
package sema

import (
	"fmt"

	"forge/compiler/ast"
	"forge/compiler/message"
	"forge/compiler/source"
)

// Message codes for internal, scope, type, and control-flow errors.
const (
	// CodeInternalNotWellFormed marks a malformed tree reaching the
	// validation pass; it always halts traversal.
	CodeInternalNotWellFormed = "EIN001"
	// CodeInternalNoScope marks a symbol with no surrounding scope.
	CodeInternalNoScope = "EIN002"
	// CodeScopeUndeclared is the use of an undeclared symbol.
	CodeScopeUndeclared = "ESC001"
	// CodeScopeRedeclared is the redeclaration of an existing symbol.
	CodeScopeRedeclared = "ESC002"

	// CodeTypeNoVoidPointers rejects pointer-to-void types.
	CodeTypeNoVoidPointers = "ETY001"
	// CodeTypeNoFunctionPointers rejects pointer-to-function types.
	CodeTypeNoFunctionPointers = "ETY002"
	// CodeTypeNoVoidArguments rejects void function arguments.
	CodeTypeNoVoidArguments = "ETY003"
	// CodeTypeUnexpectedType marks a value of an unexpected type category.
	CodeTypeUnexpectedType = "ETY004"
	// CodeTypeImplicitCast marks a cast that would need an explicit "as".
	CodeTypeImplicitCast = "ETY005"
	// CodeTypeIllegalCast marks a cast that is not possible at all.
	CodeTypeIllegalCast = "ETY006"
	// CodeTypeArgCount marks a call with the wrong number of arguments.
	CodeTypeArgCount = "ETY007"
	// CodeTypeNotCallable marks a call on a non-function value.
	CodeTypeNotCallable = "ETY008"
	// CodeTypeReturnValueRequired marks a bare return in a non-void
	// function.
	CodeTypeReturnValueRequired = "ETY009"
	// CodeTypeReturnValueForbidden marks a valued return in a void function.
	CodeTypeReturnValueForbidden = "ETY010"
	// CodeTypeNoMemberWithName marks a member access with no matching
	// member. It is defined for completeness; member resolution is not yet
	// implemented, so no code path reaches it.
	CodeTypeNoMemberWithName = "ETY011"
	// CodeTypeUnresolvable marks a type that could not be resolved.
	CodeTypeUnresolvable = "ETY012"
	// CodeTypeNamespaceAsValue marks a namespace used as a value.
	CodeTypeNamespaceAsValue = "ETY013"
	// CodeTypeNamespaceInStructuredType marks a namespace declared inside a
	// structured type.
	CodeTypeNamespaceInStructuredType = "ETY014"

	// CodeControlFlowUnreachable marks an unreachable statement.
	CodeControlFlowUnreachable = "ECF001"
	// CodeControlFlowDoesNotAlwaysReturn marks a non-void function that can
	// fall off the end of its body.
	CodeControlFlowDoesNotAlwaysReturn = "ECF002"
)

// typeNoteThreshold is the minimum length of a type string for it to be
// reported as a separate note instead of inline in the error text.
const typeNoteThreshold = 15

// emitInternalNotWellFormed reports a malformed node.
func emitInternalNotWellFormed(messages *message.Context, r source.Range, text string) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeInternalNotWellFormed, text)
}

// emitTypeErrorNoVoidPointers reports a pointer-to-void type.
func emitTypeErrorNoVoidPointers(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNoVoidPointers,
		"void pointers are not allowed").
		Child(source.Range{}, message.SeveritySuggestion, "use 'usize' instead")
}

// emitTypeErrorNoFunctionPointers reports a pointer-to-function type.
func emitTypeErrorNoFunctionPointers(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNoFunctionPointers,
		"function pointers are not allowed").
		Child(source.Range{}, message.SeveritySuggestion,
			"function types do not need to be pointers, just remove the '*'")
}

// emitTypeErrorNoVoidArguments reports a void function argument.
func emitTypeErrorNoVoidArguments(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNoVoidArguments,
		"function arguments cannot be of type 'void'")
}

// emitTypeErrorUnexpectedType reports a value whose type is not in the
// expected category.
func emitTypeErrorUnexpectedType(messages *message.Context, r source.Range, expected string) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeUnexpectedType, "unexpected type").
		Child(source.Range{}, message.SeverityNote, "expected "+expected)
}

// emitTypeErrorUnableToImplicitlyCast reports a cast that the casting-mode
// table only allows explicitly. Short type strings are inlined in the
// message; long ones become child notes.
func emitTypeErrorUnableToImplicitlyCast(messages *message.Context, r source.Range, from ast.Type, to ast.Type) *message.Message {
	fromString := ast.FormatType(from)
	toString := ast.FormatType(to)

	if len(fromString) < typeNoteThreshold && len(toString) < typeNoteThreshold {
		return messages.Emit(r, message.SeverityError, CodeTypeImplicitCast,
			fmt.Sprintf("unable to implicitly cast from type %s to %s", fromString, toString)).
			Child(source.Range{}, message.SeveritySuggestion, "use 'as' to cast between types")
	}
	return messages.Emit(r, message.SeverityError, CodeTypeImplicitCast,
		"unable to implicitly cast").
		Child(source.Range{}, message.SeverityNote, "from type: "+fromString).
		Child(source.Range{}, message.SeverityNote, "to type: "+toString).
		Child(source.Range{}, message.SeveritySuggestion, "use 'as' to cast between types")
}

// emitTypeErrorIllegalCast reports a cast that cannot be performed at all.
func emitTypeErrorIllegalCast(messages *message.Context, r source.Range, from ast.Type, to ast.Type) *message.Message {
	fromString := ast.FormatType(from)
	toString := ast.FormatType(to)

	if len(fromString) < typeNoteThreshold && len(toString) < typeNoteThreshold {
		return messages.Emit(r, message.SeverityError, CodeTypeIllegalCast,
			fmt.Sprintf("unable to cast from type %s to %s", fromString, toString))
	}
	return messages.Emit(r, message.SeverityError, CodeTypeIllegalCast, "unable to cast").
		Child(source.Range{}, message.SeverityNote, "from type: "+fromString).
		Child(source.Range{}, message.SeverityNote, "to type: "+toString)
}

// emitTypeErrorIncorrectNumberOfArgs reports an argument count mismatch.
func emitTypeErrorIncorrectNumberOfArgs(messages *message.Context, r source.Range, expected int, actual int) *message.Message {
	expectedPlural := "s"
	if expected == 1 {
		expectedPlural = ""
	}
	actualVerb := "were"
	if actual == 1 {
		actualVerb = "was"
	}
	return messages.Emit(r, message.SeverityError, CodeTypeArgCount,
		fmt.Sprintf("expected %d argument%s, but %d %s provided",
			expected, expectedPlural, actual, actualVerb))
}

// emitTypeErrorCannotCallNonFunction reports a call on a non-function value.
func emitTypeErrorCannotCallNonFunction(messages *message.Context, r source.Range, calleeType ast.Type) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNotCallable,
		"value is not a function and cannot be called").
		Child(source.Range{}, message.SeverityNote, "value type: "+ast.FormatType(calleeType))
}

// emitTypeErrorNonVoidFunctionMustReturnValue reports a bare return inside a
// non-void function.
func emitTypeErrorNonVoidFunctionMustReturnValue(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeReturnValueRequired,
		"non-void function must return a value")
}

// emitTypeErrorVoidFunctionCannotReturnValue reports a valued return inside
// a void function.
func emitTypeErrorVoidFunctionCannotReturnValue(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeReturnValueForbidden,
		"void function cannot return a value")
}

// emitTypeErrorUnableToResolve reports a type that could not be resolved.
func emitTypeErrorUnableToResolve(messages *message.Context, r source.Range, reason string) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeUnresolvable,
		"unable to resolve type - "+reason)
}

// emitTypeErrorNamespaceUsedAsValue reports a namespace in value position.
func emitTypeErrorNamespaceUsedAsValue(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNamespaceAsValue,
		"namespace cannot be used as a value")
}

// emitTypeErrorNamespaceWithinStructuredType reports a namespace declared
// inside a structured type body.
func emitTypeErrorNamespaceWithinStructuredType(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeTypeNamespaceInStructuredType,
		"namespace cannot be declared within a structured type")
}

// emitControlFlowErrorUnreachableStatement reports an unreachable statement.
func emitControlFlowErrorUnreachableStatement(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeControlFlowUnreachable,
		"statement is unreachable")
}

// emitControlFlowErrorFunctionDoesNotAlwaysReturn reports a function whose
// control flow can fall off the end without returning.
func emitControlFlowErrorFunctionDoesNotAlwaysReturn(messages *message.Context, r source.Range) *message.Message {
	return messages.Emit(r, message.SeverityError, CodeControlFlowDoesNotAlwaysReturn,
		"function does not return in all cases")
}
