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

// Package harness drives whole-compiler functional tests: source text in,
// tokens, tree, validation pass, diagnostics report, and (on success)
// lowering through the reference backend with interpreted calls standing in
// for a JIT.
package harness

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"forge/compiler/ast"
	"forge/compiler/codegen"
	"forge/compiler/irgen"
	"forge/compiler/lexer"
	"forge/compiler/message"
	"forge/compiler/parser"
	"forge/compiler/sema"
	"forge/compiler/source"
	"forge/compiler/syntax"
)

// State is the expected outcome of compiling a test source.
type State int

const (
	// StateSuccess expects zero errors after the validation pass.
	StateSuccess State = iota
	// StateErrorsAfterPasses expects the tree to parse but the validation
	// pass to emit at least one error.
	StateErrorsAfterPasses
	// StateUnrecoverableParsingFailure expects the parser to return a nil
	// tree.
	StateUnrecoverableParsingFailure
)

// Call describes one interpreted function call and its expected result.
type Call struct {
	// Function is the name of the function to call.
	Function string
	// Args are the call arguments.
	Args []irgen.Const
	// Want is the expected result.
	Want irgen.Const
}

// Options configures one functional test run. Every expectation set is
// asserted independently.
type Options struct {
	// Source is the Forge source text to compile.
	Source string
	// ExpectedState is the expected compilation outcome.
	ExpectedState State
	// ExpectedTreeDebug, when non-empty, is compared byte-for-byte against
	// the parsed tree's debug dump (before the validation pass runs).
	ExpectedTreeDebug string
	// ExpectedReport, when non-empty, is compared against the rendered
	// diagnostics report.
	ExpectedReport string
	// ExpectedReportContains lists substrings the rendered report must
	// contain (typically message codes).
	ExpectedReportContains []string
	// ExpectedIR, when non-empty, is compared against the reference
	// backend's module listing after lowering.
	ExpectedIR string
	// OnTree, when set, receives the tree after the validation pass.
	OnTree func(t *testing.T, unit *ast.TranslationUnit)
	// Calls are executed against the lowered module on success.
	Calls []Call
}

// testPointerBitWidth is the pointer width functional tests target.
const testPointerBitWidth = 64

// Run compiles the source and asserts every expectation in the options.
func Run(t *testing.T, options Options) {
	t.Helper()
	color.NoColor = true

	src := source.New("--", options.Source)
	messages := message.NewContext()

	tokens := lexer.New().Lex(messages, src)

	unit := parser.ParseTranslationUnit(parser.NewContext(messages, tokens))
	if unit == nil {
		require.Equal(t, StateUnrecoverableParsingFailure, options.ExpectedState,
			"parser returned a nil tree; report:\n%s", RenderReport(messages))
		return
	}
	require.NotEqual(t, StateUnrecoverableParsingFailure, options.ExpectedState,
		"expected an unrecoverable parsing failure, but parsing succeeded")

	if options.ExpectedTreeDebug != "" {
		requireEqualText(t, options.ExpectedTreeDebug, FormatTree(unit), "syntax tree debug dump")
	}

	backend := irgen.NewBackend(testPointerBitWidth)
	ctx := codegen.NewContext(backend)

	pass := sema.NewValidationPass(messages, ctx)
	replaced, _ := pass.Run(unit)
	unit = replaced.(*ast.TranslationUnit)

	report := RenderReport(messages)
	if options.ExpectedReport != "" {
		requireEqualText(t, options.ExpectedReport, report, "diagnostics report")
	}
	for _, substring := range options.ExpectedReportContains {
		require.Contains(t, report, substring)
	}

	if messages.ErrorCount() > 0 {
		require.Equal(t, StateErrorsAfterPasses, options.ExpectedState,
			"unexpected diagnostics:\n%s", report)
		return
	}
	require.Equal(t, StateSuccess, options.ExpectedState,
		"expected errors after passes, but the pass emitted none")

	if options.OnTree != nil {
		options.OnTree(t, unit)
	}

	if len(options.Calls) == 0 && options.ExpectedIR == "" {
		return
	}
	require.NoError(t, codegen.EmitTranslationUnit(ctx, unit))
	if options.ExpectedIR != "" {
		requireEqualText(t, options.ExpectedIR, backend.Dump(), "backend IR listing")
	}
	machine := irgen.NewMachine(backend)
	for _, call := range options.Calls {
		got, err := machine.Call(call.Function, call.Args...)
		require.NoError(t, err, "calling %s", call.Function)
		require.True(t, got.Equal(call.Want),
			"%s returned %s, want %s\nmodule:\n%s", call.Function, got, call.Want, backend.Dump())
	}
}

// RenderReport renders the message context's report to a string.
func RenderReport(messages *message.Context) string {
	var out strings.Builder
	message.Report(&out, messages)
	return out.String()
}

// FormatTree renders a node's debug dump with a trailing newline.
func FormatTree(n syntax.Node) string {
	var out strings.Builder
	formatter := syntax.NewDebugFormatter(&out)
	formatter.Node(n)
	out.WriteString("\n")
	return out.String()
}

// requireEqualText asserts two texts are equal, rendering a unified diff on
// mismatch.
func requireEqualText(t *testing.T, want string, got string, what string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	require.Fail(t, what+" mismatch", "%s\n%s", diff, cmp.Diff(want, got))
}
