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

package message

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/compiler/source"
)

func TestSeverityOrdering(t *testing.T) {
	ordered := []*Severity{SeveritySuggestion, SeverityNote, SeverityWarning, SeverityError, SeverityFatalError}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Value(), ordered[i].Value(),
			"%s must be below %s", ordered[i-1].Name(), ordered[i].Name())
	}
}

func TestEmitCounts(t *testing.T) {
	ctx := NewContext()
	ctx.Emit(source.Range{}, SeverityNote, "", "a note")
	ctx.Emit(source.Range{}, SeverityWarning, "", "a warning")
	ctx.Emit(source.Range{}, SeverityError, "E1", "an error")
	ctx.Emit(source.Range{}, SeverityFatalError, "E2", "a fatal error")

	assert.Equal(t, 2, ctx.ErrorCount(), "error and fatal error both count")
	assert.Equal(t, 1, ctx.WarningCount())
	assert.Len(t, ctx.Messages(), 4)
}

func TestChildReturnsChildForChaining(t *testing.T) {
	ctx := NewContext()
	parent := ctx.Emit(source.Range{}, SeverityError, "E1", "parent")
	child := parent.Child(source.Range{}, SeverityNote, "child")
	grandchild := child.Child(source.Range{}, SeveritySuggestion, "grandchild")

	require.Len(t, parent.Children, 1)
	require.Len(t, child.Children, 1)
	assert.Equal(t, "child", parent.Children[0].Text)
	assert.Equal(t, "grandchild", grandchild.Text)
}

func TestMessagesSorted(t *testing.T) {
	src := source.New("a.frg", "one\ntwo\nthree\n")
	at := func(line int) source.Range {
		return source.NewRange(source.NewLocation(src, line, 1, (line-1)*4), source.Location{})
	}

	ctx := NewContext()
	ctx.Emit(at(3), SeverityWarning, "", "warning on line 3")
	ctx.Emit(at(2), SeverityError, "", "error on line 2")
	ctx.Emit(at(1), SeverityWarning, "", "warning on line 1")
	ctx.Emit(at(1), SeverityError, "", "error on line 1")

	sorted := ctx.MessagesSorted()
	texts := make([]string, len(sorted))
	for i, m := range sorted {
		texts[i] = m.Text
	}
	assert.Equal(t, []string{
		"error on line 1",
		"error on line 2",
		"warning on line 1",
		"warning on line 3",
	}, texts)

	// The original emission order is untouched.
	assert.Equal(t, "warning on line 3", ctx.Messages()[0].Text)
	assert.Equal(t, 3, ctx.MaxLineNumber())
}

func TestMessagesSortedIsStable(t *testing.T) {
	ctx := NewContext()
	ctx.Emit(source.Range{}, SeverityError, "", "first")
	ctx.Emit(source.Range{}, SeverityError, "", "second")

	sorted := ctx.MessagesSorted()
	assert.Equal(t, "first", sorted[0].Text)
	assert.Equal(t, "second", sorted[1].Text)
}

func TestReport(t *testing.T) {
	color.NoColor = true

	src := source.New("main.frg", "let x = 1;\n")
	ctx := NewContext()
	ctx.Emit(source.NewRange(
		source.NewLocation(src, 1, 5, 4),
		source.NewLocation(src, 1, 6, 5),
	), SeverityError, "EXX001", "test message")

	var out strings.Builder
	Report(&out, ctx)

	want := "main.frg:1:5 - error EXX001: test message\n" +
		"\n" +
		"1  let x = 1;\n" +
		"       ^\n" +
		"\n" +
		"1 error\n"
	assert.Equal(t, want, out.String())
}

func TestReportSummaryOmitsZeroHalves(t *testing.T) {
	color.NoColor = true

	ctx := NewContext()
	ctx.Emit(source.Range{}, SeverityWarning, "", "only a warning")

	var out strings.Builder
	Report(&out, ctx)
	assert.Contains(t, out.String(), "1 warning\n")
	assert.NotContains(t, out.String(), "error")
}

func TestReportChildIndentation(t *testing.T) {
	color.NoColor = true

	ctx := NewContext()
	ctx.Emit(source.Range{}, SeverityError, "E1", "parent").
		Child(source.Range{}, SeveritySuggestion, "try something else")

	var out strings.Builder
	Report(&out, ctx)
	assert.Contains(t, out.String(), "\n  suggestion: try something else\n")
}
