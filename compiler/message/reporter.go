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
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"forge/compiler/source"
)

// sampleLine is one quoted source line together with its line number.
type sampleLine struct {
	number int
	text   string
}

// sampleLines collects the source lines in [first, last] and trims the
// leading whitespace shared by all of them for readability. The second
// return value is the number of trimmed columns, which the caret layout has
// to compensate for.
func sampleLines(content *source.LineIndexedString, first int, last int) ([]sampleLine, int) {
	var lines []sampleLine
	minIndent := -1
	for number := first; number <= last; number++ {
		text, ok := content.TryGetLine(number)
		if !ok {
			return nil, 0
		}
		indent := 0
		for indent < len(text) && (text[indent] == ' ' || text[indent] == '\t') {
			indent++
		}
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
		lines = append(lines, sampleLine{number: number, text: text})
	}
	if minIndent < 0 {
		minIndent = 0
	}
	for i := range lines {
		lines[i].text = lines[i].text[minIndent:]
	}
	return lines, minIndent
}

// Report prints every message in a context to w, sorted by severity and
// location, each with its source sample and children, followed by a summary
// line counting errors and warnings. The output is deterministic when color
// is disabled.
func Report(w io.Writer, ctx *Context) {
	digits := countDigits(ctx.MaxLineNumber())
	for _, m := range ctx.MessagesSorted() {
		printMessage(w, m, digits, 0)
	}
	printSummary(w, ctx)
}

// printMessage prints a single message, its source sample, and its children
// recursively. Children are indented one step further than their parent.
func printMessage(w io.Writer, m *Message, lineNumberDigits int, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprint(w, indent)
	if m.Range.IsValid() {
		fmt.Fprintf(w, "%s - ", m.Range.Start)
	}
	header := m.Severity.Name()
	if m.Code != "" {
		header += " " + m.Code
	}
	fmt.Fprintf(w, "%s: %s\n", m.Severity.Sprint(header), m.Text)

	printSample(w, m, lineNumberDigits, indent)

	for _, child := range m.Children {
		printMessage(w, child, lineNumberDigits, depth+1)
	}
}

// printSample quotes the source lines spanned by the message's range and
// underlines the columns inside the range with carets. Tabs are expanded to
// two visual columns.
func printSample(w io.Writer, m *Message, lineNumberDigits int, indent string) {
	if !m.Range.IsValid() || m.Range.Start.Line == 0 {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w)

	start := m.Range.Start
	end := m.Range.End
	startLine := start.Line
	endLine := startLine
	if end.Line > 0 {
		endLine = end.Line
	}

	lines, trimmed := sampleLines(start.Source.Content(), startLine, endLine)
	for _, line := range lines {
		// The first and last lines restrict the caret span to the columns
		// inside the range; lines in between are underlined entirely.
		lineLen := source.GraphemeCount(line.text)
		startColumn := 0
		if line.number == startLine && start.Column > 0 {
			startColumn = start.Column - 1 - trimmed
		}
		endColumn := lineLen
		if line.number == endLine && end.Column > 0 {
			endColumn = end.Column - 1 - trimmed
		}
		if startColumn >= endColumn {
			endColumn = startColumn + 1
		}

		fmt.Fprintf(w, "%s%*d  ", indent, lineNumberDigits, line.number)

		var carets strings.Builder
		column := 0
		remaining := line.text
		state := -1
		for len(remaining) > 0 {
			var cluster string
			cluster, remaining, _, state = uniseg.StepString(remaining, state)
			visual := cluster
			if cluster == "\t" {
				visual = "  "
			}
			fmt.Fprint(w, visual)
			mark := " "
			if column >= startColumn && column < endColumn {
				mark = "^"
			}
			carets.WriteString(strings.Repeat(mark, len(visual)-len(cluster)+1))
			column++
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "%s%s  %s\n", indent, strings.Repeat(" ", lineNumberDigits),
			m.Severity.Sprint(strings.TrimRight(carets.String(), " ")))
	}

	fmt.Fprintln(w)
}

// printSummary prints the final "N errors, M warnings" line, omitting either
// half when its count is zero.
func printSummary(w io.Writer, ctx *Context) {
	var parts []string
	if ctx.ErrorCount() > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", ctx.ErrorCount(),
			pluralize("error", ctx.ErrorCount())))
	}
	if ctx.WarningCount() > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", ctx.WarningCount(),
			pluralize("warning", ctx.WarningCount())))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, strings.Join(parts, ", "))
	}
}

// pluralize naively pluralizes a word by count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// countDigits returns the number of decimal digits needed to print n.
func countDigits(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
