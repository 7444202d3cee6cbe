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
	"sort"

	"forge/compiler/source"
)

// Context is an append-only store for messages emitted during compilation.
// An instance is passed around to the various parts of the compiler; it is
// the only stateful sink a pass mutates.
type Context struct {
	messages      []*Message
	errorCount    int
	warningCount  int
	maxLineNumber int
}

// NewContext creates an empty message context.
func NewContext() *Context {
	return &Context{}
}

// Emit constructs a message, stores it, updates the error and warning
// counters and the maximum referenced line number, and returns the message
// so that children can be chained onto it.
func (c *Context) Emit(r source.Range, severity *Severity, code string, text string) *Message {
	m := &Message{Range: r, Severity: severity, Code: code, Text: text}
	c.messages = append(c.messages, m)

	if severity.Value() >= SeverityError.Value() {
		c.errorCount++
	} else if severity.Value() >= SeverityWarning.Value() {
		c.warningCount++
	}

	if r.Start.Line > c.maxLineNumber {
		c.maxLineNumber = r.Start.Line
	}
	if r.End.Line > c.maxLineNumber {
		c.maxLineNumber = r.End.Line
	}

	return m
}

// Messages returns the messages emitted so far in emission order.
func (c *Context) Messages() []*Message {
	return c.messages
}

// MessagesSorted returns the messages sorted by descending severity value
// and then by ascending source-range start. The sort is stable, so messages
// that compare equal keep their emission order.
func (c *Context) MessagesSorted() []*Message {
	sorted := make([]*Message, len(c.messages))
	copy(sorted, c.messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Severity.Value() != sorted[j].Severity.Value() {
			return sorted[i].Severity.Value() > sorted[j].Severity.Value()
		}
		return sorted[i].Range.Start.Less(sorted[j].Range.Start)
	})
	return sorted
}

// ErrorCount returns the number of messages emitted with a severity of
// error or above.
func (c *Context) ErrorCount() int {
	return c.errorCount
}

// WarningCount returns the number of messages emitted with a severity in
// the warning range (at least warning, below error).
func (c *Context) WarningCount() int {
	return c.warningCount
}

// MaxLineNumber returns the maximum line number referenced by any emitted
// message, or 0 if no message references a line. The reporter uses it to
// compute line-number padding.
func (c *Context) MaxLineNumber() int {
	return c.maxLineNumber
}
