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

package syntax

import (
	"fmt"
	"io"
	"strings"
)

// DebugFormatter dumps syntax trees in a reproducible, indented format for
// debugging and for byte-stable comparisons in tests. The output looks like:
//
//	[DeclarationFunction]
//	  name = "f"
//	  args =
//	    [0] = [DeclarationVariable]
//	      ...
//	  return_type = [TypeBasic]
//	    basic_kind = bool
//	    const = false
type DebugFormatter struct {
	w      io.Writer
	indent int
}

// NewDebugFormatter creates a formatter writing to w.
func NewDebugFormatter(w io.Writer) *DebugFormatter {
	return &DebugFormatter{w: w}
}

// Node formats a node (or "null") at the current position. This is the entry
// point for formatting a whole tree.
func (f *DebugFormatter) Node(n Node) {
	if IsNilNode(n) {
		fmt.Fprint(f.w, "null")
		return
	}
	fmt.Fprintf(f.w, "[%s]", n.NodeKind())
	f.indent++
	n.FormatDebug(f)
	f.indent--
}

// Field starts a new field line: a newline, the current indentation, and
// "name = ". The caller then writes the field value.
func (f *DebugFormatter) Field(name string) {
	fmt.Fprintf(f.w, "\n%s%s = ", strings.Repeat("  ", f.indent), name)
}

// Printf writes formatted text at the current position.
func (f *DebugFormatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.w, format, args...)
}

// DebugFieldString emits a quoted string field.
func DebugFieldString(f *DebugFormatter, name string, value string) {
	f.Field(name)
	f.Printf("%q", value)
}

// DebugFieldValue emits a scalar field using its default formatting.
func DebugFieldValue(f *DebugFormatter, name string, value any) {
	f.Field(name)
	f.Printf("%v", value)
}

// DebugFieldNode emits a child-node field, printing "null" for nil children.
func DebugFieldNode[T Node](f *DebugFormatter, name string, child T) {
	f.Field(name)
	f.Node(child)
}

// DebugFieldNodes emits a field holding a sequence of child nodes, one
// "[i] = ..." line per element.
func DebugFieldNodes[T Node](f *DebugFormatter, name string, children []T) {
	f.Field(name)
	if len(children) == 0 {
		f.Printf("[]")
		return
	}
	f.indent++
	for i, child := range children {
		f.Field(fmt.Sprintf("[%d]", i))
		f.Node(child)
	}
	f.indent--
}
