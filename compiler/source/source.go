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

// Package source implements the source model for the compiler: named source
// buffers with a precomputed line index, and the locations and ranges that
// diagnostics and syntax-tree nodes use to point back into those buffers.
//
// One column corresponds to one grapheme cluster, not one code point. Byte
// offsets always index into the original UTF-8 buffer.
package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// LineIndexedString is an immutable text buffer with precomputed line-start
// offsets for constant-time line lookup.
type LineIndexedString struct {
	// text is the full content of the buffer.
	text string
	// lineOffsets holds the byte offset of the start of each line. The first
	// entry is always 0 and a new entry is appended after every newline, so a
	// buffer with a trailing newline indexes one additional empty line.
	lineOffsets []int
}

// NewLineIndexedString creates a line-indexed buffer over text, computing the
// line index once up front.
func NewLineIndexedString(text string) *LineIndexedString {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &LineIndexedString{text: text, lineOffsets: offsets}
}

// Text returns the full content of the buffer.
func (s *LineIndexedString) Text() string {
	return s.text
}

// LineCount returns the number of lines in the buffer. A trailing newline
// yields an additional empty line, matching the behavior of splitting on
// newlines.
func (s *LineIndexedString) LineCount() int {
	return len(s.lineOffsets)
}

// TryGetLine returns line n (1-based) without its terminating newline. The
// second return value is false if n is out of range.
func (s *LineIndexedString) TryGetLine(n int) (string, bool) {
	if n < 1 || n > len(s.lineOffsets) {
		return "", false
	}
	start := s.lineOffsets[n-1]
	end := len(s.text)
	if n < len(s.lineOffsets) {
		// Exclude the newline that starts the next line.
		end = s.lineOffsets[n] - 1
	}
	line := s.text[start:end]
	// Windows-style line endings leave a carriage return behind.
	return strings.TrimSuffix(line, "\r"), true
}

// Source is a named, immutable source buffer.
type Source struct {
	path    string
	content *LineIndexedString
}

// New creates a source with the given path (used only for display) and text.
func New(path string, text string) *Source {
	return &Source{path: path, content: NewLineIndexedString(text)}
}

// Path returns the display path of the source.
func (s *Source) Path() string {
	return s.path
}

// Content returns the line-indexed content of the source.
func (s *Source) Content() *LineIndexedString {
	return s.content
}

// GraphemeCount returns the number of grapheme clusters in text. It is the
// unit in which columns are counted throughout the compiler.
func GraphemeCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
