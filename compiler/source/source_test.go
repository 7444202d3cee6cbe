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

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndexedStringCountsLines(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		lines []string
	}{
		{name: "empty", text: "", lines: []string{""}},
		{name: "one line no newline", text: "abc", lines: []string{"abc"}},
		{name: "trailing newline adds empty line", text: "a\nbb\n", lines: []string{"a", "bb", ""}},
		{name: "interior empty line", text: "a\n\nb", lines: []string{"a", "", "b"}},
		{name: "carriage returns are stripped", text: "a\r\nb", lines: []string{"a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			indexed := NewLineIndexedString(tc.text)
			require.Equal(t, len(tc.lines), indexed.LineCount())
			for i, want := range tc.lines {
				line, ok := indexed.TryGetLine(i + 1)
				require.True(t, ok, "line %d", i+1)
				assert.Equal(t, want, line)
			}
		})
	}
}

func TestTryGetLineOutOfRange(t *testing.T) {
	indexed := NewLineIndexedString("a\nb")
	_, ok := indexed.TryGetLine(0)
	assert.False(t, ok)
	_, ok = indexed.TryGetLine(3)
	assert.False(t, ok)
}

func TestLocationOrdering(t *testing.T) {
	src := New("a.frg", "abc\ndef")

	null := Location{}
	withSource := Location{Source: src}
	early := NewLocation(src, 1, 1, 0)
	late := NewLocation(src, 2, 1, 4)

	assert.True(t, null.Less(withSource), "sourceless locations come first")
	assert.False(t, withSource.Less(null))
	assert.True(t, withSource.Less(early), "offsetless locations come first")
	assert.True(t, early.Less(late))
	assert.False(t, late.Less(early))
	assert.False(t, early.Less(early))

	other := New("b.frg", "xyz")
	assert.False(t, early.Less(NewLocation(other, 1, 1, 0)), "different sources are unordered")
	assert.False(t, NewLocation(other, 1, 1, 0).Less(early))
}

func TestLocationString(t *testing.T) {
	src := New("main.frg", "abc")
	assert.Equal(t, "main.frg:1:2", NewLocation(src, 1, 2, 1).String())
	assert.Equal(t, "-", Location{}.String())
}

func TestCombineRanges(t *testing.T) {
	src := New("a.frg", "abcdef")
	first := NewRange(NewLocation(src, 1, 1, 0), NewLocation(src, 1, 3, 2))
	second := NewRange(NewLocation(src, 1, 4, 3), NewLocation(src, 1, 6, 5))

	combined := Combine(first, second)
	assert.Equal(t, 0, combined.Start.Offset)
	assert.Equal(t, 5, combined.End.Offset)

	// Combining in either order yields the same span.
	flipped := Combine(second, first)
	assert.Equal(t, combined, flipped)

	// Null ranges are ignored.
	assert.Equal(t, first, Combine(first, Range{}))
	assert.Equal(t, first, Combine(Range{}, first))
}

func TestGraphemeCount(t *testing.T) {
	assert.Equal(t, 3, GraphemeCount("abc"))
	// A combining mark joins its base character into one cluster.
	assert.Equal(t, 1, GraphemeCount("é"))
}
