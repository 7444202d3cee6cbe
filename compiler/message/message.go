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

import "forge/compiler/source"

// Message is a single structured diagnostic. Messages form a shallow tree:
// notes and suggestions attached to a diagnostic are stored as children.
type Message struct {
	// Range is the source range the message points at; may be the null range
	// for messages that do not reference source (e.g. suggestions).
	Range source.Range
	// Severity is the severity level of the message.
	Severity *Severity
	// Code is an optional short machine-readable code (e.g. "ETY005").
	Code string
	// Text is the human-readable message text.
	Text string
	// Children are nested notes and suggestions.
	Children []*Message
}

// Child appends a nested message and returns the child, so that further
// chained calls nest under the message they follow.
func (m *Message) Child(r source.Range, severity *Severity, text string) *Message {
	child := &Message{Range: r, Severity: severity, Text: text}
	m.Children = append(m.Children, child)
	return child
}
