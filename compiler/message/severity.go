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

// Package message implements the diagnostic system: severities, structured
// messages with nested notes and suggestions, the append-only message
// context, and the source-quoting reporter.
package message

import "github.com/fatih/color"

// Severity is a severity level for a message. Severities are compared by
// pointer identity, never by name; their relative ordering is given by Value.
type Severity struct {
	value uint32
	name  string
	color *color.Color
}

// Value returns the numeric value of the severity. Higher values are more
// severe.
func (s *Severity) Value() uint32 {
	return s.value
}

// Name returns the display name of the severity.
func (s *Severity) Name() string {
	return s.name
}

// Sprint formats text in the severity's color. Coloring is a no-op when
// color output is disabled globally.
func (s *Severity) Sprint(text string) string {
	return s.color.Sprint(text)
}

// The fixed severity levels, ordered by value:
// suggestion < note < warning < error < fatal error.
var (
	// SeveritySuggestion is for suggestions to the user.
	SeveritySuggestion = &Severity{value: 0, name: "suggestion", color: color.New(color.FgCyan)}
	// SeverityNote is for messages with additional info to the user.
	SeverityNote = &Severity{value: 1, name: "note", color: color.New(color.FgBlue)}
	// SeverityWarning is for warnings to the user.
	SeverityWarning = &Severity{value: 2, name: "warning", color: color.New(color.FgYellow)}
	// SeverityError is for errors.
	SeverityError = &Severity{value: 3, name: "error", color: color.New(color.FgRed)}
	// SeverityFatalError is for fatal errors which halt compilation.
	SeverityFatalError = &Severity{value: 4, name: "fatal error", color: color.New(color.FgHiRed)}
)
