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

package harness

import (
	"fmt"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is one YAML-described functional test case.
type Case struct {
	// Name is the subtest name.
	Name string `yaml:"name"`
	// Source is the Forge source text.
	Source string `yaml:"source"`
	// State is the expected outcome: "success", "errors", or
	// "parse-failure".
	State string `yaml:"state"`
	// ReportContains lists substrings the diagnostics report must contain.
	ReportContains []string `yaml:"report_contains"`
}

// LoadCases reads a YAML case file.
func LoadCases(path string) ([]Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file %q: %w", path, err)
	}
	var cases []Case
	if err := yaml.Unmarshal(content, &cases); err != nil {
		return nil, fmt.Errorf("parsing case file %q: %w", path, err)
	}
	return cases, nil
}

// stateFromName maps the YAML state names to States.
func stateFromName(name string) (State, error) {
	switch name {
	case "success":
		return StateSuccess, nil
	case "errors":
		return StateErrorsAfterPasses, nil
	case "parse-failure":
		return StateUnrecoverableParsingFailure, nil
	}
	return StateSuccess, fmt.Errorf("unknown expected state %q", name)
}

// RunCaseFile runs every case in a YAML file as a subtest.
func RunCaseFile(t *testing.T, path string) {
	cases, err := LoadCases(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			state, err := stateFromName(c.State)
			if err != nil {
				t.Fatal(err)
			}
			Run(t, Options{
				Source:                 c.Source,
				ExpectedState:          state,
				ExpectedReportContains: c.ReportContains,
			})
		})
	}
}
