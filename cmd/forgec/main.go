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

// Command forgec is the Forge compiler driver: it lexes, parses, and
// validates Forge source files, reports diagnostics, and lowers valid
// programs to an IR listing through the reference backend.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"forge/compiler/ast"
	"forge/compiler/codegen"
	"forge/compiler/irgen"
	"forge/compiler/lexer"
	"forge/compiler/message"
	"forge/compiler/parser"
	"forge/compiler/sema"
	"forge/compiler/source"
)

// Exit codes, mirroring the pass/fail/internal-failure convention.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitFailure     = 2
)

// pointerBits is the pointer width of the default target.
var pointerBits int

func main() {
	root := &cobra.Command{
		Use:           "forgec",
		Short:         "The Forge compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&pointerBits, "pointer-bits", 64,
		"pointer width of the compilation target in bits")

	root.AddCommand(&cobra.Command{
		Use:   "check <file>...",
		Short: "Parse and validate source files without generating code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(args, false)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "build <file>...",
		Short: "Compile source files to IR listings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(args, true)
		},
	})

	if err := root.Execute(); err != nil {
		if err == errDiagnostics {
			os.Exit(exitDiagnostics)
		}
		fmt.Fprintln(os.Stderr, "forgec:", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitOK)
}

// errDiagnostics marks runs that failed with user-facing diagnostics rather
// than internal errors.
var errDiagnostics = fmt.Errorf("diagnostics reported")

// runFiles compiles each file independently and combines failures.
func runFiles(paths []string, emit bool) error {
	var combined error
	sawDiagnostics := false
	for _, path := range paths {
		err := runFile(path, emit)
		if err == errDiagnostics {
			sawDiagnostics = true
			continue
		}
		combined = multierr.Append(combined, err)
	}
	if combined != nil {
		return combined
	}
	if sawDiagnostics {
		return errDiagnostics
	}
	return nil
}

// runFile compiles one file: lex, parse, validate, report, and optionally
// lower and write the IR listing next to the source.
func runFile(path string, emit bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	src := source.New(path, string(content))
	messages := message.NewContext()

	tokens := lexer.New().Lex(messages, src)
	unit := parser.ParseTranslationUnit(parser.NewContext(messages, tokens))

	backend := irgen.NewBackend(pointerBits)
	ctx := codegen.NewContext(backend)

	if unit != nil {
		pass := sema.NewValidationPass(messages, ctx)
		replaced, _ := pass.Run(unit)
		unit = replaced.(*ast.TranslationUnit)
	}

	message.Report(os.Stderr, messages)
	if unit == nil || messages.ErrorCount() > 0 {
		return errDiagnostics
	}

	if !emit {
		return nil
	}
	if err := codegen.EmitTranslationUnit(ctx, unit); err != nil {
		return err
	}
	outputPath := strings.TrimSuffix(path, ".frg") + ".ir"
	return backend.WriteObjectFile(outputPath)
}
