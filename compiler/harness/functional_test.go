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
	"testing"

	"github.com/stretchr/testify/assert"

	"forge/compiler/ast"
	"forge/compiler/irgen"
	"forge/compiler/syntax"
)

func TestIdentityFunctionBool(t *testing.T) {
	Run(t, Options{
		Source:        "func f(a: bool) -> bool { return a; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Args: []irgen.Const{irgen.Bool(true)}, Want: irgen.Bool(true)},
			{Function: "f", Args: []irgen.Const{irgen.Bool(false)}, Want: irgen.Bool(false)},
		},
	})
}

func TestUnreachableAfterReturn(t *testing.T) {
	Run(t, Options{
		Source:                 "func f() -> i32 { return 0; return 0; }",
		ExpectedState:          StateErrorsAfterPasses,
		ExpectedReportContains: []string{"ECF001", "statement is unreachable"},
	})
}

func TestMissingReturn(t *testing.T) {
	Run(t, Options{
		Source:                 "func f(a: i32) -> bool { if a == 0 { return true; } }",
		ExpectedState:          StateErrorsAfterPasses,
		ExpectedReportContains: []string{"ECF002", "function does not return in all cases"},
	})
}

func TestImplicitFloatWidening(t *testing.T) {
	Run(t, Options{
		Source:        "func f(a: f32) -> f64 { return a; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Args: []irgen.Const{irgen.F32(1.5)}, Want: irgen.F64(1.5)},
		},
	})
}

func TestImplicitFloatNarrowingIsRejected(t *testing.T) {
	Run(t, Options{
		Source:                 "func f(a: f64) -> f32 { return a; }",
		ExpectedState:          StateErrorsAfterPasses,
		ExpectedReportContains: []string{"ETY005", "use 'as' to cast between types"},
	})
}

func TestLoopWithBreak(t *testing.T) {
	Run(t, Options{
		Source: `func f() -> i32 {
  let i: i32 = 0;
  while i < 10 { if i == 5 { break; } i += 1; }
  return i;
}`,
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Want: irgen.I32(5)},
		},
	})
}

func TestDoWhileRunsBodyOnce(t *testing.T) {
	Run(t, Options{
		Source:        "func f() -> i32 { let x: i32 = 0; do { x += 1; } while x < 0; return x; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Want: irgen.I32(1)},
		},
	})
}

func TestContinueSkipsToTheNextIteration(t *testing.T) {
	// Sums the odd numbers below ten.
	Run(t, Options{
		Source: `func f() -> i32 {
  let sum: i32 = 0;
  let i: i32 = 0;
  while i < 10 {
    i += 1;
    if i % 2 == 0 { continue; }
    sum += i;
  }
  return sum;
}`,
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Want: irgen.I32(25)},
		},
	})
}

func TestExplicitCastAtRuntime(t *testing.T) {
	Run(t, Options{
		Source:        "func f(a: i32) -> f64 { return a as f64; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Args: []irgen.Const{irgen.I32(3)}, Want: irgen.F64(3)},
		},
	})
}

func TestImplicitWideningInArithmetic(t *testing.T) {
	Run(t, Options{
		Source:        "func f(a: i8, b: i32) -> i32 { return a + b; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Args: []irgen.Const{irgen.I8(-1), irgen.I32(43)}, Want: irgen.I32(42)},
		},
	})
}

func TestRecursion(t *testing.T) {
	Run(t, Options{
		Source: `func fact(n: i32) -> i32 {
  if n <= 1 { return 1; }
  return n * fact(n - 1);
}`,
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "fact", Args: []irgen.Const{irgen.I32(5)}, Want: irgen.I32(120)},
		},
	})
}

func TestCallBetweenFunctions(t *testing.T) {
	Run(t, Options{
		Source: `func twice(a: i32) -> i32 { return a * 2; }
func f(a: i32) -> i32 { return twice(a) + 1; }`,
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Args: []irgen.Const{irgen.I32(20)}, Want: irgen.I32(41)},
		},
	})
}

func TestUnaryOperatorsAtRuntime(t *testing.T) {
	Run(t, Options{
		Source: `func negate(a: i32) -> i32 { return -a; }
func invert(a: bool) -> bool { return !a; }`,
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "negate", Args: []irgen.Const{irgen.I32(7)}, Want: irgen.I32(-7)},
			{Function: "invert", Args: []irgen.Const{irgen.Bool(false)}, Want: irgen.Bool(true)},
		},
	})
}

func TestVoidFunction(t *testing.T) {
	Run(t, Options{
		Source:        "func f() { return; }",
		ExpectedState: StateSuccess,
		Calls: []Call{
			{Function: "f", Want: irgen.Const{}},
		},
	})
}

func TestUnrecoverableParseFailure(t *testing.T) {
	Run(t, Options{
		Source:        "func f( {",
		ExpectedState: StateUnrecoverableParsingFailure,
	})
}

func TestTreeDebugDumpExpectation(t *testing.T) {
	Run(t, Options{
		Source:        "func f() { return; }",
		ExpectedState: StateSuccess,
		ExpectedTreeDebug: "[TranslationUnit]\n" +
			"  declarations = \n" +
			"    [0] = [DeclarationFunction]\n" +
			"      name = \"f\"\n" +
			"      args = []\n" +
			"      return_type = [TypeBasic]\n" +
			"        basic_kind = void\n" +
			"        const = false\n" +
			"      body = [StatementBlock]\n" +
			"        statements = \n" +
			"          [0] = [StatementBasic]\n" +
			"            basic_kind = return\n",
	})
}

func TestResolutionInvariants(t *testing.T) {
	Run(t, Options{
		Source: `func helper(a: i32) -> i32 { return a + 1; }
func f(a: i32) -> i32 { let b: i32 = helper(a); return b; }`,
		ExpectedState: StateSuccess,
		OnTree: func(t *testing.T, unit *ast.TranslationUnit) {
			var walk func(n syntax.Node)
			walk = func(n syntax.Node) {
				switch node := n.(type) {
				case *ast.ValueSymbol:
					assert.NotNil(t, node.ReferencedDeclaration,
						"symbol %q must be resolved", node.Name)
				case *ast.TypeSymbol:
					assert.NotNil(t, node.ReferencedDeclaration,
						"type symbol %q must be resolved", node.Name)
				}
				if value, ok := n.(ast.Value); ok {
					assert.False(t, syntax.IsNilNode(value.ResolvedType()),
						"value %s must have a resolved type", n.NodeKind())
				}
				n.EachChild(walk)
			}
			walk(unit)
		},
	})
}

func TestValidationCases(t *testing.T) {
	RunCaseFile(t, "testdata/validation.yaml")
}
