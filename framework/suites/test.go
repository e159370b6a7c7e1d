package suites

import (
	"github.com/launchdarkly/go-test-suites/framework"
)

// Test is the capability contract every runnable test satisfies, whether it is a single
// case, a suite, or a decorator around either.
//
// Run reports outcomes into the result; it never returns them. Go interface dispatch
// already routes a call through the outermost implementation, so there is no separate
// call operation: invoking Run on a decorated test runs the decorator.
type Test interface {
	ID() string
	CountTestCases() int
	Run(result Result)
}

// Composite is a Test that contains other tests, such as a Suite. Tests returns a
// snapshot of the children in execution order; SetTests replaces them.
//
// Any type embedding *Suite is a Composite, so Decorate preserves its concrete type.
type Composite interface {
	Test
	Tests() []Test
	SetTests(tests []Test)
}

// Visitor is called with each test found by a visit.
//
// Deprecated: use IterateTests.
type Visitor func(Test)

// Visitable is implemented by tests that still support the visitor protocol.
//
// Deprecated: use IterateTests.
type Visitable interface {
	Visit(visitor Visitor)
}

// Result collects the outcomes of test runs. The test passed to each method is the test
// the outcome is attributed to, which for decorated tests is the decorator.
type Result interface {
	StartTest(t Test)
	StopTest(t Test)
	AddSuccess(t Test)
	AddFailure(t Test, err error)
	AddError(t Test, err error)
	AddSkip(t Test, reason string)
	ShouldStop() bool
}

// DebugOutputResult is implemented by results that can store the debug output a native
// test case captured while running.
type DebugOutputResult interface {
	AddDebugOutput(t Test, output framework.CapturedOutput)
}

// Run runs the test and returns the same result it was given.
func Run(test Test, result Result) Result {
	test.Run(result)
	return result
}
