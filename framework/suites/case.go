package suites

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/launchdarkly/go-test-suites/framework"
)

// TestCase is a native test: a named action that receives a *Context, similar to a Go
// test function receiving *testing.T.
type TestCase struct {
	id     string
	action func(*Context)
}

func NewTestCase(id string, action func(*Context)) *TestCase {
	return &TestCase{id: id, action: action}
}

func (tc *TestCase) ID() string { return tc.id }

func (tc *TestCase) CountTestCases() int { return 1 }

func (tc *TestCase) Run(result Result) {
	result.StartTest(tc)
	c := &Context{test: tc}
	c.run(tc.action)
	if d, ok := result.(DebugOutputResult); ok {
		if output := c.debugLogger.Output(); len(output) > 0 {
			d.AddDebugOutput(tc, output)
		}
	}
	switch {
	case c.skipped:
		result.AddSkip(tc, c.skipReason)
	case c.failed:
		for _, f := range c.failures {
			result.AddFailure(tc, f)
		}
		if c.panicErr != nil {
			result.AddError(tc, c.panicErr)
		}
	default:
		result.AddSuccess(tc)
	}
	result.StopTest(tc)
}

// Visit calls the visitor with the test case.
//
// Deprecated: use IterateTests.
func (tc *TestCase) Visit(visitor Visitor) {
	warnDeprecatedVisitor()
	visitor(tc)
}

// Context is passed to a TestCase action. It implements require.TestingT, so testify
// assertions can be used inside test cases.
type Context struct {
	test        *TestCase
	debugLogger framework.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	failures    []error
	panicErr    error
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			if _, ok := r.(*Context); ok {
				if len(c.failures) == 0 {
					c.failures = append(c.failures, errors.New("test failed with no failure message"))
				}
			} else {
				c.panicErr = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
		}
	}()

	action(c)
}

func (c *Context) ID() string {
	return c.test.id
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.failures = append(c.failures, fmt.Errorf(format, args...))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() framework.Logger {
	return &c.debugLogger
}
