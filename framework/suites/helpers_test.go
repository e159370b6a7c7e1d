package suites

import (
	"testing"

	"github.com/launchdarkly/go-test-suites/framework"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// trackedLeaf returns a passing test case that appends its ID to calls when it runs.
func trackedLeaf(id string, calls *[]string) *TestCase {
	return NewTestCase(id, func(c *Context) {
		*calls = append(*calls, id)
	})
}

func testIDs(tests []Test) []string {
	ids := make([]string, 0, len(tests))
	for _, t := range tests {
		ids = append(ids, t.ID())
	}
	return ids
}

// namedDecorator is a pass-through decorator that remembers which decoration pass
// created it, and counts its runs.
type namedDecorator struct {
	*Decorator
	name string
	runs *int
}

func decoratorNamed(name string, runs *int) func(Test) Test {
	return func(t Test) Test {
		d := &namedDecorator{Decorator: MustDecorate(t), name: name, runs: runs}
		d.Bind(d)
		return d
	}
}

func (d *namedDecorator) Run(result Result) {
	if d.runs != nil {
		*d.runs++
	}
	d.Decorator.Run(result)
}

// namedSuite stands in for a user-defined suite type.
type namedSuite struct {
	*Suite
	label string
}

// stoppingResult asks the run to stop once a given number of tests have started.
type stoppingResult struct {
	*Recorder
	stopAfter int
}

func (r *stoppingResult) ShouldStop() bool {
	return r.TestsRun() >= r.stopAfter
}

// captured collects deprecation warnings while installed.
type captured struct {
	framework.CapturingLogger
}

func (c *captured) install() (restore func()) {
	previous := SetWarningLogger(&c.CapturingLogger)
	return func() { SetWarningLogger(previous) }
}
