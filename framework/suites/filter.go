package suites

import (
	"github.com/launchdarkly/go-test-suites/framework"
)

const filteredSkipReason = "excluded by filter parameters"

// FilterDecorator skips its test, without running it, unless the filter accepts the
// test's ID.
type FilterDecorator struct {
	*Decorator
	filter framework.Filter
}

// Filtered returns a decorator function for Decorate that applies filter to each leaf.
// A nil filter accepts everything.
func Filtered(filter framework.Filter) func(Test) Test {
	return func(t Test) Test {
		return newFilterDecorator(t, filter)
	}
}

func newFilterDecorator(t Test, filter framework.Filter) *FilterDecorator {
	d := &FilterDecorator{Decorator: MustDecorate(t), filter: filter}
	d.Bind(d)
	return d
}

func (d *FilterDecorator) Rewrap(t Test) Test {
	return newFilterDecorator(t, d.filter)
}

func (d *FilterDecorator) Run(result Result) {
	if d.filter != nil && !d.filter(d.ID()) {
		result.StartTest(d)
		result.AddSkip(d, filteredSkipReason)
		result.StopTest(d)
		return
	}
	d.Decorator.Run(result)
}
