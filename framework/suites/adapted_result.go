package suites

import (
	"github.com/launchdarkly/go-test-suites/framework"
)

// AdaptedResult wraps a Result so that every test passed to it is first transformed by
// Adapt. Decorators use it to attribute the outcomes of the tests they wrap to
// themselves.
type AdaptedResult struct {
	result Result
	adapt  func(Test) Test
}

func NewAdaptedResult(result Result, adapt func(Test) Test) *AdaptedResult {
	return &AdaptedResult{result: result, adapt: adapt}
}

// Unwrap returns the underlying result.
func (r *AdaptedResult) Unwrap() Result { return r.result }

func (r *AdaptedResult) StartTest(t Test)             { r.result.StartTest(r.adapt(t)) }
func (r *AdaptedResult) StopTest(t Test)              { r.result.StopTest(r.adapt(t)) }
func (r *AdaptedResult) AddSuccess(t Test)            { r.result.AddSuccess(r.adapt(t)) }
func (r *AdaptedResult) AddFailure(t Test, err error) { r.result.AddFailure(r.adapt(t), err) }
func (r *AdaptedResult) AddError(t Test, err error)   { r.result.AddError(r.adapt(t), err) }
func (r *AdaptedResult) AddSkip(t Test, reason string) {
	r.result.AddSkip(r.adapt(t), reason)
}
func (r *AdaptedResult) ShouldStop() bool { return r.result.ShouldStop() }

func (r *AdaptedResult) AddDebugOutput(t Test, output framework.CapturedOutput) {
	if d, ok := r.result.(DebugOutputResult); ok {
		d.AddDebugOutput(r.adapt(t), output)
	}
}
