package suites

import (
	"fmt"

	"github.com/launchdarkly/go-test-suites/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	ID          string
	Errors      []error
	Skipped     bool
	SkipReason  string
	DebugOutput framework.CapturedOutput
}

func (t TestResult) Failed() bool {
	return len(t.Errors) != 0
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// AllErrors returns every recorded error, each tagged with the ID of its test.
func (r Results) AllErrors() []error {
	var ret []error
	for _, f := range r.Failures {
		for _, err := range f.Errors {
			ret = append(ret, TestFailure{ID: f.ID, Err: err})
		}
	}
	return ret
}

// JSONValue returns a machine-readable form of the results.
func (r Results) JSONValue() ldvalue.Value {
	tests := ldvalue.ArrayBuild()
	for _, t := range r.Tests {
		errs := ldvalue.ArrayBuild()
		for _, err := range t.Errors {
			errs.Add(ldvalue.String(err.Error()))
		}
		obj := ldvalue.ObjectBuild().
			Set("id", ldvalue.String(t.ID)).
			Set("failed", ldvalue.Bool(t.Failed())).
			Set("errors", errs.Build())
		if t.Skipped {
			obj.Set("skipped", ldvalue.Bool(true)).
				Set("skipReason", ldvalue.String(t.SkipReason))
		}
		tests.Add(obj.Build())
	}
	return ldvalue.ObjectBuild().
		Set("ok", ldvalue.Bool(r.OK())).
		Set("testCount", ldvalue.Int(len(r.Tests))).
		Set("failureCount", ldvalue.Int(len(r.Failures))).
		Set("tests", tests.Build()).
		Build()
}

func (r Results) MarshalJSON() ([]byte, error) {
	return r.JSONValue().MarshalJSON()
}

type TestFailure struct {
	ID  string
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}
