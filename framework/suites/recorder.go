package suites

import (
	"github.com/launchdarkly/go-test-suites/framework"
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeError
	OutcomeSkip
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeError:
		return "error"
	case OutcomeSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Outcome is a single report made to a Recorder. Test is the test the report was
// attributed to.
type Outcome struct {
	Test   Test
	Kind   OutcomeKind
	Err    error
	Reason string
}

// Recorder is a Result that keeps every outcome in order and forwards lifecycle events
// to a framework.TestLogger.
type Recorder struct {
	logger   framework.TestLogger
	failFast bool
	stopped  bool
	testsRun int
	outcomes []Outcome
	failed   map[string]bool
	skipped  map[string]bool
	debug    map[string]framework.CapturedOutput
}

type RecorderOption func(*Recorder)

// WithTestLogger sends lifecycle events to the given logger.
func WithTestLogger(logger framework.TestLogger) RecorderOption {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// FailFast makes the recorder ask the run to stop after the first failure or error.
func FailFast() RecorderOption {
	return func(r *Recorder) { r.failFast = true }
}

func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		logger:  framework.NullTestLogger(),
		failed:  make(map[string]bool),
		skipped: make(map[string]bool),
		debug:   make(map[string]framework.CapturedOutput),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Recorder) StartTest(t Test) {
	r.testsRun++
	r.logger.TestStarted(t.ID())
}

func (r *Recorder) StopTest(t Test) {
	id := t.ID()
	if r.skipped[id] {
		return
	}
	r.logger.TestFinished(id, r.failed[id], r.debug[id])
}

func (r *Recorder) AddSuccess(t Test) {
	r.outcomes = append(r.outcomes, Outcome{Test: t, Kind: OutcomeSuccess})
}

func (r *Recorder) AddFailure(t Test, err error) {
	r.addProblem(t, OutcomeFailure, err)
}

func (r *Recorder) AddError(t Test, err error) {
	r.addProblem(t, OutcomeError, err)
}

func (r *Recorder) addProblem(t Test, kind OutcomeKind, err error) {
	id := t.ID()
	r.outcomes = append(r.outcomes, Outcome{Test: t, Kind: kind, Err: err})
	r.failed[id] = true
	r.logger.TestError(id, err)
	if r.failFast {
		r.stopped = true
	}
}

func (r *Recorder) AddSkip(t Test, reason string) {
	id := t.ID()
	r.outcomes = append(r.outcomes, Outcome{Test: t, Kind: OutcomeSkip, Reason: reason})
	r.skipped[id] = true
	r.logger.TestSkipped(id, reason)
}

func (r *Recorder) AddDebugOutput(t Test, output framework.CapturedOutput) {
	id := t.ID()
	r.debug[id] = append(r.debug[id], output...)
}

func (r *Recorder) ShouldStop() bool { return r.stopped }

// Stop asks any run using this recorder to stop before its next test.
func (r *Recorder) Stop() { r.stopped = true }

// TestsRun is the number of tests that have been started.
func (r *Recorder) TestsRun() int { return r.testsRun }

func (r *Recorder) Outcomes() []Outcome {
	return append([]Outcome(nil), r.outcomes...)
}

func (r *Recorder) Errors() []Outcome { return r.outcomesOfKind(OutcomeError) }

func (r *Recorder) Failures() []Outcome { return r.outcomesOfKind(OutcomeFailure) }

func (r *Recorder) Skips() []Outcome { return r.outcomesOfKind(OutcomeSkip) }

func (r *Recorder) outcomesOfKind(kind OutcomeKind) []Outcome {
	var ret []Outcome
	for _, o := range r.outcomes {
		if o.Kind == kind {
			ret = append(ret, o)
		}
	}
	return ret
}

func (r *Recorder) WasSuccessful() bool {
	return len(r.Errors()) == 0 && len(r.Failures()) == 0
}

// Results summarizes the outcomes per test ID, in the order each ID was first reported.
func (r *Recorder) Results() Results {
	var results Results
	index := make(map[string]int)
	for _, o := range r.outcomes {
		id := o.Test.ID()
		i, ok := index[id]
		if !ok {
			i = len(results.Tests)
			index[id] = i
			results.Tests = append(results.Tests, TestResult{ID: id, DebugOutput: r.debug[id]})
		}
		tr := &results.Tests[i]
		switch o.Kind {
		case OutcomeFailure, OutcomeError:
			tr.Errors = append(tr.Errors, o.Err)
		case OutcomeSkip:
			tr.Skipped = true
			tr.SkipReason = o.Reason
		}
	}
	for _, tr := range results.Tests {
		if tr.Failed() {
			results.Failures = append(results.Failures, tr)
		}
	}
	return results
}
