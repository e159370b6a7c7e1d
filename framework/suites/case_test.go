package suites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseOutcomes(t *testing.T) {
	cases := []struct {
		name   string
		action func(*Context)
		kinds  []OutcomeKind
	}{
		{"passes", func(*Context) {}, []OutcomeKind{OutcomeSuccess}},
		{"fails with assert", func(c *Context) {
			assert.Equal(c, 1, 2)
		}, []OutcomeKind{OutcomeFailure}},
		{"fails twice", func(c *Context) {
			c.Errorf("one")
			c.Errorf("two")
		}, []OutcomeKind{OutcomeFailure, OutcomeFailure}},
		{"fails with require", func(c *Context) {
			require.True(c, false)
			c.Errorf("not reached")
		}, []OutcomeKind{OutcomeFailure}},
		{"fails now without message", func(c *Context) {
			c.FailNow()
		}, []OutcomeKind{OutcomeFailure}},
		{"panics", func(c *Context) {
			panic("boom")
		}, []OutcomeKind{OutcomeError}},
		{"skips", func(c *Context) {
			c.SkipWithReason("not supported")
		}, []OutcomeKind{OutcomeSkip}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tc := NewTestCase(c.name, c.action)
			r := NewRecorder()
			tc.Run(r)

			var kinds []OutcomeKind
			for _, o := range r.Outcomes() {
				kinds = append(kinds, o.Kind)
				assert.Same(t, tc, o.Test)
			}
			assert.Equal(t, c.kinds, kinds)
			assert.Equal(t, 1, r.TestsRun())
		})
	}
}

func TestTestCaseFailureMessages(t *testing.T) {
	r := NewRecorder()
	NewTestCase("t", func(c *Context) { c.FailNow() }).Run(r)
	require.Len(t, r.Failures(), 1)
	assert.EqualError(t, r.Failures()[0].Err, "test failed with no failure message")

	r = NewRecorder()
	NewTestCase("t", func(c *Context) { panic("boom") }).Run(r)
	require.Len(t, r.Errors(), 1)
	assert.Contains(t, r.Errors()[0].Err.Error(), "unexpected panic in test: boom")
}

func TestTestCaseSkipReason(t *testing.T) {
	r := NewRecorder()
	NewTestCase("t", func(c *Context) { c.SkipWithReason("later") }).Run(r)

	skips := r.Skips()
	require.Len(t, skips, 1)
	assert.Equal(t, "later", skips[0].Reason)
	assert.True(t, r.WasSuccessful())
}

func TestTestCaseDebugOutput(t *testing.T) {
	r := NewRecorder()
	NewTestCase("noisy", func(c *Context) {
		c.Debug("value is %d", 3)
		c.DebugLogger().Printf("done")
		c.Errorf("failed")
	}).Run(r)

	results := r.Results()
	require.Len(t, results.Tests, 1)
	output := results.Tests[0].DebugOutput
	require.Len(t, output, 2)
	assert.Equal(t, "value is 3", output[0].Message)
	assert.Equal(t, "done", output[1].Message)
}

func TestContextID(t *testing.T) {
	var id string
	var failed bool
	NewTestCase("my test", func(c *Context) {
		id = c.ID()
		c.Errorf("x")
		failed = c.Failed()
	}).Run(NewRecorder())

	assert.Equal(t, "my test", id)
	assert.True(t, failed)
}
