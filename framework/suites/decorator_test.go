package suites

import (
	"errors"
	"testing"

	"github.com/launchdarkly/go-test-suites/framework"
	"github.com/launchdarkly/go-test-suites/framework/legacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoratorForwardsContract(t *testing.T) {
	tc := NewTestCase("wrapped", func(*Context) {})
	d, err := NewDecorator(tc)
	require.NoError(t, err)

	assert.Equal(t, "wrapped", d.ID())
	assert.Equal(t, 1, d.CountTestCases())
	assert.Same(t, tc, d.Original())
}

func TestDecoratorAttributesOutcomesToItself(t *testing.T) {
	tc := NewTestCase("fails", func(c *Context) {
		c.Errorf("expected %d", 2)
	})
	var runs int
	d := decoratorNamed("outer", &runs)(tc)

	r := NewRecorder()
	d.Run(r)

	assert.Equal(t, 1, runs)
	require.Len(t, r.Failures(), 1)
	assert.Same(t, d, r.Failures()[0].Test)
	assert.EqualError(t, r.Failures()[0].Err, "expected 2")
}

func TestNestedDecoratorsAttributeToOutermost(t *testing.T) {
	tc := NewTestCase("passes", func(*Context) {})
	inner := decoratorNamed("inner", nil)(tc)
	outer := decoratorNamed("outer", nil)(inner)

	r := NewRecorder()
	outer.Run(r)

	outcomes := r.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, OutcomeSuccess, outcomes[0].Kind)
	assert.Same(t, outer, outcomes[0].Test)
}

func TestDecoratorAroundSuiteKeepsChildIdentities(t *testing.T) {
	var calls []string
	s := NewSuite("suite", trackedLeaf("a", &calls), trackedLeaf("b", &calls))
	d := MustDecorate(s)

	r := NewRecorder()
	d.Run(r)

	assert.Equal(t, []string{"a", "b"}, calls)
	outcomes := r.Outcomes()
	require.Len(t, outcomes, 2)
	for i, id := range []string{"a", "b"} {
		assert.IsType(t, &Decorator{}, outcomes[i].Test)
		assert.Equal(t, id, outcomes[i].Test.ID())
	}
	assert.Equal(t, 2, d.CountTestCases())
}

func TestRewrapperAroundSuiteNamesItsOwnType(t *testing.T) {
	s := NewSuite("suite",
		NewTestCase("a", func(*Context) {}),
		NewTestCase("b", func(c *Context) { c.Errorf("broken") }),
	)
	d, err := NewForcedCollectionDecorator(s,
		WithSweep(func() {}),
		WithErrorCollector(framework.NewErrorObserver(nil)))
	require.NoError(t, err)

	r := NewRecorder()
	d.Run(r)

	outcomes := r.Outcomes()
	require.Len(t, outcomes, 2)
	for i, id := range []string{"a", "b"} {
		assert.IsType(t, &ForcedCollectionDecorator{}, outcomes[i].Test)
		assert.NotSame(t, d, outcomes[i].Test)
		assert.Equal(t, id, outcomes[i].Test.ID())
	}
	require.Len(t, r.Failures(), 1)
	assert.Equal(t, "b", r.Failures()[0].Test.ID())

	f := Filtered(nil)(NewSuite("suite", NewTestCase("c", func(*Context) {})))
	r2 := NewRecorder()
	f.Run(r2)
	require.Len(t, r2.Outcomes(), 1)
	assert.IsType(t, &FilterDecorator{}, r2.Outcomes()[0].Test)
	assert.Equal(t, "c", r2.Outcomes()[0].Test.ID())
}

func TestNewDecoratorAdaptsForeignShapes(t *testing.T) {
	d, err := NewDecorator(legacy.NewFunctionCase("legacy function", func() error { return nil }))
	require.NoError(t, err)
	assert.IsType(t, &BrokenIDAdapter{}, d.Original())
	assert.Equal(t, "legacy function", d.ID())

	r := NewRecorder()
	d.Run(r)
	assert.True(t, r.WasSuccessful())
	assert.Same(t, d, r.Outcomes()[0].Test)
}

func TestNewDecoratorWithUnadaptableValue(t *testing.T) {
	d, err := NewDecorator(notATest{})
	assert.Nil(t, d)

	var unadaptable *UnadaptableTestError
	require.True(t, errors.As(err, &unadaptable))
	assert.Equal(t, notATest{}, unadaptable.Value)

	var noAdapter *NoAdapterError
	assert.True(t, errors.As(err, &noAdapter))
}

func TestDecoratorVisitForwardsToOriginal(t *testing.T) {
	var warnings captured
	restore := warnings.install()
	defer restore()

	tc := NewTestCase("visited", func(*Context) {})
	d := MustDecorate(tc)
	var visited []Test
	d.Visit(func(t Test) { visited = append(visited, t) })

	require.Len(t, visited, 1)
	assert.Same(t, tc, visited[0])
	assert.NotEmpty(t, warnings.Messages())
}
