package suites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitWalksLeavesAndWarns(t *testing.T) {
	var warnings captured
	restore := warnings.install()
	defer restore()

	var calls []string
	outer, _ := buildTree(&calls)
	var visited []string
	Visit(outer, func(t Test) { visited = append(visited, t.ID()) })

	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
	require.Len(t, warnings.Messages(), 1)
	assert.Contains(t, warnings.Messages()[0], "deprecated")
}

func TestSuiteVisitWarnsOnEveryCall(t *testing.T) {
	var warnings captured
	restore := warnings.install()
	defer restore()

	var calls []string
	s := NewSuite("s", trackedLeaf("a", &calls))
	require.NoError(t, s.Add(&plainCase{id: "legacy"}))

	var visited []string
	s.Visit(func(t Test) { visited = append(visited, t.ID()) })
	s.Visit(func(t Test) { visited = append(visited, t.ID()) })

	assert.Equal(t, []string{"a", "legacy", "a", "legacy"}, visited)
	// one warning for each suite visit and one for each child visit
	assert.Len(t, warnings.Messages(), 6)
	assert.Empty(t, calls)
}

func TestSetWarningLoggerNilDiscards(t *testing.T) {
	previous := SetWarningLogger(nil)
	defer SetWarningLogger(previous)

	var calls []string
	assert.NotPanics(t, func() { Visit(trackedLeaf("a", &calls), func(Test) {}) })
}
