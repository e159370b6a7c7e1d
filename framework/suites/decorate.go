package suites

import (
	"iter"
)

// Decorate applies decorator to every leaf test in test and returns the result.
//
// A leaf is decorated directly. A Composite is rebuilt in place: its children are
// decorated recursively into a new list, which then replaces the old one, so the suite
// object, its concrete type, and its branching structure are all preserved and external
// references to it see the decorated tree. Decorating twice, first with d1 and then
// with d2, leaves each leaf wrapped as d2(d1(leaf)).
//
// Decorate mutates suites, so it must not overlap with a Run or IterateTests of the same
// suite.
func Decorate(test Test, decorator func(Test) Test) Test {
	suite, ok := test.(Composite)
	if !ok {
		return decorator(test)
	}
	children := suite.Tests()
	decorated := make([]Test, 0, len(children))
	for _, child := range children {
		decorated = append(decorated, Decorate(child, decorator))
	}
	suite.SetTests(decorated)
	return suite
}

// IterateTests returns the leaf tests of test in depth-first, left-to-right order. A leaf
// yields only itself; suites themselves are never yielded. Each call returns a new
// sequence, and the tree is walked lazily as the sequence is consumed.
func IterateTests(test Test) iter.Seq[Test] {
	return func(yield func(Test) bool) {
		iterateTests(test, yield)
	}
}

func iterateTests(test Test, yield func(Test) bool) bool {
	suite, ok := test.(Composite)
	if !ok {
		return yield(test)
	}
	for _, child := range suite.Tests() {
		if !iterateTests(child, yield) {
			return false
		}
	}
	return true
}

// CollectTests returns all the leaf tests of test as a slice.
func CollectTests(test Test) []Test {
	var ret []Test
	for t := range IterateTests(test) {
		ret = append(ret, t)
	}
	return ret
}
