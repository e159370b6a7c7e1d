package suites

import (
	"iter"
)

// Suite is an ordered collection of tests and nested suites. The order of the
// collection is the execution order.
//
// Types that embed *Suite keep their identity through Decorate.
type Suite struct {
	name  string
	tests []Test
}

func NewSuite(name string, tests ...Test) *Suite {
	return &Suite{name: name, tests: append([]Test(nil), tests...)}
}

func (s *Suite) ID() string { return s.name }

func (s *Suite) AddTest(t Test) {
	s.tests = append(s.tests, t)
}

// Add adapts v with the default registry and appends it.
func (s *Suite) Add(v interface{}) error {
	t, err := Adapt(v)
	if err != nil {
		return err
	}
	s.AddTest(t)
	return nil
}

// Tests returns a snapshot of the suite's children.
func (s *Suite) Tests() []Test {
	return append([]Test(nil), s.tests...)
}

// SetTests replaces the suite's children.
func (s *Suite) SetTests(tests []Test) {
	s.tests = append([]Test(nil), tests...)
}

func (s *Suite) CountTestCases() int {
	count := 0
	for _, t := range s.tests {
		count += t.CountTestCases()
	}
	return count
}

// Run runs every child in order. It checks result.ShouldStop before each child and
// returns without running the rest once it is true; no child is skipped for any other
// reason.
func (s *Suite) Run(result Result) {
	for _, t := range s.Tests() {
		if result.ShouldStop() {
			break
		}
		t.Run(result)
	}
}

// All returns the leaf tests of the suite; see IterateTests.
func (s *Suite) All() iter.Seq[Test] {
	return IterateTests(s)
}

// Visit visits each child: children that support visiting visit themselves, nested
// suites are walked, and other tests are passed to the visitor.
//
// Deprecated: use IterateTests.
func (s *Suite) Visit(visitor Visitor) {
	warnDeprecatedVisitor()
	for _, t := range s.Tests() {
		switch c := t.(type) {
		case Visitable:
			c.Visit(visitor)
		case Composite:
			Visit(c, visitor)
		default:
			visitor(t)
		}
	}
}
