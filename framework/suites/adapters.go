package suites

import (
	"github.com/launchdarkly/go-test-suites/framework/legacy"
)

// Types embedding a function or doctest case miss the exact registrations, and are caught
// by the UnreliableID shape, which must be tried before legacy.Case.
func init() {
	RegisterAdapter(defaultRegistry, func(c legacy.UnreliableID) Test { return NewBrokenIDAdapter(c) })
	RegisterAdapter(defaultRegistry, func(c legacy.Case) Test { return NewCaseAdapter(c) })
	RegisterAdapter(defaultRegistry, func(c *legacy.FunctionCase) Test { return NewBrokenIDAdapter(c) })
	RegisterAdapter(defaultRegistry, func(c *legacy.DocTestCase) Test { return NewBrokenIDAdapter(c) })
}

// CaseAdapter makes a legacy.Case satisfy Test. Outcomes the case reports are attributed
// to the adapter.
type CaseAdapter struct {
	original legacy.Case
	owner    Test
}

func NewCaseAdapter(c legacy.Case) *CaseAdapter {
	a := &CaseAdapter{original: c}
	a.owner = a
	return a
}

// Original returns the adapted case.
func (a *CaseAdapter) Original() legacy.Case { return a.original }

func (a *CaseAdapter) ID() string { return a.original.ID() }

func (a *CaseAdapter) CountTestCases() int { return 1 }

func (a *CaseAdapter) Run(result Result) {
	a.original.Run(legacyResult{result: result, owner: a.owner})
}

// Visit calls the visitor with the adapter.
//
// Deprecated: use IterateTests.
func (a *CaseAdapter) Visit(visitor Visitor) {
	warnDeprecatedVisitor()
	visitor(a.owner)
}

// BrokenIDAdapter adapts legacy cases whose ID is not a useful identity, such as
// function-based and doctest-derived cases. Its ID is the case's short description when
// there is one.
type BrokenIDAdapter struct {
	*CaseAdapter
}

func NewBrokenIDAdapter(c legacy.Case) *BrokenIDAdapter {
	a := &BrokenIDAdapter{CaseAdapter: &CaseAdapter{original: c}}
	a.owner = a
	return a
}

func (a *BrokenIDAdapter) ID() string {
	if d, ok := a.original.(legacy.Describer); ok {
		if desc := d.ShortDescription(); desc.IsDefined() {
			return desc.StringValue()
		}
	}
	return a.original.ID()
}

// legacyResult forwards a legacy case's reports to a Result, attributed to owner.
type legacyResult struct {
	result Result
	owner  Test
}

func (r legacyResult) StartTest(legacy.Case)               { r.result.StartTest(r.owner) }
func (r legacyResult) StopTest(legacy.Case)                { r.result.StopTest(r.owner) }
func (r legacyResult) AddSuccess(legacy.Case)              { r.result.AddSuccess(r.owner) }
func (r legacyResult) AddFailure(_ legacy.Case, err error) { r.result.AddFailure(r.owner, err) }
func (r legacyResult) AddError(_ legacy.Case, err error)   { r.result.AddError(r.owner, err) }
func (r legacyResult) AddSkip(_ legacy.Case, reason string) {
	r.result.AddSkip(r.owner, reason)
}
func (r legacyResult) ShouldStop() bool { return r.result.ShouldStop() }
