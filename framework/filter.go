package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not, given
// the test's ID.
type Filter func(id string) bool

// RegexFilters selects tests by matching their IDs. A test runs if it matches at least one
// MustMatch pattern (or MustMatch is empty) and matches no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id)) &&
		!r.MustNotMatch.AnyMatch(id)
}

// IsDefined is true if either list has patterns, i.e. if some tests may be excluded.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// Describe writes a human-readable explanation of which tests will be skipped.
func (r RegexFilters) Describe(dest io.Writer) {
	if !r.IsDefined() {
		return
	}
	fmt.Fprintln(dest, "Some tests will be skipped based on the filter criteria for this test run:")
	if r.MustMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any not matching %s\n", r.MustMatch)
	}
	if r.MustNotMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any matching %s\n", r.MustNotMatch)
	}
	fmt.Fprintln(dest)
}

// RegexList is a list of patterns. It implements flag.Value, so a command line can
// accumulate patterns by repeating a flag.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
