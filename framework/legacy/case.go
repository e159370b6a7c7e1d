// Package legacy defines test-case shapes that predate the suites capability contract:
// plain xUnit-style cases that report into a Result, function-based cases, and
// doctest-derived cases. None of them can be run by a suite directly; the suites package
// registers adapters for them.
package legacy

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Result is the collector a legacy case reports into.
type Result interface {
	StartTest(c Case)
	StopTest(c Case)
	AddSuccess(c Case)
	AddFailure(c Case, err error)
	AddError(c Case, err error)
	AddSkip(c Case, reason string)
	ShouldStop() bool
}

// Case is the generic legacy test-case shape.
type Case interface {
	ID() string
	Run(r Result)
}

// Describer is implemented by cases that can provide a short human-readable description.
// An undefined value means the case has no description.
type Describer interface {
	ShortDescription() ldvalue.OptionalString
}

// UnreliableID is satisfied by the function-based and doctest-derived cases of this
// package, and by any type that embeds one of them. Their ID does not single out one test.
type UnreliableID interface {
	Case
	Describer
	unreliableID()
}

// SkipError can be returned or panicked by a case body to mark the case as skipped.
type SkipError struct {
	Reason string
}

func (e SkipError) Error() string {
	return fmt.Sprintf("skipped: %s", e.Reason)
}

// Skip returns a SkipError with the given reason.
func Skip(reason string) error {
	return SkipError{Reason: reason}
}

// FailureError marks an error as an assertion failure rather than an unexpected error.
type FailureError struct {
	Message string
}

func (e FailureError) Error() string {
	return e.Message
}

// Failf returns a FailureError with a formatted message.
func Failf(format string, args ...interface{}) error {
	return FailureError{Message: fmt.Sprintf(format, args...)}
}
