package suites

import (
	"fmt"
	"reflect"
)

// NoAdapterError means a value does not satisfy Test and no adapter is registered for its
// type.
type NoAdapterError struct {
	Type reflect.Type
}

func (e *NoAdapterError) Error() string {
	if e.Type == nil {
		return "no adapter registered for nil test"
	}
	return fmt.Sprintf("no adapter registered for %s", e.Type)
}

// UnadaptableTestError means a decorator was constructed around a value that could not
// be adapted to Test.
type UnadaptableTestError struct {
	Value interface{}
	Err   error
}

func (e *UnadaptableTestError) Error() string {
	return fmt.Sprintf("cannot decorate %T: %s", e.Value, e.Err)
}

func (e *UnadaptableTestError) Unwrap() error {
	return e.Err
}

// CollectionFinalizationError is an error that was logged while garbage was being
// collected after a test, typically by a finalizer of something the test left behind. It
// is never returned; it is always added to a result.
type CollectionFinalizationError struct {
	Err error
}

func (e *CollectionFinalizationError) Error() string {
	return fmt.Sprintf("error logged during garbage collection after test: %s", e.Err)
}

func (e *CollectionFinalizationError) Unwrap() error {
	return e.Err
}

// LeakedGoroutinesError reports goroutines that were started during a test and were
// still running after it finished.
type LeakedGoroutinesError struct {
	Err error
}

func (e *LeakedGoroutinesError) Error() string {
	return fmt.Sprintf("test leaked goroutines: %s", e.Err)
}

func (e *LeakedGoroutinesError) Unwrap() error {
	return e.Err
}

// DeprecatedVisitorWarning is logged every time the visitor protocol is used.
type DeprecatedVisitorWarning struct{}

func (w DeprecatedVisitorWarning) Error() string {
	return "DeprecationWarning: test visitors are deprecated, use IterateTests"
}
