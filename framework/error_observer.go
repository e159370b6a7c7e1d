package framework

import (
	"log"
	"os"
	"sync"
	"time"
)

// ErrorObserver collects errors that are logged outside of any test's own reporting, such
// as errors raised by finalizers or by goroutines a test left running.
//
// Errors are only captured while a capture span is open, that is between Add and the
// matching Remove. Outside of a span they are written to the fallback Logger so they are
// never silently lost. Captured errors stay in the buffer until FlushErrors is called.
type ErrorObserver struct {
	fallback Logger
	added    int
	errors   []capturedError
	lock     sync.Mutex
}

type capturedError struct {
	time time.Time
	err  error
}

var defaultErrorObserver = NewErrorObserver(log.New(os.Stderr, "", log.LstdFlags))

// DefaultErrorObserver returns the process-wide observer that LogError writes to.
func DefaultErrorObserver() *ErrorObserver {
	return defaultErrorObserver
}

// LogError reports an error to the process-wide observer.
func LogError(err error) {
	defaultErrorObserver.LogError(err)
}

// NewErrorObserver creates an observer. If fallback is nil, errors logged outside of a
// capture span are discarded.
func NewErrorObserver(fallback Logger) *ErrorObserver {
	if fallback == nil {
		fallback = NullLogger()
	}
	return &ErrorObserver{fallback: fallback}
}

// Add opens a capture span.
func (o *ErrorObserver) Add() {
	o.lock.Lock()
	o.added++
	o.lock.Unlock()
}

// Remove closes the most recent capture span. Calling it without a matching Add is a
// no-op.
func (o *ErrorObserver) Remove() {
	o.lock.Lock()
	if o.added > 0 {
		o.added--
	}
	o.lock.Unlock()
}

// Capturing reports whether a capture span is open.
func (o *ErrorObserver) Capturing() bool {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.added > 0
}

func (o *ErrorObserver) LogError(err error) {
	if err == nil {
		return
	}
	o.lock.Lock()
	if o.added > 0 {
		o.errors = append(o.errors, capturedError{time: time.Now(), err: err})
		o.lock.Unlock()
		return
	}
	fallback := o.fallback
	o.lock.Unlock()
	fallback.Printf("Unhandled error: %s", err)
}

// Errors returns a snapshot of the captured errors, oldest first.
func (o *ErrorObserver) Errors() []error {
	o.lock.Lock()
	ret := make([]error, 0, len(o.errors))
	for _, e := range o.errors {
		ret = append(ret, e.err)
	}
	o.lock.Unlock()
	return ret
}

// FlushErrors clears the buffer and returns what it contained. No error logged
// concurrently can be cleared without also being returned.
func (o *ErrorObserver) FlushErrors() []error {
	o.lock.Lock()
	captured := o.errors
	o.errors = nil
	o.lock.Unlock()
	ret := make([]error, 0, len(captured))
	for _, e := range captured {
		ret = append(ret, e.err)
	}
	return ret
}
