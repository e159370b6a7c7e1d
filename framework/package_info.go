// Package framework contains the shared infrastructure of the test-suite composition
// layer: loggers, the process-wide error observer, test lifecycle logging, and filters.
// The core types for composing and running tests are in the subpackage suites; the
// foreign test-case shapes that suites can adapt are in the subpackage legacy.
//
// The general model is:
//
// 1. Tests of different shapes (native cases, legacy xUnit-style cases, function-based
// cases, doctest-derived cases) are adapted into a single capability contract.
//
// 2. Suites hold adapted tests and nested suites, in execution order.
//
// 3. Cross-cutting behavior is layered on by decorating every leaf of a suite tree, for
// instance to force garbage collection around each test and report errors that surface
// only during finalization.
package framework
