// Package suites composes tests of different shapes into suites that a single runner can
// execute.
//
// Every runnable test satisfies Test. Values of other shapes, such as the cases in the
// legacy package, are converted by the adapter Registry when they are added to a Suite or
// wrapped by a Decorator. Decorate rebuilds a suite tree so that every leaf is wrapped by
// a decorator, keeping the suites themselves and their structure; IterateTests walks the
// leaves of a tree.
//
// ForcedCollectionDecorator is the main built-in decorator: it collects garbage around
// each test and reports errors that were logged during finalization, and optionally
// goroutines the test leaked, as errors of that test.
//
// None of the types here are safe for concurrent runs that share a suite, a registry, or
// an error collector.
package suites
