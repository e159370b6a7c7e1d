package suites

import (
	"runtime"
	"time"

	"github.com/launchdarkly/go-test-suites/framework"

	"go.uber.org/goleak"
)

const finalizerTimeout = time.Second

// ErrorCollector is the log-error capture span a ForcedCollectionDecorator uses.
// *framework.ErrorObserver implements it.
type ErrorCollector interface {
	Add()
	FlushErrors() []error
	Remove()
}

// CollectGarbage runs a full collection and waits until the finalizers it queued have
// had a chance to run, so that anything they log is logged before it returns.
func CollectGarbage() {
	done := make(chan struct{})
	func() {
		// must hold a pointer, or the tiny allocator may batch it and never finalize it
		sentinel := &struct{ next *int }{}
		runtime.SetFinalizer(sentinel, func(interface{}) { close(done) })
	}()
	runtime.GC()
	select {
	case <-done:
	case <-time.After(finalizerTimeout):
	}
}

// ForcedCollectionDecorator collects garbage before and after the wrapped test. Errors
// logged to its ErrorCollector during the collection after the test are added to the
// result as errors attributed to the decorator, since no assertion of the test reported
// them.
type ForcedCollectionDecorator struct {
	*Decorator
	sweep     func()
	collector ErrorCollector
	leakCheck bool
	leakOpts  []goleak.Option
}

type CollectionOption func(*ForcedCollectionDecorator)

// WithSweep replaces CollectGarbage as the collection function.
func WithSweep(sweep func()) CollectionOption {
	return func(d *ForcedCollectionDecorator) {
		if sweep != nil {
			d.sweep = sweep
		}
	}
}

// WithErrorCollector replaces framework.DefaultErrorObserver as the source of captured
// errors.
func WithErrorCollector(c ErrorCollector) CollectionOption {
	return func(d *ForcedCollectionDecorator) {
		if c != nil {
			d.collector = c
		}
	}
}

// WithLeakCheck also reports goroutines that were started by the test and are still
// running after the post-test collection. The options are passed to goleak, for instance
// to ignore known background goroutines.
func WithLeakCheck(opts ...goleak.Option) CollectionOption {
	return func(d *ForcedCollectionDecorator) {
		d.leakCheck = true
		d.leakOpts = append(d.leakOpts, opts...)
	}
}

// NewForcedCollectionDecorator wraps v, adapting it with the default registry if needed.
func NewForcedCollectionDecorator(v interface{}, opts ...CollectionOption) (*ForcedCollectionDecorator, error) {
	base, err := NewDecorator(v)
	if err != nil {
		return nil, err
	}
	return newForcedCollectionDecorator(base, opts), nil
}

// ForceGarbageCollection returns a decorator function for Decorate.
func ForceGarbageCollection(opts ...CollectionOption) func(Test) Test {
	return func(t Test) Test {
		return newForcedCollectionDecorator(MustDecorate(t), opts)
	}
}

func newForcedCollectionDecorator(base *Decorator, opts []CollectionOption) *ForcedCollectionDecorator {
	d := &ForcedCollectionDecorator{
		Decorator: base,
		sweep:     CollectGarbage,
		collector: framework.DefaultErrorObserver(),
	}
	d.Bind(d)
	for _, o := range opts {
		o(d)
	}
	return d
}

// Rewrap wraps t in a decorator with the same configuration.
func (d *ForcedCollectionDecorator) Rewrap(t Test) Test {
	p := &ForcedCollectionDecorator{
		Decorator: MustDecorate(t),
		sweep:     d.sweep,
		collector: d.collector,
		leakCheck: d.leakCheck,
		leakOpts:  d.leakOpts,
	}
	p.Bind(p)
	return p
}

func (d *ForcedCollectionDecorator) Run(result Result) {
	d.sweep()
	var leakBaseline goleak.Option
	if d.leakCheck {
		leakBaseline = goleak.IgnoreCurrent()
	}

	d.Decorator.Run(result)

	d.collector.Add()
	spanOpen := true
	defer func() {
		if spanOpen {
			d.collector.Remove()
			d.collector.FlushErrors()
		}
	}()

	d.sweep()
	var leakErr error
	if d.leakCheck {
		opts := append([]goleak.Option{leakBaseline}, d.leakOpts...)
		leakErr = goleak.Find(opts...)
	}
	// The span is closed before draining, so every error is either in the drained buffer
	// or written to the collector's fallback.
	d.collector.Remove()
	spanOpen = false
	captured := d.collector.FlushErrors()

	for _, err := range captured {
		result.AddError(d, &CollectionFinalizationError{Err: err})
	}
	if leakErr != nil {
		result.AddError(d, &LeakedGoroutinesError{Err: leakErr})
	}
}
