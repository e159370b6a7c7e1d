package suites

// Decorator wraps a test and forwards every operation to it. Concrete decorators embed
// *Decorator, call Bind with themselves, and override Run to add behavior around
// Decorator.Run:
//
//	type timed struct{ *suites.Decorator }
//
//	func newTimed(t suites.Test) *timed {
//		d := &timed{Decorator: suites.MustDecorate(t)}
//		d.Bind(d)
//		return d
//	}
//
//	func (d *timed) Run(result suites.Result) {
//		start := time.Now()
//		d.Decorator.Run(result)
//		log.Printf("%s took %s", d.ID(), time.Since(start))
//	}
type Decorator struct {
	original Test
	owner    Test
}

// Rewrapper is implemented by decorators that can wrap another test in their own type.
// When such a decorator wraps a suite, each outcome of the suite is attributed to
// Rewrap of the reporting test, so reports still name the decorator type.
type Rewrapper interface {
	Rewrap(t Test) Test
}

// NewDecorator adapts v with the default registry and wraps it. It fails with an
// *UnadaptableTestError if v cannot be adapted.
func NewDecorator(v interface{}) (*Decorator, error) {
	t, err := Adapt(v)
	if err != nil {
		return nil, &UnadaptableTestError{Value: v, Err: err}
	}
	return newDecorator(t), nil
}

// MustDecorate is NewDecorator for a value already known to be a Test, which cannot fail.
func MustDecorate(t Test) *Decorator {
	return newDecorator(t)
}

func newDecorator(t Test) *Decorator {
	d := &Decorator{original: t}
	d.owner = d
	return d
}

// Bind sets the test that outcomes of the wrapped test are attributed to. Decorators that
// embed *Decorator pass themselves, so reports name the outermost type.
func (d *Decorator) Bind(owner Test) {
	d.owner = owner
}

// Original returns the wrapped test.
func (d *Decorator) Original() Test { return d.original }

func (d *Decorator) ID() string { return d.original.ID() }

func (d *Decorator) CountTestCases() int { return d.original.CountTestCases() }

// Run runs the wrapped test against a result that attributes its outcomes to this
// decorator.
func (d *Decorator) Run(result Result) {
	d.original.Run(NewAdaptedResult(result, d.attribute))
}

// Visit forwards to the wrapped test.
//
// Deprecated: use IterateTests.
func (d *Decorator) Visit(visitor Visitor) {
	if v, ok := d.original.(Visitable); ok {
		v.Visit(visitor)
		return
	}
	Visit(d.original, visitor)
}

// A wrapped leaf reports only for itself, so its outcomes belong to the owner. A wrapped
// suite reports for many tests, each of which keeps its own identity behind a proxy of
// the owner's type when the owner can build one.
func (d *Decorator) attribute(t Test) Test {
	if _, ok := d.original.(Composite); !ok {
		return d.owner
	}
	if rw, ok := d.owner.(Rewrapper); ok {
		return rw.Rewrap(t)
	}
	return newDecorator(t)
}
