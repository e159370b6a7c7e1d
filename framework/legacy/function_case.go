package legacy

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"runtime/debug"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// FunctionCase turns a plain function into a legacy case. The function returns nil on
// success, a FailureError (see Failf) for an assertion failure, a SkipError (see Skip) to
// skip, or any other error, which is reported as an error.
//
// Its ID is derived from the function's symbol name, which is not meaningful for
// closures; set Description to give the case a readable identity.
type FunctionCase struct {
	Fn          func() error
	SetUp       func() error
	TearDown    func() error
	Description string
}

func NewFunctionCase(description string, fn func() error) *FunctionCase {
	return &FunctionCase{Fn: fn, Description: description}
}

func (c *FunctionCase) ID() string {
	if c.Fn == nil {
		return "<nil>"
	}
	f := runtime.FuncForPC(reflect.ValueOf(c.Fn).Pointer())
	if f == nil {
		return "<unknown>"
	}
	return f.Name()
}

func (c *FunctionCase) ShortDescription() ldvalue.OptionalString {
	if c.Description == "" {
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString(c.Description)
}

func (c *FunctionCase) unreliableID() {}

func (c *FunctionCase) String() string {
	return fmt.Sprintf("FunctionCase(%s)", c.ID())
}

func (c *FunctionCase) Run(r Result) {
	r.StartTest(c)
	defer r.StopTest(c)

	if c.SetUp != nil {
		if err := callProtected(c.SetUp); err != nil {
			report(r, c, err)
			return
		}
	}
	err := callProtected(c.Fn)
	if c.TearDown != nil {
		if tdErr := callProtected(c.TearDown); tdErr != nil && err == nil {
			err = tdErr
		}
	}
	report(r, c, err)
}

func report(r Result, c Case, err error) {
	var skip SkipError
	var failure FailureError
	switch {
	case err == nil:
		r.AddSuccess(c)
	case errors.As(err, &skip):
		r.AddSkip(c, skip.Reason)
	case errors.As(err, &failure):
		r.AddFailure(c, err)
	default:
		r.AddError(c, err)
	}
}

func callProtected(fn func() error) (err error) {
	if fn == nil {
		return errors.New("no test function")
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				var skip SkipError
				if errors.As(e, &skip) {
					err = e
					return
				}
			}
			err = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
		}
	}()
	return fn()
}
