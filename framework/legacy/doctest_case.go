package legacy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DocTest is a group of examples extracted from documentation. Each example prints to a
// writer, and passes if the printed text matches Want after trimming surrounding
// whitespace, in the style of Go's testable examples.
type DocTest struct {
	Name     string
	File     string
	Examples []Example
}

type Example struct {
	Source string
	Run    func(w io.Writer)
	Want   string
}

// DocTestCase runs a DocTest as a single legacy case. Its ID is the file the examples came
// from, which is shared by every doctest in that file; its short description names the
// doctest itself.
type DocTestCase struct {
	Test *DocTest
}

func NewDocTestCase(test *DocTest) *DocTestCase {
	return &DocTestCase{Test: test}
}

func (c *DocTestCase) ID() string {
	if c.Test == nil {
		return "<nil>"
	}
	return c.Test.File
}

func (c *DocTestCase) ShortDescription() ldvalue.OptionalString {
	if c.Test == nil || c.Test.Name == "" {
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString("Doctest: " + c.Test.Name)
}

func (c *DocTestCase) Run(r Result) {
	r.StartTest(c)
	defer r.StopTest(c)

	if c.Test == nil {
		r.AddError(c, errors.New("doctest case has no doctest"))
		return
	}
	var failures []string
	for i, ex := range c.Test.Examples {
		got, err := runExample(ex)
		if err != nil {
			r.AddError(c, fmt.Errorf("example %d (%s): %w", i+1, ex.Source, err))
			return
		}
		if strings.TrimSpace(got) != strings.TrimSpace(ex.Want) {
			failures = append(failures, fmt.Sprintf("Failed example %d:\n    %s\nExpected:\n    %s\nGot:\n    %s",
				i+1, ex.Source, strings.TrimSpace(ex.Want), strings.TrimSpace(got)))
		}
	}
	if len(failures) > 0 {
		r.AddFailure(c, FailureError{Message: strings.Join(failures, "\n")})
		return
	}
	r.AddSuccess(c)
}

func (c *DocTestCase) unreliableID() {}

func runExample(ex Example) (output string, err error) {
	var buf bytes.Buffer
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic in example: %+v\n%s", r, string(debug.Stack()))
		}
	}()
	ex.Run(&buf)
	return buf.String(), nil
}
