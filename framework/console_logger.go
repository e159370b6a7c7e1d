package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	errorColor   = color.New(color.FgRed)
	skippedColor = color.New(color.FgYellow)
)

// ConsoleTestLogger is a TestLogger that writes a line per test to Output, or to standard
// output if Output is nil.
type ConsoleTestLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id string) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id string, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		errorColor.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id string, failed bool, debugOutput CapturedOutput) {
	if failed {
		failedColor.Fprintf(c.out(), "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id string, reason string) {
	if reason == "" {
		skippedColor.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		skippedColor.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}
