package suites

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// RerunCommand returns a shell-quoted -run argument that selects exactly the failed
// tests. The IDs are combined into a single anchored alternation, since a repeated -run
// flag only keeps its last value. Slashes are bracketed so that go test does not split
// the pattern into per-level subtest patterns.
func RerunCommand(results Results) string {
	if len(results.Failures) == 0 {
		return ""
	}
	var b commandBuilder
	b.add("-run", rerunPattern(results))
	return b.String()
}

func rerunPattern(results Results) string {
	ids := make([]string, 0, len(results.Failures))
	for _, f := range results.Failures {
		ids = append(ids, strings.ReplaceAll(regexp.QuoteMeta(f.ID), "/", "[/]"))
	}
	return "^(" + strings.Join(ids, "|") + ")$"
}

// PrintResults writes a summary of the results.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		color.New(color.FgGreen).Fprintf(dest, "All %d tests passed\n", len(results.Tests))
		return
	}
	failed := color.New(color.FgRed, color.Bold)
	failed.Fprintf(dest, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "* %s\n", f.ID)
	}
	fmt.Fprintf(dest, "\nTo rerun the failed tests: %s\n", RerunCommand(results))
}
