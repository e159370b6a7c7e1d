package suites

import (
	"log"
	"os"
	"sync"

	"github.com/launchdarkly/go-test-suites/framework"
)

var (
	warningLogger framework.Logger = log.New(os.Stderr, "", log.LstdFlags)
	warningLock   sync.Mutex
)

// SetWarningLogger sets where deprecation warnings are written, and returns the previous
// logger. A nil logger discards warnings.
func SetWarningLogger(logger framework.Logger) framework.Logger {
	if logger == nil {
		logger = framework.NullLogger()
	}
	warningLock.Lock()
	defer warningLock.Unlock()
	previous := warningLogger
	warningLogger = logger
	return previous
}

func warnDeprecatedVisitor() {
	warningLock.Lock()
	logger := warningLogger
	warningLock.Unlock()
	logger.Printf("%s", DeprecatedVisitorWarning{})
}

// Visit calls visitor with every leaf test of test, in the order IterateTests yields
// them.
//
// Deprecated: use IterateTests.
func Visit(test Test, visitor Visitor) {
	warnDeprecatedVisitor()
	for t := range IterateTests(test) {
		visitor(t)
	}
}
