package framework

// TestLogger receives lifecycle notifications for each test as a result collector sees
// them. Test IDs are the values returned by the tests' ID methods.
type TestLogger interface {
	TestStarted(id string)
	TestError(id string, err error)
	TestFinished(id string, failed bool, debugOutput CapturedOutput)
	TestSkipped(id string, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string)                        {}
func (n nullTestLogger) TestError(string, error)                   {}
func (n nullTestLogger) TestFinished(string, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(string, string)                {}

// NullTestLogger returns a TestLogger that ignores all notifications.
func NullTestLogger() TestLogger { return nullTestLogger{} }
