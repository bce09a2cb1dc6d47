package assertions

// Reporter receives every failure and usage error raised by an expectation.
// Implementations either stop the caller (panic, t.FailNow) or record the
// error and return.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

// Panic raises err by panicking with it. It is the default reporter.
var Panic Reporter = ReporterFunc(func(err error) {
	panic(err)
})
