// Package linkcheck is a smoke-test fixture for build and packaging layers:
// a small library compiled together with an external JSON dependency, plus
// a pass/fail check that the library behaves as expected once built.
package linkcheck

// Magic is the fixture constant. It is fixed at compile time, shared by all
// Example values, and never mutated; the verify command compares accessor
// output against it.
const Magic = "cpp-example-lib Magic: 123456789"

// Example is the library component under test. The zero value resolves the
// JSON library version from the binary's build info; NewExample allows
// injecting another reporter.
type Example struct {
	reporter VersionReporter
}

// NewExample constructs an Example with the given options.
func NewExample(opts ...Option) Example {
	return Example{reporter: resolveOptions(opts).reporter}
}

// String returns the fixture constant.
func (Example) String() string {
	return Magic
}

// JSONLibVersion reports the external JSON library's version, forwarding the
// reporter's result unchanged.
func (e Example) JSONLibVersion() (string, error) {
	if e.reporter == nil {
		return BuildInfoReporter{}.Version()
	}

	return e.reporter.Version()
}
