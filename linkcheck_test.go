package linkcheck

import (
	"errors"
	"testing"
)

// staticReporter stands in for the external JSON library in tests.
type staticReporter struct {
	version string
	err     error
}

func (r staticReporter) Version() (string, error) {
	return r.version, r.err
}

func TestStringReturnsMagic(t *testing.T) {
	ex := NewExample()
	if got := ex.String(); got != Magic {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestStringSharedAcrossInstances(t *testing.T) {
	a := NewExample()
	b := Example{}
	if a.String() != b.String() {
		t.Fatalf("instances disagree: %q vs %q", a.String(), b.String())
	}
}

func TestStringIdempotent(t *testing.T) {
	ex := NewExample()
	first := ex.String()
	for i := 0; i < 3; i++ {
		if got := ex.String(); got != first {
			t.Fatalf("call %d returned %q, want %q", i, got, first)
		}
	}
}

func TestJSONLibVersionForwardsReporter(t *testing.T) {
	ex := NewExample(WithReporter(staticReporter{version: "v9.9.9"}))

	got, err := ex.JSONLibVersion()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got != "v9.9.9" {
		t.Fatalf("reporter output not forwarded unchanged: %q", got)
	}
}

func TestJSONLibVersionForwardsError(t *testing.T) {
	wantErr := errors.New("reporter broken")
	ex := NewExample(WithReporter(staticReporter{err: wantErr}))

	if _, err := ex.JSONLibVersion(); !errors.Is(err, wantErr) {
		t.Fatalf("expected reporter error, got %v", err)
	}
}

func TestJSONLibVersionIdempotent(t *testing.T) {
	ex := NewExample(WithReporter(staticReporter{version: "v1.2.0"}))

	first, err := ex.JSONLibVersion()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := ex.JSONLibVersion()
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("call %d returned %q, want %q", i, got, first)
		}
	}
}

func TestWithReporterNilKeepsDefault(t *testing.T) {
	opts := resolveOptions([]Option{WithReporter(nil)})
	if _, ok := opts.reporter.(BuildInfoReporter); !ok {
		t.Fatalf("expected BuildInfoReporter, got %T", opts.reporter)
	}
}
