package linkcheck

import (
	"strings"
	"testing"
)

func TestBuildInfoReporterFindsDependency(t *testing.T) {
	got, err := BuildInfoReporter{}.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty version")
	}
	if !strings.HasPrefix(got, "v") {
		t.Fatalf("expected module version, got %q", got)
	}
}

func TestExampleDefaultsToBuildInfo(t *testing.T) {
	want, err := BuildInfoReporter{}.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	got, err := Example{}.JSONLibVersion()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got != want {
		t.Fatalf("zero value returned %q, want %q", got, want)
	}
}
