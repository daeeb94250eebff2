package buildinfo

import (
	"strings"
	"testing"
)

func TestStringUsesStampedValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc1234", "2026-01-02"
	got := String()
	want := "launchenv v1.2.3 (commit=abc1234, date=2026-01-02)"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringDevBuild(t *testing.T) {
	if !strings.HasPrefix(String(), "launchenv ") {
		t.Fatalf("unexpected version string %q", String())
	}
}
