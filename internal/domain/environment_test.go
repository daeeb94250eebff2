package domain

import (
	"reflect"
	"testing"
)

func TestEnvAssignmentString(t *testing.T) {
	cases := []struct {
		in   EnvAssignment
		want string
	}{
		{EnvAssignment{Key: "FOO", Value: "bar"}, "FOO=bar"},
		{EnvAssignment{Key: "BAZ", Value: " qux"}, "BAZ= qux"},
		{EnvAssignment{Key: "EMPTY", Value: ""}, "EMPTY="},
		{EnvAssignment{Key: "EQ", Value: "a=b"}, "EQ=a=b"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestEnvAssignmentListStringsKeepsOrder(t *testing.T) {
	l := EnvAssignmentList{
		{Key: "B", Value: "1"},
		{Key: "A", Value: "2"},
		{Key: "B", Value: "3"},
	}

	want := []string{"B=1", "A=2", "B=3"}
	if got := l.Strings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Strings() = %v, want %v", got, want)
	}
	if got := l.Keys(); !reflect.DeepEqual(got, []string{"B", "A", "B"}) {
		t.Fatalf("Keys() = %v", got)
	}
}

func TestEnvAssignmentListLookupLastWins(t *testing.T) {
	l := EnvAssignmentList{
		{Key: "FOO", Value: "first"},
		{Key: "FOO", Value: "second"},
	}

	got, ok := l.Lookup("FOO")
	if !ok || got != "second" {
		t.Fatalf("expected second, got %q (ok=%v)", got, ok)
	}
	if _, ok := l.Lookup("MISSING"); ok {
		t.Fatalf("expected missing key to be absent")
	}
}

func TestEmptyListRendersEmpty(t *testing.T) {
	var l EnvAssignmentList
	if got := l.Strings(); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
