package testing

import (
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// True asserts that v is true.
func True(t testing.TB, v bool) {
	t.Helper()

	if !v {
		t.Fatalf("expected true")
	}
}

// False asserts that v is false.
func False(t testing.TB, v bool) {
	t.Helper()

	if v {
		t.Fatalf("expected false")
	}
}

// NoError asserts that err is nil.
func NoError(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got '%v'", err)
	}
}
