package brewkit

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "install", Package: "exa", Err: ErrPackageNotFound}
	if got, want := err.Error(), "install exa: package not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &Error{Op: "update", Err: ErrNotInstalled}
	if got, want := err.Error(), "update: homebrew not installed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "info", Package: "exa", Err: ErrPackageNotFound}
	if !errors.Is(err, ErrPackageNotFound) {
		t.Error("errors.Is() did not reach the wrapped sentinel")
	}
}
