package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("step failed: %w", &NavigationError{URL: "http://localhost:3000/", Err: cause})

	var nav *NavigationError
	if !errors.As(err, &nav) {
		t.Fatal("expected NavigationError through the wrap chain")
	}
	if nav.URL != "http://localhost:3000/" {
		t.Errorf("unexpected URL: %s", nav.URL)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the underlying cause to be reachable")
	}
}

func TestElementNotFoundError_Message(t *testing.T) {
	err := &ElementNotFoundError{Name: "Rectangle"}
	if err.Error() != `control "Rectangle" not found` {
		t.Errorf("unexpected message: %s", err.Error())
	}

	withCause := &ElementNotFoundError{Name: "Rough", Err: errors.New("a11y tree: timeout")}
	if withCause.Unwrap() == nil {
		t.Error("expected cause to unwrap")
	}
}

func TestExitCode_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&NavigationError{URL: "http://localhost:3000/", Err: errors.New("refused")}, 2},
		{&ElementNotFoundError{Name: "Rectangle"}, 3},
		{&InteractionError{Op: "drag", Err: errors.New("dispatch failed")}, 4},
		{&ArtifactWriteError{Path: "verification.png", Err: errors.New("permission denied")}, 5},
		{errors.New("something else"), 1},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestExitCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("run: %w", &ArtifactWriteError{Path: "out.png", Err: errors.New("disk full")})
	if got := exitCode(err); got != 5 {
		t.Errorf("expected 5 for wrapped ArtifactWriteError, got %d", got)
	}
}
