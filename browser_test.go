package main

import (
	"context"
	"testing"
)

func TestSessionClose_Once(t *testing.T) {
	browserCalls := 0
	allocCalls := 0
	s := &Session{
		ctx:           context.Background(),
		browserCancel: func() { browserCalls++ },
		allocCancel:   func() { allocCalls++ },
	}

	s.Close()
	s.Close()
	s.Close()

	if browserCalls != 1 {
		t.Errorf("browser cancel ran %d times, want 1", browserCalls)
	}
	if allocCalls != 1 {
		t.Errorf("allocator cancel ran %d times, want 1", allocCalls)
	}
}

func TestSessionClose_DeferredOnError(t *testing.T) {
	closed := false
	s := &Session{
		ctx:           context.Background(),
		browserCancel: func() { closed = true },
		allocCancel:   func() {},
	}

	// Mirror the shape of run(): the deferred Close must fire even
	// when the verification step fails.
	func() {
		defer s.Close()
		_ = &InteractionError{Op: "drag"}
	}()

	if !closed {
		t.Error("session not released on the failure path")
	}
}
