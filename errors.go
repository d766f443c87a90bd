package main

import "fmt"

// NavigationError means the target app did not respond, or did not
// settle, within the navigation bound.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string { return fmt.Sprintf("navigate %s: %v", e.URL, e.Err) }
func (e *NavigationError) Unwrap() error { return e.Err }

// ElementNotFoundError means an expected labeled control is missing
// from the page — the UI contract with the app has changed.
type ElementNotFoundError struct {
	Name string
	Err  error
}

func (e *ElementNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("control %q not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("control %q not found", e.Name)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// InteractionError means a click or pointer dispatch failed against an
// element that was located.
type InteractionError struct {
	Op  string
	Err error
}

func (e *InteractionError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *InteractionError) Unwrap() error { return e.Err }

// ArtifactWriteError means the screenshot could not be written.
type ArtifactWriteError struct {
	Path string
	Err  error
}

func (e *ArtifactWriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *ArtifactWriteError) Unwrap() error { return e.Err }
