package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoDocument indicates no file was given to view.
	ErrNoDocument = errors.New("no document to view")
)

// LoadError indicates the line source for a document could not be read.
// Fatal: it aborts startup before the event loop begins.
type LoadError struct {
	Path string
	Err  error
}

// NewLoadError creates a LoadError for the given path.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError indicates a component failed to initialize.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError indicates a terminal control or input read failure. Fatal:
// once the screen state is unverifiable the session cannot safely continue,
// so it propagates to the top level where terminal mode is restored
// best-effort and a diagnostic is printed.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
