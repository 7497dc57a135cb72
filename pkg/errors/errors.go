// Package errors provides structured reporting for failures at the boundary
// between the widget tree and its host (renderer, configuration, platform).
//
// Tree operations themselves never fail with an error: invalid operations
// are no-ops that return false or nil. Only host and backend calls produce
// the errors reported here.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a renderer upload, release or present failure.
	KindRender
	// KindConfig indicates a configuration load or validation failure.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// SlateError represents a structured error reported by the toolkit.
type SlateError struct {
	// Op is the operation that failed (e.g., "canvas.Flush").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Object is the name of the widget involved, if any.
	Object string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SlateError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("%s [%s] object=%s: %v", e.Op, e.Kind, e.Object, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SlateError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "canvas.Flush").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SlateError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
