// Package errors provides structured error handling for the Ember runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a container stack usage error.
	KindLayout
	// KindState indicates a widget state store error.
	KindState
	// KindStyle indicates a style stack usage error.
	KindStyle
	// KindInput indicates an input snapshot error.
	KindInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindState:
		return "state"
	case KindStyle:
		return "style"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Ember runtime.
type Error struct {
	// Op is the operation that failed (e.g., "ui.EndRow").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a structured Error stamped with the current time.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs a structured Error from a format string.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// StateConflictError reports that two incompatible widget kinds share
// one widget identifier. The state store refuses the lookup rather than
// silently rebinding the persisted record.
type StateConflictError struct {
	// ID is the colliding widget identifier.
	ID uint64
	// Registered is the widget kind that first claimed the identifier.
	Registered string
	// Requested is the widget kind that attempted the conflicting lookup.
	Requested string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("widget id %#x registered by %q, requested as %q", e.ID, e.Registered, e.Requested)
}

// Handler receives errors reported by the Ember runtime.
type Handler interface {
	// HandleError is called when a usage error occurs during a frame.
	HandleError(err *Error)
}
