// Package verrors provides structured error handling for the Vorb UI core.
//
// Widget-tree operations themselves never return errors; invalid input is
// reported through boolean results and malformed configuration degrades to
// deterministic geometry. verrors covers the boundaries around the core:
// the scene loader and the input dispatcher, where parse failures and
// recovered handler panics need a structured channel.
package verrors

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindParse indicates a scene or length parsing failure.
	KindParse
	// KindConfig indicates an invalid declarative configuration.
	KindConfig
	// KindDispatch indicates an event dispatch failure.
	KindDispatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Vorb UI core.
type Error struct {
	// Op is the operation that failed (e.g., "ui.LoadScene").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack for recovered panics.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error with the current timestamp.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Errorf constructs an Error from a format string.
func Errorf(op string, kind Kind, format string, args ...any) *Error {
	return E(op, kind, fmt.Errorf(format, args...))
}

// Handler receives structured errors the core cannot return to a caller.
type Handler interface {
	Handle(err *Error)
}

// Recover converts an in-flight panic into a KindPanic error and passes
// it to the handler. Call it deferred around listener callbacks:
//
//	defer verrors.Recover("event.DispatchMotion", handler)
//
// A nil handler falls back to the stderr log handler.
func Recover(op string, h Handler) {
	v := recover()
	if v == nil {
		return
	}
	if h == nil {
		h = &LogHandler{}
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("%v", v)
	}
	h.Handle(&Error{
		Op:         op,
		Kind:       KindPanic,
		Err:        err,
		StackTrace: string(debug.Stack()),
		Timestamp:  time.Now(),
	})
}
