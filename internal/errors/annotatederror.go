// Package errors wraps the standard library errors package with errors that carry structured slog annotations and
// the source location where they were created.
//
// Use Wrap instead of fmt.Errorf when the error will be logged and you want the attributes available at the wrapping
// site to end up in the log line.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

type sentinelError struct {
	msg string
}

func (e *sentinelError) Error() string {
	return e.msg
}

// NewSentinel creates a comparable error value meant to be declared at package level and matched with Is.
func NewSentinel(msg string) error {
	return &sentinelError{msg: msg}
}

type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC and the exported constructor.
	runtime.Callers(skip+3, pcs[:]) //nolint:mnd // see above
	return pcs[0]
}

// New creates a new error annotated with attrs and the caller's source location.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		cause: nil,
		attrs: attrs,
		pc:    callerPC(0),
	}
}

// Wrap annotates err with msg and attrs. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		pc:    callerPC(0),
	}
}

// DecoratePanic converts a recovered panic value into an error pointing at the panicking line.
//
// It must be called directly from the deferred function that called recover.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	var cause error
	if err, ok := excp.(error); ok {
		cause = err
	} else {
		cause = &sentinelError{msg: fmt.Sprint(excp)}
	}
	return &annotatedError{
		msg:   "panic",
		cause: cause,
		attrs: nil,
		pc:    panicPC(),
	}
}

// panicPC returns the program counter of the frame that called panic.
func panicPC() uintptr {
	pcs := make([]uintptr, 32)   //nolint:mnd // deep enough for any recover chain
	n := runtime.Callers(3, pcs) //nolint:mnd // skip runtime.Callers, panicPC and DecoratePanic
	frames := runtime.CallersFrames(pcs[:n])
	var (
		fallback uintptr
		sawPanic bool
		frame    runtime.Frame
		more     = true
	)
	for more {
		frame, more = frames.Next()
		if fallback == 0 {
			fallback = frame.PC
		}
		if strings.HasPrefix(frame.Function, "runtime.") {
			if strings.Contains(frame.Function, "panic") {
				sawPanic = true
			}
			continue
		}
		if sawPanic {
			return frame.PC
		}
	}
	return fallback
}

// SlogError converts err into a slog attribute group containing the message, every annotation in the error chain,
// and the source location of the innermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}

	var (
		attrs []any
		pc    uintptr
	)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		ae, ok := e.(*annotatedError)
		if !ok {
			continue
		}
		for _, a := range ae.attrs {
			attrs = append(attrs, a)
		}
		if ae.pc != 0 {
			pc = ae.pc
		}
	}

	groupAttrs := []any{slog.String("message", err.Error())}
	if len(attrs) > 0 {
		groupAttrs = append(groupAttrs, slog.Group("annotations", attrs...))
	}
	if pc != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		if frame.File != "" {
			groupAttrs = append(groupAttrs, slog.String("source", fmt.Sprintf("%s:%d", frame.File, frame.Line)))
		}
	}
	return slog.Group("error", groupAttrs...)
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
