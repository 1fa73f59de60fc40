// Package errors provides error wrapping with slog annotations and source
// locations, plus re-exports of the standard library helpers so callers only
// need one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, an optional wrapped error, slog
// attributes, and the source location where it was created.
type annotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerSource returns the file:line of the caller skip+1 frames up.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	// Trim to the last two path segments to keep log lines short.
	parts := strings.Split(file, "/")
	if len(parts) > 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// New returns an annotated error with the given message.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		err:    nil,
		attrs:  attrs,
		source: callerSource(1),
	}
}

// NewSentinel returns an error meant to be declared as a package-level
// sentinel and matched with Is.
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:    msg,
		err:    nil,
		attrs:  nil,
		source: callerSource(1),
	}
}

// Wrap annotates err with a message and optional slog attributes. A nil err
// is allowed and produces an error with just the message, so callers don't
// need to guard the degenerate case.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		err:    err,
		attrs:  attrs,
		source: callerSource(1),
	}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the panic site.
func DecoratePanic(recovered any) error {
	source := "unknown"
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			file := frame.File
			parts := strings.Split(file, "/")
			if len(parts) > 2 {
				file = strings.Join(parts[len(parts)-2:], "/")
			}
			source = fmt.Sprintf("%s:%d", file, frame.Line)
			break
		}
		if !more {
			break
		}
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		err:    nil,
		attrs:  nil,
		source: source,
	}
}

// SlogError renders err as a structured "error" group attribute containing
// the message, the innermost annotated source location, and all annotations
// collected along the wrap chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		source      string
		annotations []any
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		var annotated *annotatedError
		if errors.As(e, &annotated) {
			source = annotated.source
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			e = annotated
		} else {
			break
		}
	}

	args := []any{slog.String("message", err.Error())}
	if source != "" {
		args = append(args, slog.String("source", source))
	}
	if len(annotations) > 0 {
		args = append(args, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join wraps the given errors into a single error.
func Join(errs ...error) error { return errors.Join(errs...) }
