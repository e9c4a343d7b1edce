// Package errors classifies the failures the browser can report.
//
// Every error leaving a package boundary is an *Error carrying a Kind, so
// callers can decide between degrading (preview, search), reporting (paste,
// navigation) and aborting (configuration) without string matching:
//
//	if errors.Is(err, apperrors.InvalidDirectory) { ... }
//
// Causes are wrapped with github.com/go-errors/errors so the debug log can
// print where a failure originated.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Re-exported so callers only need one errors import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Kind is the failure category of an *Error.
type Kind int

const (
	Unknown Kind = iota
	// IOFailure covers directory reads and copy/remove/create failures.
	IOFailure
	// InvalidDirectory means a navigation target is missing or not canonicalisable.
	InvalidDirectory
	// UnknownHint means a hint code has no row.
	UnknownHint
	// ExternalProcessFailure covers search/preview/editor invocation and decoding.
	ExternalProcessFailure
	// ConfigError means a malformed configuration or binding value.
	ConfigError
	// InvalidInput rejects omnibar submissions before anything is touched.
	InvalidInput
)

var kindNames = map[Kind]string{
	Unknown:                "unknown error",
	IOFailure:              "i/o failure",
	InvalidDirectory:       "invalid directory",
	UnknownHint:            "unknown hint",
	ExternalProcessFailure: "external process failure",
	ConfigError:            "configuration error",
	InvalidInput:           "invalid input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error lets a Kind be used directly as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a classified failure of a single operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches both Kind targets and other *Error values of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return t.Op == "" && t.Path == "" && t.Err == nil && e.Kind == t.Kind
	}
	return false
}

// New classifies err. A nil err yields an *Error without cause.
func New(kind Kind, op, path string, err error) *Error {
	if err != nil {
		var traced *goerrors.Error
		if !errors.As(err, &traced) {
			err = goerrors.Wrap(err, 1)
		}
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Newf builds an *Error whose cause is a formatted message.
func Newf(kind Kind, op, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: goerrors.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Stack returns the recorded stack of err's cause, or "" when none was recorded.
func Stack(err error) string {
	var traced *goerrors.Error
	if errors.As(err, &traced) {
		return string(traced.Stack())
	}
	return ""
}
