package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// ErrorKind classifies the per-path failures of a batch.
type ErrorKind int

// Available error kinds.
const (
	ErrorIO ErrorKind = iota
	ErrorNotFound
	ErrorNoMatch
	ErrorSkip
	ErrorRefuse
	ErrorIgnore
	ErrorAbort
	ErrorPath
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorIO:
		return "io"
	case ErrorNotFound:
		return "not_found"
	case ErrorNoMatch:
		return "no_match"
	case ErrorSkip:
		return "skip"
	case ErrorRefuse:
		return "refuse"
	case ErrorIgnore:
		return "ignore"
	case ErrorAbort:
		return "abort"
	case ErrorPath:
		return "path"
	default:
		return "unknown"
	}
}

// Error is the error type produced while processing a path.
type Error struct {
	Kind ErrorKind
	Path m.Path
	Err  error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrIO       = &Error{Kind: ErrorIO}
	ErrNotFound = &Error{Kind: ErrorNotFound}
	ErrNoMatch  = &Error{Kind: ErrorNoMatch}
	ErrSkip     = &Error{Kind: ErrorSkip}
	ErrRefuse   = &Error{Kind: ErrorRefuse}
	ErrIgnore   = &Error{Kind: ErrorIgnore}
	ErrAbort    = &Error{Kind: ErrorAbort}
	ErrPath     = &Error{Kind: ErrorPath}
)

func newError(kind ErrorKind, path m.Path, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorIO:
		return fmt.Sprintf("unable to rename %q: %v", string(e.Path), e.Err)
	case ErrorNotFound:
		return fmt.Sprintf("%q not found", string(e.Path))
	case ErrorNoMatch:
		return fmt.Sprintf("no match found for %q", string(e.Path))
	case ErrorSkip:
		return fmt.Sprintf("skipped %q", string(e.Path))
	case ErrorRefuse:
		return fmt.Sprintf("refused to rename %q", string(e.Path))
	case ErrorIgnore:
		return fmt.Sprintf("ignored %q", string(e.Path))
	case ErrorAbort:
		return "processing aborted"
	case ErrorPath:
		return fmt.Sprintf("unusable path: %v", e.Err)
	default:
		return "unknown processing error"
	}
}

// Is matches on the kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Declined reports whether the error stands for a user choice rather than a failure.
func (e *Error) Declined() bool {
	switch e.Kind {
	case ErrorSkip, ErrorRefuse, ErrorIgnore:
		return true
	default:
		return false
	}
}

// IsDeclined reports whether err is a user choice (skip, refuse, ignore).
func IsDeclined(err error) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}

	return perr.Declined()
}
