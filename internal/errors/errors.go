// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so callers can tell a broken storage backend apart
// from a bad configuration without matching on strings.
//
// Underlying errors stay reachable through Unwrap, so errors.Is and errors.As from
// the standard library keep working across a Wrap.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// StorageRead indicates the token could not be read from storage.
	StorageRead Kind = "storage_read"
	// StorageWrite indicates the token could not be written to or removed from storage.
	StorageWrite Kind = "storage_write"
	// StorageUnavailable indicates an explicitly requested backend cannot be opened.
	StorageUnavailable Kind = "storage_unavailable"
	// InvalidConfig indicates a configuration value that cannot be used.
	InvalidConfig Kind = "invalid_config"
	// WatchFailed indicates the storage change watcher could not be started.
	WatchFailed Kind = "watch_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether any error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	return stderrors.Is(err, &E{Kind: kind})
}
