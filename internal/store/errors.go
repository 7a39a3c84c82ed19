package store

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	// ErrEmpty is returned by a Backend that has never been written.
	ErrEmpty = errors.New("backend is empty")
)

// ValidationError reports an empty required field. No mutation happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	return fmt.Sprintf("%s %s", e.Field, reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an id absent from the store. Ids are always sourced
// from the store, so callers should treat it as a sync fault.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notebookNotFound(id string) error {
	return &NotFoundError{Kind: "notebook", ID: id}
}

func noteNotFound(id string) error {
	return &NotFoundError{Kind: "note", ID: id}
}
