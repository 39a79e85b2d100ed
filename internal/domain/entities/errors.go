package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers. Callers match them with errors.Is.
var (
	// ErrInvalidArgument marks a caller-contract violation, such as sampling
	// without a party size or budget.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a lookup by name that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists marks an add that would duplicate an idea name.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorageUnavailable marks a source that could not be read.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrStorageWrite marks a failed persist; the operation did not succeed.
	ErrStorageWrite = errors.New("storage write failed")
)

// IdeaValidationError lists everything wrong with a candidate idea.
type IdeaValidationError struct {
	Name string
	Errs []error
}

func (e *IdeaValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	if e.Name == "" {
		return fmt.Sprintf("invalid idea: %s", strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("invalid idea %q: %s", e.Name, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *IdeaValidationError) Unwrap() error { return ErrInvalidArgument }
