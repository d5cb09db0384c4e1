package syncing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// ValidationFailedError indicates a filled instance failed its schema
// before any network call was made. It never leaves the editing step.
type ValidationFailedError struct {
	Section types.SectionType
	Err     *sections.SectionError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("save aborted, section %s is invalid: %v", e.Section, e.Err)
}

func (e *ValidationFailedError) Unwrap() error {
	return e.Err
}

// SaveError indicates a network or server failure during a section
// save. The draft store is unchanged; the caller may retry, and
// navigation past the step stays blocked.
type SaveError struct {
	Section types.SectionType
	Cause   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save section %s: %v", e.Section, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// LoadError indicates a failure fetching an existing document.
type LoadError struct {
	ID    uuid.UUID
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resume %s: %v", e.ID, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// StaleResponseError indicates a response arrived for a document the
// session has since abandoned. The store discards it; user interfaces
// never surface this error.
type StaleResponseError struct {
	IssuedFor uuid.UUID
}

func (e *StaleResponseError) Error() string {
	return fmt.Sprintf("discarded stale response issued for document %s", e.IssuedFor)
}
