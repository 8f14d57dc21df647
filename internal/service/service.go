// Package service hosts the lifecycle engine: every mutating operation on
// matters, documents, and revisions validates its preconditions, applies the
// state change, and appends the matching activity record inside one
// transaction. Failures surface as typed sentinel errors plus a structured
// log entry; no partial state is ever left behind.
package service

import (
	"errors"

	"lexvault/internal/domain"
)

// isExpected distinguishes typed domain outcomes (not-found, conflict,
// validation) from storage faults, so callers of the loggers below pick
// warn vs error level.
func isExpected(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidInput,
		domain.ErrMatterNotFound,
		domain.ErrDocumentNotFound,
		domain.ErrRevisionNotFound,
		domain.ErrAlreadyDeleted,
		domain.ErrNotDeleted,
		domain.ErrMatterDeleted,
		domain.ErrDocumentDeleted,
		domain.ErrDocumentCheckedOut,
		domain.ErrDocumentNotCheckedOut,
		domain.ErrFileNameTaken,
		domain.ErrDocumentNotInMatter,
		domain.ErrSameMatter,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
