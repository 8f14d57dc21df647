package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrMatterNotFound   = errors.New("matter not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrRevisionNotFound = errors.New("revision not found")

	ErrAlreadyDeleted        = errors.New("entity is already deleted")
	ErrNotDeleted            = errors.New("entity is not deleted")
	ErrMatterDeleted         = errors.New("matter is deleted")
	ErrDocumentDeleted       = errors.New("document is deleted")
	ErrDocumentCheckedOut    = errors.New("document is checked out")
	ErrDocumentNotCheckedOut = errors.New("document is not checked out")
	ErrFileNameTaken         = errors.New("file name already exists in target matter")
	ErrDocumentNotInMatter   = errors.New("document does not belong to the source matter")
	ErrSameMatter            = errors.New("source and target matter are the same")
)
