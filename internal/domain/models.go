package domain

import (
	"time"

	"github.com/google/uuid"
)

// Matter is the top-level case folder that owns documents.
type Matter struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	IsArchived  bool      `db:"is_archived" json:"is_archived"`
	IsDeleted   bool      `db:"is_deleted" json:"is_deleted"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Document is a file-bearing entity owned by exactly one matter at a time.
type Document struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	MatterID     uuid.UUID  `db:"matter_id" json:"matter_id"`
	FileName     string     `db:"file_name" json:"file_name"`
	Extension    string     `db:"extension" json:"extension"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	MimeType     string     `db:"mime_type" json:"mime_type"`
	Checksum     string     `db:"checksum" json:"checksum"`
	IsCheckedOut bool       `db:"is_checked_out" json:"is_checked_out"`
	CheckedOutBy *uuid.UUID `db:"checked_out_by" json:"checked_out_by"`
	IsDeleted    bool       `db:"is_deleted" json:"is_deleted"`
	CreatedBy    uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Revision is a sequentially numbered snapshot of a document's content.
// RevisionNumber is assigned by the repository, never by callers.
type Revision struct {
	ID             uuid.UUID `db:"id" json:"id"`
	DocumentID     uuid.UUID `db:"document_id" json:"document_id"`
	RevisionNumber int       `db:"revision_number" json:"revision_number"`
	Checksum       string    `db:"checksum" json:"checksum"`
	FileSize       int64     `db:"file_size" json:"file_size"`
	IsDeleted      bool      `db:"is_deleted" json:"is_deleted"`
	CreatedBy      uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// MatterActivity is an immutable audit row for a matter state transition.
type MatterActivity struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	MatterID  uuid.UUID      `db:"matter_id" json:"matter_id"`
	Action    ActivityAction `db:"action" json:"action"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// DocumentActivity is an immutable audit row for a document state transition.
type DocumentActivity struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	DocumentID uuid.UUID      `db:"document_id" json:"document_id"`
	Action     ActivityAction `db:"action" json:"action"`
	UserID     uuid.UUID      `db:"user_id" json:"user_id"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// RevisionActivity is an immutable audit row for a revision state transition.
type RevisionActivity struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	RevisionID uuid.UUID      `db:"revision_id" json:"revision_id"`
	Action     ActivityAction `db:"action" json:"action"`
	UserID     uuid.UUID      `db:"user_id" json:"user_id"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// MatterDocumentActivity is an immutable audit row for a cross-matter
// document transfer. A single move or copy produces two rows, one per
// matter, tagged FROM and TO, sharing the same timestamp.
type MatterDocumentActivity struct {
	ID                  uuid.UUID         `db:"id" json:"id"`
	MatterID            uuid.UUID         `db:"matter_id" json:"matter_id"`
	CounterpartMatterID uuid.UUID         `db:"counterpart_matter_id" json:"counterpart_matter_id"`
	DocumentID          uuid.UUID         `db:"document_id" json:"document_id"`
	Action              ActivityAction    `db:"action" json:"action"`
	Direction           TransferDirection `db:"direction" json:"direction"`
	UserID              uuid.UUID         `db:"user_id" json:"user_id"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at"`
}
