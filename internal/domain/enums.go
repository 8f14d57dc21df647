package domain

// ActivityAction identifies the kind of state transition an activity
// record captures.
type ActivityAction string

const (
	ActionCreated    ActivityAction = "created"
	ActionUpdated    ActivityAction = "updated"
	ActionDeleted    ActivityAction = "deleted"
	ActionRestored   ActivityAction = "restored"
	ActionCheckedIn  ActivityAction = "checked_in"
	ActionCheckedOut ActivityAction = "checked_out"
	ActionMoved      ActivityAction = "moved"
	ActionCopied     ActivityAction = "copied"
	ActionViewed     ActivityAction = "viewed"
)

// Valid reports whether the action is one of the known activity kinds.
func (a ActivityAction) Valid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionDeleted, ActionRestored,
		ActionCheckedIn, ActionCheckedOut, ActionMoved, ActionCopied, ActionViewed:
		return true
	}
	return false
}

// TransferDirection tags which side of a cross-matter transfer an
// activity record belongs to.
type TransferDirection string

const (
	DirectionFrom TransferDirection = "from"
	DirectionTo   TransferDirection = "to"
)

// Valid reports whether the direction is FROM or TO.
func (d TransferDirection) Valid() bool {
	return d == DirectionFrom || d == DirectionTo
}

// TransferMode selects between moving a document to another matter and
// copying it there.
type TransferMode string

const (
	TransferMove TransferMode = "move"
	TransferCopy TransferMode = "copy"
)

// Valid reports whether the mode is move or copy.
func (m TransferMode) Valid() bool {
	return m == TransferMove || m == TransferCopy
}

// Action returns the activity action recorded for this transfer mode.
func (m TransferMode) Action() ActivityAction {
	if m == TransferMove {
		return ActionMoved
	}
	return ActionCopied
}

// AllowedExtensions maps accepted document file extensions (without dot)
// to their MIME content types.
var AllowedExtensions = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"txt":  "text/plain",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}
