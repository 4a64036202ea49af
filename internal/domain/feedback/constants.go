package feedback

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every session status in display order.
var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled}

type ActionStatus string

const (
	ActionNotStarted ActionStatus = "not-started"
	ActionInProgress ActionStatus = "in-progress"
	ActionCompleted  ActionStatus = "completed"
)

var ActionStatuses = []ActionStatus{ActionNotStarted, ActionInProgress, ActionCompleted}

const (
	BucketUpcoming  = "upcoming"
	BucketCompleted = "completed"
	BucketCancelled = "cancelled"
)

const (
	NotesMaxLength = 500
	CreateHref     = "/feedback/new"
	CreateLabel    = "Schedule New Session"
)
