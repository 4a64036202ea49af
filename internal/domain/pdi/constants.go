package pdi

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var Statuses = []Status{StatusActive, StatusDraft, StatusCompleted}

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not-started"
	GoalInProgress GoalStatus = "in-progress"
	GoalCompleted  GoalStatus = "completed"
)

var GoalStatuses = []GoalStatus{GoalNotStarted, GoalInProgress, GoalCompleted}

const (
	BucketActive    = "active"
	BucketDraft     = "draft"
	BucketCompleted = "completed"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
	CreateHref           = "/pdi/new"
	CreateLabel          = "Create New PDI"
)
