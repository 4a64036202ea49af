package notifications

const (
	TypeFeedbackScheduled = "feedback_scheduled"
	TypeGoalApproved      = "goal_approved"
	TypeReminder          = "reminder"
)

const DefaultLimit = 20
