package pdi

import "errors"

var (
	ErrPlanNotFound  = errors.New("development plan not found")
	ErrUnknownStatus = errors.New("unknown development plan status")
	ErrGoalIndex     = errors.New("goal index out of range")
	ErrTaskIndex     = errors.New("task index out of range")
)
