package scheduler

import "errors"

var (
	// ErrNoSubjects is returned when a plan is requested without any subject.
	ErrNoSubjects = errors.New("scheduler: at least one subject is required")
	// ErrInvalidTime is returned for clock values that are not "HH:MM".
	ErrInvalidTime = errors.New("scheduler: invalid time of day")
)
