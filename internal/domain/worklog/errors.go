package worklog

import "errors"

var (
	ErrWorkLogNotFound = errors.New("work log not found")
	ErrEmptyWeek       = errors.New("no work logs recorded for the requested week")
)
