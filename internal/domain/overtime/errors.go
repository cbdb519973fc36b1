package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime request not found")
	ErrAlreadyProcessed = errors.New("overtime request already processed")
	ErrNotRequestOwner  = errors.New("overtime request belongs to another user")
	ErrInvalidTimeRange = errors.New("overtime end must not precede start")
)
