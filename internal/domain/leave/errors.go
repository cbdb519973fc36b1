package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrNotRequestOwner      = errors.New("leave request belongs to another user")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
)
