package document

import "errors"

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrLabelNotFound     = errors.New("document label not found")
	ErrAlreadyProcessed  = errors.New("document already processed")
	ErrNotDocumentOwner  = errors.New("document belongs to another user")
	ErrMissingLeaveField = errors.New("leave attendance documents require leave_type, start_date and end_date")
)
