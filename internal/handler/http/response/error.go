package response

import (
	"errors"
	"net/http"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/auth"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrPrivilegedRoleRequired):
		Forbidden(w, "Admin access required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another user")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Unknown leave type", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrNotRequestOwner):
		Forbidden(w, "Overtime request belongs to another user")
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		BadRequest(w, "Overtime end must not precede start", nil)

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrLabelNotFound):
		NotFound(w, "Document label not found")
	case errors.Is(err, document.ErrAlreadyProcessed):
		Conflict(w, "Document already processed")
	case errors.Is(err, document.ErrNotDocumentOwner):
		Forbidden(w, "Document belongs to another user")
	case errors.Is(err, document.ErrMissingLeaveField):
		BadRequest(w, "Leave attendance documents require leave_type, start_date and end_date", nil)

	// Work log domain errors
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Work log not found")
	case errors.Is(err, worklog.ErrEmptyWeek):
		BadRequest(w, "No work logs recorded for the requested week", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
