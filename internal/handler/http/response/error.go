package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

var (
	ErrInvalidToken          = errors.New("invalid or missing access token")
	ErrManagerAccessRequired = errors.New("manager access required")
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMode):
		BadRequest(w, "Lateness mode must be tolerance or badge", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTeamNotFound):
		NotFound(w, "Team not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave period not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrLeaveAlreadyHandled):
		Conflict(w, "Leave period already accepted")
	case errors.Is(err, leave.ErrNotLeaveOwner):
		Forbidden(w, "Leave period belongs to another user")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
