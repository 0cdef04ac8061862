package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/auth"
	"github.com/workpulse/timeclock-backend-go/internal/domain/department"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
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
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token is missing")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrNotAssigned):
		BadRequest(w, "Employee has no department or role assigned", nil)
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own account", nil)
	case errors.Is(err, employee.ErrCannotRemoveSelf):
		BadRequest(w, "You cannot remove yourself from the department", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrLeaderNotFound):
		NotFound(w, "Leader not found")
	case errors.Is(err, department.ErrNoLeader):
		NotFound(w, "Department has no leader")
	case errors.Is(err, department.ErrLeaderNotEligible):
		BadRequest(w, "Employee is not an admin or team leader", nil)
	case errors.Is(err, department.ErrNoMembers):
		NotFound(w, "No employees found in this department")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		BadRequest(w, "No schedule found for this role and department", nil)
	case errors.Is(err, schedule.ErrDepartmentScheduleNotFound):
		NotFound(w, "Department schedule not found")

	// Attendance clock errors
	case errors.Is(err, attendance.ErrNoRecordToday):
		BadRequest(w, "No attendance record for today", nil)
	case errors.Is(err, attendance.ErrOnBreak):
		BadRequest(w, "Currently on break", nil)
	case errors.Is(err, attendance.ErrOnLeave):
		BadRequest(w, "Attendance day is marked as leave", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, "Already clocked out", nil)
	case errors.Is(err, attendance.ErrNoTimeIn):
		BadRequest(w, "Time in is required", nil)
	case errors.Is(err, attendance.ErrLunchTooEarly):
		BadRequest(w, "Lunch time in is too early", nil)
	case errors.Is(err, attendance.ErrLunchTooLate):
		BadRequest(w, "Lunch time in is too late", nil)
	case errors.Is(err, attendance.ErrLunchNotStarted):
		BadRequest(w, "Lunch has not been started", nil)
	case errors.Is(err, attendance.ErrLunchAlreadyEnded):
		BadRequest(w, "Lunch has already ended", nil)

	// Attendance CRUD errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		BadRequest(w, "Attendance record for that day already exists", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
