package attendance

import "context"

// ClockService implements the per-day attendance state machine:
// NONE → ONGOING → BREAK → ONGOING → DONE. Events for the same employee
// are serialized; repeating an event on an already-transitioned record
// is rejected, never silently reapplied.
type ClockService interface {
	// TimeIn opens (or resumes) today's record. On FIXED schedules an
	// early arrival is clamped forward to the scheduled start. Rejected
	// while on break.
	TimeIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// TimeOut closes today's record, computing worked hours and overtime
	// according to the schedule type and overtime policy.
	TimeOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// LunchIn starts (or resumes) the lunch break. On FIXED schedules
	// the event must fall inside the lunch window.
	LunchIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// LunchOut ends the lunch break. On FIXED schedules a late return is
	// capped at the scheduled lunch end.
	LunchOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// Today returns the employee's record for the current day.
	Today(ctx context.Context, employeeID string) (AttendanceResponse, error)
}

// AttendanceService defines administrative operations on attendance
// day-records.
type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)

	List(ctx context.Context) ([]AttendanceResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, id string) error
}
