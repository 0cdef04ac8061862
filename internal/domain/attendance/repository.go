package attendance

import "context"

// AttendanceRepository defines data access methods for attendance
// day-records. The single-record-per-day invariant is enforced by
// callers querying GetByEmployeeAndDate before every Create.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the day-record for an employee on a
	// calendar day ("2006-01-02"). Returns (nil, nil) when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Update writes the full row: nil clock fields clear the columns, so
	// every field write is an explicit set/keep/clear decision made by
	// the caller on the loaded entity.
	Update(ctx context.Context, attendance Attendance) error

	List(ctx context.Context) ([]Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	ListByEmployees(ctx context.Context, employeeIDs []string, dateFilter *string) ([]Attendance, error)

	Delete(ctx context.Context, id string) error
}
