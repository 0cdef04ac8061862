package schedule

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DepartmentScheduleRepository defines data access for the
// (department, role) → schedule mapping and the schedules behind it.
type DepartmentScheduleRepository interface {
	// Create inserts the schedule and its department mapping.
	Create(ctx context.Context, ds DepartmentSchedule, s Schedule) (DepartmentSchedule, error)

	GetByID(ctx context.Context, id string) (DepartmentSchedule, error)

	// List retrieves all mappings, or only those of one department when
	// departmentID is non-nil. Schedules are joined in.
	List(ctx context.Context, departmentID *string) ([]DepartmentSchedule, error)

	// ResolveForRole finds the schedule for a (department, role) pair.
	// Roles are matched uppercased. Returns ErrScheduleNotFound when no
	// mapping exists. Consulted fresh on every clock event.
	ResolveForRole(ctx context.Context, departmentID string, role string) (Schedule, error)

	// Update writes the full mapping and schedule rows.
	Update(ctx context.Context, ds DepartmentSchedule, s Schedule) error

	// Delete removes the mapping together with its schedule.
	Delete(ctx context.Context, id string) error

	// DeleteByDepartmentTx removes all mappings and schedules of a
	// department inside an existing transaction.
	DeleteByDepartmentTx(ctx context.Context, tx pgx.Tx, departmentID string) error
}
