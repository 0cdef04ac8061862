package schedule

import "context"

// DepartmentScheduleService defines business logic for managing the
// (department, role) → schedule mappings consulted by clock events.
type DepartmentScheduleService interface {
	Create(ctx context.Context, req CreateDepartmentScheduleRequest) (DepartmentScheduleResponse, error)

	Get(ctx context.Context, id string) (DepartmentScheduleResponse, error)

	// List retrieves all mappings, optionally scoped to one department.
	List(ctx context.Context, departmentID *string) ([]DepartmentScheduleResponse, error)

	Update(ctx context.Context, req UpdateDepartmentScheduleRequest) (DepartmentScheduleResponse, error)

	Delete(ctx context.Context, id string) error
}
