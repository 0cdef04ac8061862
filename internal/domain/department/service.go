package department

import (
	"context"

	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
)

// DepartmentService defines business logic for department management.
type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)

	Get(ctx context.Context, id string) (DepartmentResponse, error)

	List(ctx context.Context) ([]DepartmentResponse, error)

	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)

	// Delete removes the department together with its schedules and
	// detaches its members, all in one transaction.
	Delete(ctx context.Context, id string) error

	// Members returns the employees assigned to the department.
	Members(ctx context.Context, id string) ([]employee.EmployeeResponse, error)

	// Leader returns the department leader.
	Leader(ctx context.Context, id string) (employee.EmployeeResponse, error)

	// AssignEmployee sets an employee's role (uppercased) and department.
	AssignEmployee(ctx context.Context, req AssignEmployeeRequest) error

	// RemoveEmployee clears an employee's role and department.
	// requesterID guards against removing yourself.
	RemoveEmployee(ctx context.Context, req RemoveEmployeeRequest, requesterID string) error

	// AssignLeader promotes an admin or team leader to department leader
	// and joins them to the department.
	AssignLeader(ctx context.Context, req AssignLeaderRequest) error

	// RemoveLeader demotes the current leader and detaches them.
	RemoveLeader(ctx context.Context, departmentID string) error
}
