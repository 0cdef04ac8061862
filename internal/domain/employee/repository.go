package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByUsername(ctx context.Context, username string) (Employee, error)

	// List retrieves employees, optionally filtered by access level
	// (nil means all).
	List(ctx context.Context, accessLevel *AccessLevel) ([]Employee, error)

	// ListByDepartment retrieves all members of a department.
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	// Update writes the full employee row.
	Update(ctx context.Context, employee Employee) error

	// SetActive toggles the clocked-in flag.
	SetActive(ctx context.Context, id string, active bool) error

	// AssignDepartment sets role and department in one statement. A nil
	// role together with a nil departmentID clears the assignment.
	AssignDepartment(ctx context.Context, id string, role *string, departmentID *string) error

	Delete(ctx context.Context, id string) error
}
