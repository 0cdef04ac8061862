package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees, or only those with the given access
	// level when one is provided.
	List(ctx context.Context, accessLevel *AccessLevel) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee. requesterID guards against self-deletion.
	Delete(ctx context.Context, id string, requesterID string) error
}
