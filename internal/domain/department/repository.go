package department

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)

	GetByID(ctx context.Context, id string) (Department, error)

	List(ctx context.Context) ([]Department, error)

	Update(ctx context.Context, department Department) error

	// SetLeader assigns or clears (nil) the department leader.
	SetLeader(ctx context.Context, id string, leaderID *string) error

	// DeleteTx removes the department inside an existing transaction.
	// Schedule cleanup and member detachment happen in the same
	// transaction; see the department service.
	DeleteTx(ctx context.Context, tx pgx.Tx, id string) error
}
