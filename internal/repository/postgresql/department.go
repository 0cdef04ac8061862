package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/department"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d.ID = uuid.NewString()
	query := `
		INSERT INTO departments (id, name, description, leader_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.Name, d.Description, d.LeaderID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, leader_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.LeaderID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, leader_id, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.LeaderID, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, description = $2, leader_id = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, d.Name, d.Description, d.LeaderID, time.Now(), d.ID).
		Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to update department: %w", err)
	}

	return nil
}

// SetLeader implements department.DepartmentRepository.
func (r *departmentRepository) SetLeader(ctx context.Context, id string, leaderID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE departments SET leader_id = $1, updated_at = $2 WHERE id = $3 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, leaderID, time.Now(), id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to set department leader: %w", err)
	}

	return nil
}

// DeleteTx implements department.DepartmentRepository.
func (r *departmentRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id string) error {
	commandTag, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}
