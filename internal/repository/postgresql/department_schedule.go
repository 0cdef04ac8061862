package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/database"
)

type departmentScheduleRepository struct {
	db *database.DB
}

const departmentScheduleJoin = `
	SELECT ds.id, ds.name, ds.role, ds.department_id, ds.schedule_id,
		ds.created_at, ds.updated_at,
		s.id, s.schedule_type, s.start_time, s.end_time,
		s.lunch_start_time, s.lunch_end_time,
		s.limit_work_hours_day, s.allowed_overtime,
		s.created_at, s.updated_at
	FROM department_schedules ds
	JOIN schedules s ON s.id = ds.schedule_id`

func scanDepartmentSchedule(row pgx.Row) (schedule.DepartmentSchedule, error) {
	var ds schedule.DepartmentSchedule
	var s schedule.Schedule
	err := row.Scan(
		&ds.ID, &ds.Name, &ds.Role, &ds.DepartmentID, &ds.ScheduleID,
		&ds.CreatedAt, &ds.UpdatedAt,
		&s.ID, &s.ScheduleType, &s.StartTime, &s.EndTime,
		&s.LunchStartTime, &s.LunchEndTime,
		&s.LimitWorkHoursDay, &s.AllowedOvertime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return schedule.DepartmentSchedule{}, err
	}
	ds.Schedule = &s
	return ds, nil
}

// Create implements schedule.DepartmentScheduleRepository. The schedule
// row and its department mapping are inserted together.
func (r *departmentScheduleRepository) Create(ctx context.Context, ds schedule.DepartmentSchedule, s schedule.Schedule) (schedule.DepartmentSchedule, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	s.ID = uuid.NewString()
	scheduleQuery := `
		INSERT INTO schedules (
			id, schedule_type, start_time, end_time,
			lunch_start_time, lunch_end_time,
			limit_work_hours_day, allowed_overtime
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, scheduleQuery,
		s.ID, s.ScheduleType, s.StartTime, s.EndTime,
		s.LunchStartTime, s.LunchEndTime,
		s.LimitWorkHoursDay, s.AllowedOvertime,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	ds.ID = uuid.NewString()
	ds.ScheduleID = s.ID
	mappingQuery := `
		INSERT INTO department_schedules (id, name, role, department_id, schedule_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, mappingQuery,
		ds.ID, ds.Name, ds.Role, ds.DepartmentID, ds.ScheduleID,
	).Scan(&ds.CreatedAt, &ds.UpdatedAt)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to create department schedule: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	ds.Schedule = &s
	return ds, nil
}

// GetByID implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepository) GetByID(ctx context.Context, id string) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := departmentScheduleJoin + ` WHERE ds.id = $1`

	ds, err := scanDepartmentSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.DepartmentSchedule{}, schedule.ErrDepartmentScheduleNotFound
		}
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to get department schedule by ID: %w", err)
	}

	return ds, nil
}

// List implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepository) List(ctx context.Context, departmentID *string) ([]schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := departmentScheduleJoin
	args := []interface{}{}
	if departmentID != nil {
		query += ` WHERE ds.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY ds.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query department schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.DepartmentSchedule
	for rows.Next() {
		ds, err := scanDepartmentSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department schedule: %w", err)
		}
		schedules = append(schedules, ds)
	}

	return schedules, nil
}

// ResolveForRole implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepository) ResolveForRole(ctx context.Context, departmentID string, role string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_type, s.start_time, s.end_time,
			s.lunch_start_time, s.lunch_end_time,
			s.limit_work_hours_day, s.allowed_overtime,
			s.created_at, s.updated_at
		FROM department_schedules ds
		JOIN schedules s ON s.id = ds.schedule_id
		WHERE ds.department_id = $1 AND UPPER(ds.role) = $2
		LIMIT 1
	`

	var s schedule.Schedule
	err := q.QueryRow(ctx, query, departmentID, strings.ToUpper(role)).Scan(
		&s.ID, &s.ScheduleType, &s.StartTime, &s.EndTime,
		&s.LunchStartTime, &s.LunchEndTime,
		&s.LimitWorkHoursDay, &s.AllowedOvertime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to resolve schedule for role: %w", err)
	}

	return s, nil
}

// Update implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepository) Update(ctx context.Context, ds schedule.DepartmentSchedule, s schedule.Schedule) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	scheduleQuery := `
		UPDATE schedules
		SET schedule_type = $1, start_time = $2, end_time = $3,
			lunch_start_time = $4, lunch_end_time = $5,
			limit_work_hours_day = $6, allowed_overtime = $7, updated_at = $8
		WHERE id = $9
		RETURNING id
	`
	var scheduleID string
	err = tx.QueryRow(ctx, scheduleQuery,
		s.ScheduleType, s.StartTime, s.EndTime,
		s.LunchStartTime, s.LunchEndTime,
		s.LimitWorkHoursDay, s.AllowedOvertime, time.Now(), s.ID,
	).Scan(&scheduleID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrDepartmentScheduleNotFound
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	mappingQuery := `
		UPDATE department_schedules
		SET name = $1, role = $2, department_id = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`
	var mappingID string
	err = tx.QueryRow(ctx, mappingQuery,
		ds.Name, ds.Role, ds.DepartmentID, time.Now(), ds.ID,
	).Scan(&mappingID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrDepartmentScheduleNotFound
		}
		return fmt.Errorf("failed to update department schedule: %w", err)
	}

	return tx.Commit(ctx)
}

// Delete implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var scheduleID string
	err = tx.QueryRow(ctx, `DELETE FROM department_schedules WHERE id = $1 RETURNING schedule_id`, id).
		Scan(&scheduleID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrDepartmentScheduleNotFound
		}
		return fmt.Errorf("failed to delete department schedule: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteByDepartmentTx implements schedule.DepartmentScheduleRepository.
// Mappings go first so the schedule rows are unreferenced when deleted.
func (r *departmentScheduleRepository) DeleteByDepartmentTx(ctx context.Context, tx pgx.Tx, departmentID string) error {
	rows, err := tx.Query(ctx,
		`DELETE FROM department_schedules WHERE department_id = $1 RETURNING schedule_id`,
		departmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete department's schedule mappings: %w", err)
	}

	var scheduleIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan schedule ID: %w", err)
		}
		scheduleIDs = append(scheduleIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to delete department's schedule mappings: %w", err)
	}

	if len(scheduleIDs) == 0 {
		return nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM schedules WHERE id = ANY($1)`, scheduleIDs); err != nil {
		return fmt.Errorf("failed to delete department's schedules: %w", err)
	}

	return nil
}

func NewDepartmentScheduleRepository(db *database.DB) schedule.DepartmentScheduleRepository {
	return &departmentScheduleRepository{db: db}
}
