package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.schedule_type,
	a.time_in, a.time_out, a.lunch_time_in, a.lunch_time_out,
	a.time_total, a.time_hours_worked, a.overtime_total, a.lunch_time_total,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ScheduleType,
		&a.TimeIn, &a.TimeOut, &a.LunchTimeIn, &a.LunchTimeOut,
		&a.TimeTotal, &a.TimeHoursWorked, &a.OverTimeTotal, &a.LunchTimeTotal,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()
	query := `
		INSERT INTO attendances (
			id, employee_id, date, status, schedule_type,
			time_in, time_out, lunch_time_in, lunch_time_out,
			time_total, time_hours_worked, overtime_total, lunch_time_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Date, a.Status, a.ScheduleType,
		a.TimeIn, a.TimeOut, a.LunchTimeIn, a.LunchTimeOut,
		a.TimeTotal, a.TimeHoursWorked, a.OverTimeTotal, a.LunchTimeTotal,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendances a WHERE a.employee_id = $1 AND a.date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &a, nil
}

// Update implements attendance.AttendanceRepository. Every column is
// written, so nil clock fields clear their columns.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $1, status = $2, schedule_type = $3,
			time_in = $4, time_out = $5, lunch_time_in = $6, lunch_time_out = $7,
			time_total = $8, time_hours_worked = $9, overtime_total = $10, lunch_time_total = $11,
			updated_at = $12
		WHERE id = $13
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		a.Date, a.Status, a.ScheduleType,
		a.TimeIn, a.TimeOut, a.LunchTimeIn, a.LunchTimeOut,
		a.TimeTotal, a.TimeHoursWorked, a.OverTimeTotal, a.LunchTimeTotal,
		time.Now(), a.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository. Employee names are
// joined in for listing views.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, e.last_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendancesWithName(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendances a WHERE a.employee_id = $1 ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, nil
}

// ListByEmployees implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployees(ctx context.Context, employeeIDs []string, dateFilter *string) ([]attendance.Attendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = ANY($1)
	`
	args := []interface{}{employeeIDs}
	if dateFilter != nil {
		query += ` AND a.date = $2`
		args = append(args, *dateFilter)
	}
	query += ` ORDER BY a.date DESC, e.last_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by employees: %w", err)
	}
	defer rows.Close()

	return collectAttendancesWithName(rows)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func collectAttendancesWithName(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ScheduleType,
			&a.TimeIn, &a.TimeOut, &a.LunchTimeIn, &a.LunchTimeOut,
			&a.TimeTotal, &a.TimeHoursWorked, &a.OverTimeTotal, &a.LunchTimeTotal,
			&a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
