package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

type service struct {
	employeeRepo   employee.EmployeeRepository
	scheduleRepo   schedule.DepartmentScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	locks          *employeeLocks
}

func NewClockService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.DepartmentScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
) attendance.ClockService {
	return &service{
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		locks:          newEmployeeLocks(),
	}
}

// prepare loads the employee and resolves their schedule. Every clock
// event starts here: an unknown employee, a missing assignment, or a
// missing (department, role) schedule mapping rejects the event before
// any attendance data is touched.
func (s *service) prepare(ctx context.Context, employeeID string) (employee.Employee, schedule.Schedule, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, schedule.Schedule{}, err
	}

	if !emp.Assigned() {
		return employee.Employee{}, schedule.Schedule{}, employee.ErrNotAssigned
	}

	sched, err := s.scheduleRepo.ResolveForRole(ctx, *emp.DepartmentID, *emp.Role)
	if err != nil {
		return employee.Employee{}, schedule.Schedule{}, err
	}

	return emp, sched, nil
}

func onLeave(status attendance.Status) bool {
	return status == attendance.StatusUnpaidLeave || status == attendance.StatusPaidLeave
}

// TimeIn implements attendance.ClockService.
func (s *service) TimeIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, sched, err := s.prepare(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.locks.lock(emp.ID)
	defer unlock()

	day := timeutil.DayKey(req.Timestamp())
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record == nil {
		timeIn := EffectiveTimeIn(timeutil.At(req.Timestamp()), sched)
		created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:   emp.ID,
			Date:         day,
			Status:       attendance.StatusOngoing,
			ScheduleType: sched.ScheduleType,
			TimeIn:       &timeIn,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		if err := s.employeeRepo.SetActive(ctx, emp.ID, true); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark employee active: %w", err)
		}

		return attendance.ToResponse(created), nil
	}

	switch {
	case record.Status == attendance.StatusBreak:
		return attendance.AttendanceResponse{}, attendance.ErrOnBreak
	case onLeave(record.Status):
		return attendance.AttendanceResponse{}, attendance.ErrOnLeave
	}

	// Resume: reopen the day keeping the original time-in and lunch
	// fields, discarding any previous close-out.
	record.Status = attendance.StatusOngoing
	record.TimeOut = nil
	record.TimeTotal = 0
	record.TimeHoursWorked = 0
	record.OverTimeTotal = 0

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.employeeRepo.SetActive(ctx, emp.ID, true); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark employee active: %w", err)
	}

	return attendance.ToResponse(*record), nil
}

// TimeOut implements attendance.ClockService.
func (s *service) TimeOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, sched, err := s.prepare(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.locks.lock(emp.ID)
	defer unlock()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, timeutil.DayKey(req.Timestamp()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	switch {
	case record == nil:
		return attendance.AttendanceResponse{}, attendance.ErrNoRecordToday
	case record.Status == attendance.StatusBreak:
		return attendance.AttendanceResponse{}, attendance.ErrOnBreak
	case onLeave(record.Status):
		return attendance.AttendanceResponse{}, attendance.ErrOnLeave
	case record.TimeIn == nil:
		return attendance.AttendanceResponse{}, attendance.ErrNoTimeIn
	case record.TimeOut != nil || record.Status == attendance.StatusDone:
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	d := ComputeDurations(*record.TimeIn, timeutil.At(req.Timestamp()), record.LunchTimeTotal, sched)

	record.Status = attendance.StatusDone
	record.TimeOut = &d.TimeOut
	record.TimeTotal = d.TimeTotal
	record.TimeHoursWorked = d.TimeHoursWorked
	record.OverTimeTotal = d.OverTimeTotal

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.employeeRepo.SetActive(ctx, emp.ID, false); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark employee inactive: %w", err)
	}

	return attendance.ToResponse(*record), nil
}

// LunchIn implements attendance.ClockService.
func (s *service) LunchIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, sched, err := s.prepare(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.locks.lock(emp.ID)
	defer unlock()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, timeutil.DayKey(req.Timestamp()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	switch {
	case record == nil:
		return attendance.AttendanceResponse{}, attendance.ErrNoRecordToday
	case record.TimeOut != nil || record.Status == attendance.StatusDone:
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	case record.Status == attendance.StatusBreak:
		return attendance.AttendanceResponse{}, attendance.ErrOnBreak
	case onLeave(record.Status):
		return attendance.AttendanceResponse{}, attendance.ErrOnLeave
	}

	lunchIn := timeutil.At(req.Timestamp())
	if sched.Fixed() {
		if lunchIn.Before(sched.LunchStartTime) {
			return attendance.AttendanceResponse{}, attendance.ErrLunchTooEarly
		}
		if lunchIn.After(sched.LunchEndTime) {
			return attendance.AttendanceResponse{}, attendance.ErrLunchTooLate
		}
	}

	// Resuming a break keeps the original lunch-in; the day's lunch runs
	// from the first lunch-in to the final lunch-out.
	if record.LunchTimeIn == nil {
		record.LunchTimeIn = &lunchIn
	}
	record.LunchTimeOut = nil
	record.LunchTimeTotal = 0
	record.Status = attendance.StatusBreak

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// LunchOut implements attendance.ClockService.
func (s *service) LunchOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, sched, err := s.prepare(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.locks.lock(emp.ID)
	defer unlock()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, timeutil.DayKey(req.Timestamp()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	switch {
	case record == nil:
		return attendance.AttendanceResponse{}, attendance.ErrLunchNotStarted
	case record.TimeOut != nil || record.Status == attendance.StatusDone:
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	case onLeave(record.Status):
		return attendance.AttendanceResponse{}, attendance.ErrOnLeave
	case record.LunchTimeIn == nil:
		return attendance.AttendanceResponse{}, attendance.ErrLunchNotStarted
	case record.LunchTimeOut != nil:
		return attendance.AttendanceResponse{}, attendance.ErrLunchAlreadyEnded
	}

	lunchOut := EffectiveLunchOut(timeutil.At(req.Timestamp()), sched)

	record.LunchTimeOut = &lunchOut
	record.LunchTimeTotal = LunchHours(*record.LunchTimeIn, lunchOut)
	record.Status = attendance.StatusOngoing

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// Today implements attendance.ClockService.
func (s *service) Today(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, timeutil.DayKey(time.Now()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoRecordToday
	}

	return attendance.ToResponse(*record), nil
}
