package attendance

import (
	"context"

	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

type service struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func parseTimePtr(s *string) *timeutil.TimeOfDay {
	if s == nil {
		return nil
	}
	tod, err := timeutil.Parse(*s)
	if err != nil {
		return nil
	}
	return &tod
}

// recomputeTotals derives the day's totals from whatever clock pairs
// are present. Administrative edits record times as given; schedule
// clamping only applies to live clock events.
func recomputeTotals(a *attendance.Attendance) {
	a.TimeTotal = 0
	a.TimeHoursWorked = 0
	a.LunchTimeTotal = 0

	if a.LunchTimeIn != nil && a.LunchTimeOut != nil {
		minutes := a.LunchTimeOut.MinutesSince(*a.LunchTimeIn)
		if minutes < 0 {
			minutes = 0
		}
		a.LunchTimeTotal = float64(minutes) / 60
	}

	if a.TimeIn != nil && a.TimeOut != nil {
		minutes := a.TimeOut.MinutesSince(*a.TimeIn)
		if minutes < 0 {
			minutes = 0
		}
		a.TimeTotal = float64(minutes) / 60

		worked := a.TimeTotal - a.LunchTimeTotal
		if worked < 0 {
			worked = 0
		}
		a.TimeHoursWorked = worked
	}
}

// Create implements attendance.AttendanceService.
func (s *service) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateDay
	}

	a := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		Status:       attendance.Status(req.Status),
		ScheduleType: schedule.ScheduleType(req.ScheduleType),
		TimeIn:       parseTimePtr(req.TimeIn),
		TimeOut:      parseTimePtr(req.TimeOut),
		LunchTimeIn:  parseTimePtr(req.LunchTimeIn),
		LunchTimeOut: parseTimePtr(req.LunchTimeOut),
	}
	recomputeTotals(&a)

	created, err := s.attendanceRepo.Create(ctx, a)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// Get implements attendance.AttendanceService.
func (s *service) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(a), nil
}

// List implements attendance.AttendanceService.
func (s *service) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	attendances, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		responses = append(responses, attendance.ToResponse(a))
	}

	return responses, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		responses = append(responses, attendance.ToResponse(a))
	}

	return responses, nil
}

// Update implements attendance.AttendanceService. Clock fields are
// explicit set-or-keep; totals are rederived from the resulting pairs.
func (s *service) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil && *req.Date != a.Date {
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, a.EmployeeID, *req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if existing != nil {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateDay
		}
		a.Date = *req.Date
	}
	if req.Status != nil {
		a.Status = attendance.Status(*req.Status)
	}
	if req.TimeIn != nil {
		a.TimeIn = parseTimePtr(req.TimeIn)
	}
	if req.TimeOut != nil {
		a.TimeOut = parseTimePtr(req.TimeOut)
	}
	if req.LunchTimeIn != nil {
		a.LunchTimeIn = parseTimePtr(req.LunchTimeIn)
	}
	if req.LunchTimeOut != nil {
		a.LunchTimeOut = parseTimePtr(req.LunchTimeOut)
	}
	recomputeTotals(&a)

	if err := s.attendanceRepo.Update(ctx, a); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(a), nil
}

// Delete implements attendance.AttendanceService.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id)
}
