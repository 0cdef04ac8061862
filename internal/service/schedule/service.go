package schedule

import (
	"context"
	"strings"

	"github.com/workpulse/timeclock-backend-go/internal/domain/department"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

type service struct {
	scheduleRepo   schedule.DepartmentScheduleRepository
	departmentRepo department.DepartmentRepository
}

func NewDepartmentScheduleService(
	scheduleRepo schedule.DepartmentScheduleRepository,
	departmentRepo department.DepartmentRepository,
) schedule.DepartmentScheduleService {
	return &service{
		scheduleRepo:   scheduleRepo,
		departmentRepo: departmentRepo,
	}
}

// Create implements schedule.DepartmentScheduleService.
func (s *service) Create(ctx context.Context, req schedule.CreateDepartmentScheduleRequest) (schedule.DepartmentScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	start, end, lunchStart, lunchEnd := req.Times()

	created, err := s.scheduleRepo.Create(ctx,
		schedule.DepartmentSchedule{
			Name:         req.Name,
			Role:         req.NormalizedRole(),
			DepartmentID: req.DepartmentID,
		},
		schedule.Schedule{
			ScheduleType:      schedule.ScheduleType(req.ScheduleType),
			StartTime:         start,
			EndTime:           end,
			LunchStartTime:    lunchStart,
			LunchEndTime:      lunchEnd,
			LimitWorkHoursDay: req.LimitWorkHoursDay,
			AllowedOvertime:   req.AllowedOvertime,
		},
	)
	if err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	return schedule.ToResponse(created), nil
}

// Get implements schedule.DepartmentScheduleService.
func (s *service) Get(ctx context.Context, id string) (schedule.DepartmentScheduleResponse, error) {
	ds, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	return schedule.ToResponse(ds), nil
}

// List implements schedule.DepartmentScheduleService.
func (s *service) List(ctx context.Context, departmentID *string) ([]schedule.DepartmentScheduleResponse, error) {
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return nil, err
		}
	}

	mappings, err := s.scheduleRepo.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.DepartmentScheduleResponse, 0, len(mappings))
	for _, ds := range mappings {
		responses = append(responses, schedule.ToResponse(ds))
	}

	return responses, nil
}

// Update implements schedule.DepartmentScheduleService. Each field
// update is an explicit set-or-keep decision on the loaded mapping.
func (s *service) Update(ctx context.Context, req schedule.UpdateDepartmentScheduleRequest) (schedule.DepartmentScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	ds, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}
	sched := *ds.Schedule

	if req.Name != nil {
		ds.Name = *req.Name
	}
	if req.Role != nil {
		ds.Role = strings.ToUpper(strings.TrimSpace(*req.Role))
	}
	if req.ScheduleType != nil {
		sched.ScheduleType = schedule.ScheduleType(*req.ScheduleType)
	}
	if req.StartTime != nil {
		sched.StartTime, _ = timeutil.Parse(*req.StartTime)
	}
	if req.EndTime != nil {
		sched.EndTime, _ = timeutil.Parse(*req.EndTime)
	}
	if req.LunchStartTime != nil {
		sched.LunchStartTime, _ = timeutil.Parse(*req.LunchStartTime)
	}
	if req.LunchEndTime != nil {
		sched.LunchEndTime, _ = timeutil.Parse(*req.LunchEndTime)
	}
	if req.LimitWorkHoursDay != nil {
		sched.LimitWorkHoursDay = req.LimitWorkHoursDay
	}
	if req.AllowedOvertime != nil {
		sched.AllowedOvertime = *req.AllowedOvertime
	}

	if err := s.scheduleRepo.Update(ctx, ds, sched); err != nil {
		return schedule.DepartmentScheduleResponse{}, err
	}

	ds.Schedule = &sched
	return schedule.ToResponse(ds), nil
}

// Delete implements schedule.DepartmentScheduleService.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.scheduleRepo.Delete(ctx, id)
}
