package schedule

import (
	"strings"

	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// DEPARTMENT SCHEDULE DTOs
// ========================================

type CreateDepartmentScheduleRequest struct {
	DepartmentID      string   `json:"departmentId"`
	Role              string   `json:"role"`
	Name              string   `json:"name"`
	ScheduleType      string   `json:"scheduleType"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	LunchStartTime    string   `json:"lunchStartTime"`
	LunchEndTime      string   `json:"lunchEndTime"`
	LimitWorkHoursDay *float64 `json:"limitWorkHoursDay"`
	AllowedOvertime   bool     `json:"allowedOvertime"`

	startTime      timeutil.TimeOfDay
	endTime        timeutil.TimeOfDay
	lunchStartTime timeutil.TimeOfDay
	lunchEndTime   timeutil.TimeOfDay
}

func (r *CreateDepartmentScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.ScheduleType, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduleType",
			Message: "scheduleType must be one of FIXED, FLEXI, SUPER_FLEXI",
		})
	}

	times := []struct {
		field string
		value string
		dest  *timeutil.TimeOfDay
	}{
		{"startTime", r.StartTime, &r.startTime},
		{"endTime", r.EndTime, &r.endTime},
		{"lunchStartTime", r.LunchStartTime, &r.lunchStartTime},
		{"lunchEndTime", r.LunchEndTime, &r.lunchEndTime},
	}
	for _, t := range times {
		tod, err := timeutil.Parse(t.value)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   t.field,
				Message: t.field + " must be a valid time of day (HH:MM or RFC3339)",
			})
			continue
		}
		*t.dest = tod
	}

	if len(errs) > 0 {
		return errs
	}

	// Windows crossing midnight are unsupported.
	if r.endTime.Before(r.startTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must not be earlier than startTime",
		})
	}
	if r.lunchEndTime.Before(r.lunchStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunchEndTime",
			Message: "lunchEndTime must not be earlier than lunchStartTime",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizedRole returns the role uppercased, the canonical form stored
// and matched by the resolver.
func (r *CreateDepartmentScheduleRequest) NormalizedRole() string {
	return strings.ToUpper(strings.TrimSpace(r.Role))
}

func (r *CreateDepartmentScheduleRequest) Times() (start, end, lunchStart, lunchEnd timeutil.TimeOfDay) {
	return r.startTime, r.endTime, r.lunchStartTime, r.lunchEndTime
}

type UpdateDepartmentScheduleRequest struct {
	ID                string   `json:"-"`
	Role              *string  `json:"role"`
	Name              *string  `json:"name"`
	ScheduleType      *string  `json:"scheduleType"`
	StartTime         *string  `json:"startTime"`
	EndTime           *string  `json:"endTime"`
	LunchStartTime    *string  `json:"lunchStartTime"`
	LunchEndTime      *string  `json:"lunchEndTime"`
	LimitWorkHoursDay *float64 `json:"limitWorkHoursDay"`
	AllowedOvertime   *bool    `json:"allowedOvertime"`
}

func (r *UpdateDepartmentScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not be empty",
		})
	}

	if r.ScheduleType != nil && !validator.IsInSlice(*r.ScheduleType, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduleType",
			Message: "scheduleType must be one of FIXED, FLEXI, SUPER_FLEXI",
		})
	}

	for field, value := range map[string]*string{
		"startTime":      r.StartTime,
		"endTime":        r.EndTime,
		"lunchStartTime": r.LunchStartTime,
		"lunchEndTime":   r.LunchEndTime,
	} {
		if value == nil {
			continue
		}
		if _, err := timeutil.Parse(*value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid time of day (HH:MM or RFC3339)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentScheduleResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	DepartmentID      string   `json:"departmentId"`
	ScheduleType      string   `json:"scheduleType"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	LunchStartTime    string   `json:"lunchStartTime"`
	LunchEndTime      string   `json:"lunchEndTime"`
	LimitWorkHoursDay *float64 `json:"limitWorkHoursDay"`
	AllowedOvertime   bool     `json:"allowedOvertime"`
}

func ToResponse(ds DepartmentSchedule) DepartmentScheduleResponse {
	resp := DepartmentScheduleResponse{
		ID:           ds.ID,
		Name:         ds.Name,
		Role:         ds.Role,
		DepartmentID: ds.DepartmentID,
	}
	if ds.Schedule != nil {
		resp.ScheduleType = string(ds.Schedule.ScheduleType)
		resp.StartTime = ds.Schedule.StartTime.String()
		resp.EndTime = ds.Schedule.EndTime.String()
		resp.LunchStartTime = ds.Schedule.LunchStartTime.String()
		resp.LunchEndTime = ds.Schedule.LunchEndTime.String()
		resp.LimitWorkHoursDay = ds.Schedule.LimitWorkHoursDay
		resp.AllowedOvertime = ds.Schedule.AllowedOvertime
	}
	return resp
}
