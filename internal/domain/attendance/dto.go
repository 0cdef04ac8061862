package attendance

import (
	"time"

	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// CLOCK EVENT DTOs
// ========================================

// ClockRequest is the shared body of all four clock endpoints.
type ClockRequest struct {
	EmployeeID string `json:"employeeId"`
	TimeStamp  string `json:"timeStamp"`

	timestamp time.Time
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	ts, ok := validator.IsValidDateTime(r.TimeStamp)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timeStamp",
			Message: "timeStamp must be a valid RFC3339 timestamp",
		})
	}
	r.timestamp = ts

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Timestamp returns the parsed event time. Only valid after Validate.
func (r *ClockRequest) Timestamp() time.Time {
	return r.timestamp
}

// ========================================
// ATTENDANCE CRUD DTOs
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	ScheduleType string  `json:"scheduleType"`
	TimeIn       *string `json:"timeIn"`
	TimeOut      *string `json:"timeOut"`
	LunchTimeIn  *string `json:"lunchTimeIn"`
	LunchTimeOut *string `json:"lunchTimeOut"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a calendar day (YYYY-MM-DD)",
		})
	}

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of ONGOING, BREAK, DONE, UNPAID_LEAVE, PAID_LEAVE",
		})
	}

	for field, value := range map[string]*string{
		"timeIn":       r.TimeIn,
		"timeOut":      r.TimeOut,
		"lunchTimeIn":  r.LunchTimeIn,
		"lunchTimeOut": r.LunchTimeOut,
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

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
	TimeIn       *string `json:"timeIn"`
	TimeOut      *string `json:"timeOut"`
	LunchTimeIn  *string `json:"lunchTimeIn"`
	LunchTimeOut *string `json:"lunchTimeOut"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a calendar day (YYYY-MM-DD)",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of ONGOING, BREAK, DONE, UNPAID_LEAVE, PAID_LEAVE",
		})
	}

	for field, value := range map[string]*string{
		"timeIn":       r.TimeIn,
		"timeOut":      r.TimeOut,
		"lunchTimeIn":  r.LunchTimeIn,
		"lunchTimeOut": r.LunchTimeOut,
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

type AttendanceResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	EmployeeName    *string `json:"employeeName,omitempty"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	ScheduleType    string  `json:"scheduleType"`
	TimeIn          *string `json:"timeIn"`
	TimeOut         *string `json:"timeOut"`
	LunchTimeIn     *string `json:"lunchTimeIn"`
	LunchTimeOut    *string `json:"lunchTimeOut"`
	TimeTotal       float64 `json:"timeTotal"`
	TimeHoursWorked float64 `json:"timeHoursWorked"`
	OverTimeTotal   float64 `json:"overTimeTotal"`
	LunchTimeTotal  float64 `json:"lunchTimeTotal"`
}

func todPtrToString(d *timeutil.TimeOfDay) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:              att.ID,
		EmployeeID:      att.EmployeeID,
		EmployeeName:    att.EmployeeName,
		Date:            att.Date,
		Status:          string(att.Status),
		ScheduleType:    string(att.ScheduleType),
		TimeIn:          todPtrToString(att.TimeIn),
		TimeOut:         todPtrToString(att.TimeOut),
		LunchTimeIn:     todPtrToString(att.LunchTimeIn),
		LunchTimeOut:    todPtrToString(att.LunchTimeOut),
		TimeTotal:       att.TimeTotal,
		TimeHoursWorked: att.TimeHoursWorked,
		OverTimeTotal:   att.OverTimeTotal,
		LunchTimeTotal:  att.LunchTimeTotal,
	}
}
