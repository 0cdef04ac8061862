package attendance

import (
	"time"

	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

// Attendance is the single record capturing one employee's full
// attendance state for one calendar day. Date is the natural key
// together with EmployeeID; clock fields hold times-of-day only, totals
// are hours.
type Attendance struct {
	ID              string
	EmployeeID      string
	Date            string // calendar day, "2006-01-02"
	Status          Status
	ScheduleType    schedule.ScheduleType
	TimeIn          *timeutil.TimeOfDay
	TimeOut         *timeutil.TimeOfDay
	LunchTimeIn     *timeutil.TimeOfDay
	LunchTimeOut    *timeutil.TimeOfDay
	TimeTotal       float64
	TimeHoursWorked float64
	OverTimeTotal   float64
	LunchTimeTotal  float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusOngoing     Status = "ONGOING"
	StatusBreak       Status = "BREAK"
	StatusDone        Status = "DONE"
	StatusUnpaidLeave Status = "UNPAID_LEAVE"
	StatusPaidLeave   Status = "PAID_LEAVE"
)

var StatusValues = []string{
	string(StatusOngoing),
	string(StatusBreak),
	string(StatusDone),
	string(StatusUnpaidLeave),
	string(StatusPaidLeave),
}
