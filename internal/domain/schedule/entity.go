package schedule

import (
	"time"

	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

// Schedule is the work-hours policy resolved for a clock event. Only the
// hour/minute of its boundaries is meaningful; all comparisons happen on
// the time-of-day axis.
type Schedule struct {
	ID                string
	ScheduleType      ScheduleType
	StartTime         timeutil.TimeOfDay
	EndTime           timeutil.TimeOfDay
	LunchStartTime    timeutil.TimeOfDay
	LunchEndTime      timeutil.TimeOfDay
	LimitWorkHoursDay *float64
	AllowedOvertime   bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DepartmentSchedule maps a (department, role) pair to a schedule. Clock
// handlers consult the first match, so at most one row per pair should
// exist.
type DepartmentSchedule struct {
	ID           string
	Name         string
	Role         string
	DepartmentID string
	ScheduleID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Schedule *Schedule
}

type ScheduleType string

const (
	ScheduleTypeFixed      ScheduleType = "FIXED"
	ScheduleTypeFlexi      ScheduleType = "FLEXI"
	ScheduleTypeSuperFlexi ScheduleType = "SUPER_FLEXI"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeFlexi),
	string(ScheduleTypeSuperFlexi),
}

// Fixed reports whether the schedule clamps events to its boundaries.
func (s Schedule) Fixed() bool {
	return s.ScheduleType == ScheduleTypeFixed
}
