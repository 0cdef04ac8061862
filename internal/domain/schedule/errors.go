package schedule

import "errors"

var (
	ErrScheduleNotFound           = errors.New("schedule not found")
	ErrDepartmentScheduleNotFound = errors.New("department schedule not found")
)
