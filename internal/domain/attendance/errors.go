package attendance

import "errors"

// Attendance domain errors
var (
	// Clock event errors
	ErrNoRecordToday     = errors.New("attendance record not found for today")
	ErrOnLeave           = errors.New("attendance day is marked as leave")
	ErrOnBreak           = errors.New("time currently on break")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrNoTimeIn          = errors.New("time in is required")
	ErrLunchTooEarly     = errors.New("lunch time in is too early")
	ErrLunchTooLate      = errors.New("lunch time in is too late")
	ErrLunchNotStarted   = errors.New("lunch has not been started")
	ErrLunchAlreadyEnded = errors.New("lunch has already ended")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDay       = errors.New("attendance record for that day already exists")
)
