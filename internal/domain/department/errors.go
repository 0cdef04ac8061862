package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrLeaderNotFound     = errors.New("leader not found")
	ErrNoLeader           = errors.New("department has no leader")
	ErrLeaderNotEligible  = errors.New("employee is not an admin or team leader")
	ErrNoMembers          = errors.New("no employees found in this department")
)
