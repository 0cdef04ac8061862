package employee

import "time"

type Employee struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	MiddleName   string
	AccessLevel  AccessLevel
	PasswordHash string
	Role         *string
	DepartmentID *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Assigned reports whether the employee can be matched to a department
// schedule. Clock events require both a role and a department.
func (e Employee) Assigned() bool {
	return e.Role != nil && *e.Role != "" && e.DepartmentID != nil && *e.DepartmentID != ""
}

type AccessLevel string

const (
	AccessLevelAdmin      AccessLevel = "ADMIN"
	AccessLevelTeamLeader AccessLevel = "TEAM_LEADER"
	AccessLevelEmployee   AccessLevel = "EMPLOYEE"
)

var AccessLevelValues = []string{
	string(AccessLevelAdmin),
	string(AccessLevelTeamLeader),
	string(AccessLevelEmployee),
}
