package employee

import (
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MiddleName  string `json:"middleName"`
	AccessLevel string `json:"accessLevel"`
	Role        string `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if !validator.IsInSlice(r.AccessLevel, AccessLevelValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "accessLevel",
			Message: "accessLevel must be one of ADMIN, TEAM_LEADER, EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Username    *string `json:"username"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	MiddleName  *string `json:"middleName"`
	AccessLevel *string `json:"accessLevel"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if r.AccessLevel != nil && !validator.IsInSlice(*r.AccessLevel, AccessLevelValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "accessLevel",
			Message: "accessLevel must be one of ADMIN, TEAM_LEADER, EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	MiddleName   string  `json:"middleName,omitempty"`
	AccessLevel  string  `json:"accessLevel"`
	Role         *string `json:"role"`
	DepartmentID *string `json:"departmentId"`
	IsActive     bool    `json:"isActive"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Username:     e.Username,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		MiddleName:   e.MiddleName,
		AccessLevel:  string(e.AccessLevel),
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		IsActive:     e.IsActive,
	}
}
