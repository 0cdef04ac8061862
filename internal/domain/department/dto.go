package department

import (
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// DEPARTMENT DTOs
// ========================================

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leaderId"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leaderId"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignEmployeeRequest struct {
	DepartmentID string `json:"-"`
	Username     string `json:"username"`
	Role         string `json:"role"`
}

func (r *AssignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RemoveEmployeeRequest struct {
	DepartmentID string `json:"-"`
	EmployeeID   string `json:"employeeId"`
}

func (r *RemoveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignLeaderRequest struct {
	DepartmentID string `json:"-"`
	LeaderID     string `json:"leaderId"`
}

func (r *AssignLeaderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaderId",
			Message: "leaderId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leaderId"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		LeaderID:    d.LeaderID,
	}
}
