package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &service{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByUsername(ctx, req.Username); err == nil {
		return employee.EmployeeResponse{}, employee.ErrUsernameExists
	} else if err != employee.ErrEmployeeNotFound {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	e := employee.Employee{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		AccessLevel:  employee.AccessLevel(req.AccessLevel),
		PasswordHash: string(hash),
	}

	// Roles are stored uppercased so schedule resolution never misses on
	// casing drift.
	if role := strings.ToUpper(strings.TrimSpace(req.Role)); role != "" {
		e.Role = &role
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *service) List(ctx context.Context, accessLevel *employee.AccessLevel) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, accessLevel)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Username != nil && *req.Username != e.Username {
		if _, err := s.employeeRepo.GetByUsername(ctx, *req.Username); err == nil {
			return employee.EmployeeResponse{}, employee.ErrUsernameExists
		} else if err != employee.ErrEmployeeNotFound {
			return employee.EmployeeResponse{}, err
		}
		e.Username = *req.Username
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		e.MiddleName = *req.MiddleName
	}
	if req.AccessLevel != nil {
		e.AccessLevel = employee.AccessLevel(*req.AccessLevel)
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// Delete implements employee.EmployeeService.
func (s *service) Delete(ctx context.Context, id string, requesterID string) error {
	if id == requesterID {
		return employee.ErrCannotDeleteSelf
	}

	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id)
}
