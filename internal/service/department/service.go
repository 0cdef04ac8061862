package department

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/department"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/database"
	"github.com/workpulse/timeclock-backend-go/internal/repository/postgresql"
)

type service struct {
	db             *database.DB
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
	scheduleRepo   schedule.DepartmentScheduleRepository
}

func NewDepartmentService(
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.DepartmentScheduleRepository,
) department.DepartmentService {
	return &service{
		db:             db,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
	}
}

// Create implements department.DepartmentService.
func (s *service) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.LeaderID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.LeaderID); err != nil {
			if err == employee.ErrEmployeeNotFound {
				return department.DepartmentResponse{}, department.ErrLeaderNotFound
			}
			return department.DepartmentResponse{}, err
		}
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

// Get implements department.DepartmentService.
func (s *service) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(d), nil
}

// List implements department.DepartmentService.
func (s *service) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}

	return responses, nil
}

// Update implements department.DepartmentService.
func (s *service) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}
	if req.LeaderID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.LeaderID); err != nil {
			if err == employee.ErrEmployeeNotFound {
				return department.DepartmentResponse{}, department.ErrLeaderNotFound
			}
			return department.DepartmentResponse{}, err
		}
		d.LeaderID = req.LeaderID
	}

	if err := s.departmentRepo.Update(ctx, d); err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(d), nil
}

// Delete implements department.DepartmentService. Members are detached
// and the department's schedules removed in the same transaction as the
// department row.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	members, err := s.employeeRepo.ListByDepartment(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		for _, m := range members {
			if err := s.employeeRepo.AssignDepartment(txCtx, m.ID, nil, nil); err != nil {
				return err
			}
		}

		if err := s.scheduleRepo.DeleteByDepartmentTx(ctx, tx, id); err != nil {
			return err
		}

		return s.departmentRepo.DeleteTx(ctx, tx, id)
	})
}

// Members implements department.DepartmentService.
func (s *service) Members(ctx context.Context, id string) ([]employee.EmployeeResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	members, err := s.employeeRepo.ListByDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, department.ErrNoMembers
	}

	responses := make([]employee.EmployeeResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, employee.ToResponse(m))
	}

	return responses, nil
}

// Leader implements department.DepartmentService.
func (s *service) Leader(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if d.LeaderID == nil {
		return employee.EmployeeResponse{}, department.ErrNoLeader
	}

	leader, err := s.employeeRepo.GetByID(ctx, *d.LeaderID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return employee.EmployeeResponse{}, department.ErrLeaderNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(leader), nil
}

// AssignEmployee implements department.DepartmentService.
func (s *service) AssignEmployee(ctx context.Context, req department.AssignEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return err
	}

	e, err := s.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	return s.employeeRepo.AssignDepartment(ctx, e.ID, &role, &req.DepartmentID)
}

// RemoveEmployee implements department.DepartmentService.
func (s *service) RemoveEmployee(ctx context.Context, req department.RemoveEmployeeRequest, requesterID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.EmployeeID == requesterID {
		return employee.ErrCannotRemoveSelf
	}

	d, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	// Removing the leader also vacates the leadership slot.
	if d.LeaderID != nil && *d.LeaderID == req.EmployeeID {
		if err := s.departmentRepo.SetLeader(ctx, d.ID, nil); err != nil {
			return err
		}
	}

	return s.employeeRepo.AssignDepartment(ctx, req.EmployeeID, nil, nil)
}

// AssignLeader implements department.DepartmentService.
func (s *service) AssignLeader(ctx context.Context, req department.AssignLeaderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return err
	}

	leader, err := s.employeeRepo.GetByID(ctx, req.LeaderID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return department.ErrLeaderNotFound
		}
		return err
	}

	if leader.AccessLevel == employee.AccessLevelEmployee {
		return department.ErrLeaderNotEligible
	}

	if err := s.departmentRepo.SetLeader(ctx, d.ID, &leader.ID); err != nil {
		return err
	}

	// A leader is also a member of the department they lead.
	role := "LEADER"
	if leader.Role != nil && *leader.Role != "" {
		role = *leader.Role
	}
	return s.employeeRepo.AssignDepartment(ctx, leader.ID, &role, &d.ID)
}

// RemoveLeader implements department.DepartmentService.
func (s *service) RemoveLeader(ctx context.Context, departmentID string) error {
	d, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}

	if d.LeaderID == nil {
		return department.ErrNoLeader
	}

	leaderID := *d.LeaderID
	if err := s.departmentRepo.SetLeader(ctx, d.ID, nil); err != nil {
		return err
	}

	return s.employeeRepo.AssignDepartment(ctx, leaderID, nil, nil)
}
