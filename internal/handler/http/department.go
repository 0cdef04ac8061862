package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/department"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Members(w http.ResponseWriter, r *http.Request)
	Leader(w http.ResponseWriter, r *http.Request)
	AssignEmployee(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
	AssignLeader(w http.ResponseWriter, r *http.Request)
	RemoveLeader(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
	employeeRepo      employee.EmployeeRepository
	attendanceRepo    attendance.AttendanceRepository
}

func NewDepartmentHandler(
	departmentService department.DepartmentService,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
		employeeRepo:      employeeRepo,
		attendanceRepo:    attendanceRepo,
	}
}

// Create implements DepartmentHandler.
func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", result)
}

// Get implements DepartmentHandler.
func (h *departmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DepartmentHandler.
func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements DepartmentHandler.
func (h *departmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.departmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", result)
}

// Delete implements DepartmentHandler.
func (h *departmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

// Members implements DepartmentHandler.
func (h *departmentHandlerImpl) Members(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.Members(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leader implements DepartmentHandler.
func (h *departmentHandlerImpl) Leader(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.Leader(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignEmployee implements DepartmentHandler.
func (h *departmentHandlerImpl) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	var req department.AssignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.DepartmentID = chi.URLParam(r, "id")

	if err := h.departmentService.AssignEmployee(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee assigned to department", nil)
}

// RemoveEmployee implements DepartmentHandler.
func (h *departmentHandlerImpl) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	req := department.RemoveEmployeeRequest{
		DepartmentID: chi.URLParam(r, "id"),
		EmployeeID:   chi.URLParam(r, "employeeId"),
	}

	if err := h.departmentService.RemoveEmployee(r.Context(), req, middleware.EmployeeID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee removed from department", nil)
}

// AssignLeader implements DepartmentHandler.
func (h *departmentHandlerImpl) AssignLeader(w http.ResponseWriter, r *http.Request) {
	var req department.AssignLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.DepartmentID = chi.URLParam(r, "id")

	if err := h.departmentService.AssignLeader(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department leader assigned", nil)
}

// RemoveLeader implements DepartmentHandler.
func (h *departmentHandlerImpl) RemoveLeader(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.RemoveLeader(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department leader removed", nil)
}

// Attendance implements DepartmentHandler. Lists the attendance records
// of the department's members, optionally scoped to one day via the
// "date" query parameter.
func (h *departmentHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")

	members, err := h.employeeRepo.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if len(members) == 0 {
		response.HandleError(w, department.ErrNoMembers)
		return
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	var dateFilter *string
	if date := r.URL.Query().Get("date"); date != "" {
		dateFilter = &date
	}

	records, err := h.attendanceRepo.ListByEmployees(r.Context(), ids, dateFilter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		results = append(results, attendance.ToResponse(rec))
	}

	response.Success(w, results)
}
