package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	TimeIn(w http.ResponseWriter, r *http.Request)
	TimeOut(w http.ResponseWriter, r *http.Request)
	LunchIn(w http.ResponseWriter, r *http.Request)
	LunchOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type clockHandlerImpl struct {
	clockService attendance.ClockService
}

func NewClockHandler(clockService attendance.ClockService) ClockHandler {
	return &clockHandlerImpl{
		clockService: clockService,
	}
}

func decodeClockRequest(w http.ResponseWriter, r *http.Request) (attendance.ClockRequest, bool) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return attendance.ClockRequest{}, false
	}
	return req, true
}

// TimeIn implements ClockHandler.
func (h *clockHandlerImpl) TimeIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.clockService.TimeIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time in recorded", result)
}

// TimeOut implements ClockHandler.
func (h *clockHandlerImpl) TimeOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.clockService.TimeOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time out recorded", result)
}

// LunchIn implements ClockHandler.
func (h *clockHandlerImpl) LunchIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.clockService.LunchIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch time in recorded", result)
}

// LunchOut implements ClockHandler.
func (h *clockHandlerImpl) LunchOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.clockService.LunchOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch time out recorded", result)
}

// Today implements ClockHandler.
func (h *clockHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.clockService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
