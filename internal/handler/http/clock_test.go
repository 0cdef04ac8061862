package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/validator"
)

type stubClockService struct {
	resp attendance.AttendanceResponse
	err  error
}

func (s *stubClockService) TimeIn(context.Context, attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

func (s *stubClockService) TimeOut(context.Context, attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

func (s *stubClockService) LunchIn(context.Context, attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

func (s *stubClockService) LunchOut(context.Context, attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

func (s *stubClockService) Today(context.Context, string) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

func postTimeIn(t *testing.T, svc attendance.ClockService) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewClockHandler(svc)
	body := `{"employeeId":"emp-1","timeStamp":"2026-03-02T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/time-in", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.TimeIn(rec, req)
	return rec
}

func TestClockHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"employee missing", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"no assignment", employee.ErrNotAssigned, http.StatusBadRequest},
		{"no schedule", schedule.ErrScheduleNotFound, http.StatusBadRequest},
		{"on break", attendance.ErrOnBreak, http.StatusBadRequest},
		{"already clocked out", attendance.ErrAlreadyClockedOut, http.StatusBadRequest},
		{"lunch too early", attendance.ErrLunchTooEarly, http.StatusBadRequest},
		{"invalid input", validator.ValidationErrors{{Field: "timeStamp", Message: "bad"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postTimeIn(t, &stubClockService{err: tt.err})
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Success bool `json:"success"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestClockHandlerSuccess(t *testing.T) {
	timeIn := "09:00"
	rec := postTimeIn(t, &stubClockService{resp: attendance.AttendanceResponse{
		ID:     "att-1",
		Status: string(attendance.StatusOngoing),
		TimeIn: &timeIn,
	}})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status string  `json:"status"`
			TimeIn *string `json:"timeIn"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ONGOING", resp.Data.Status)
	require.NotNil(t, resp.Data.TimeIn)
	assert.Equal(t, "09:00", *resp.Data.TimeIn)
}

func TestClockHandlerMalformedBody(t *testing.T) {
	handler := NewClockHandler(&stubClockService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/time-in", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.TimeIn(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
