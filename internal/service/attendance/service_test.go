package attendance

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.EmployeeID == employeeID && a.Date == date {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	if _, ok := f.records[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Username: "jdoe"},
	}}
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	return NewAttendanceService(attendances, employees), attendances
}

func validCreate() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		EmployeeID:   "emp-1",
		Date:         "2026-03-02",
		Status:       "DONE",
		ScheduleType: "FIXED",
		TimeIn:       strPtr("09:00"),
		TimeOut:      strPtr("17:00"),
		LunchTimeIn:  strPtr("12:00"),
		LunchTimeOut: strPtr("13:00"),
	}
}

func TestCreateDerivesTotals(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.InDelta(t, 8.0, resp.TimeTotal, 1e-9)
	assert.InDelta(t, 1.0, resp.LunchTimeTotal, 1e-9)
	assert.InDelta(t, 7.0, resp.TimeHoursWorked, 1e-9)
	assert.Zero(t, resp.OverTimeTotal)
}

func TestCreateOpenDayLeavesTotalsZero(t *testing.T) {
	svc, _ := newTestService()

	req := validCreate()
	req.Status = "ONGOING"
	req.TimeOut = nil
	req.LunchTimeIn = nil
	req.LunchTimeOut = nil

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Zero(t, resp.TimeTotal)
	assert.Zero(t, resp.TimeHoursWorked)
	assert.Nil(t, resp.TimeOut)
}

func TestCreateRejectsDuplicateDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreate())
	assert.ErrorIs(t, err, attendance.ErrDuplicateDay)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	req := validCreate()
	req.EmployeeID = "ghost"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	req := validCreate()
	req.Date = "March 2, 2026"
	req.Status = "NAPPING"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateRecomputesTotals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	resp, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID:      created.ID,
		TimeOut: strPtr("18:00"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, resp.TimeTotal, 1e-9)
	assert.InDelta(t, 8.0, resp.TimeHoursWorked, 1e-9)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "09:00", *resp.TimeIn)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), attendance.UpdateAttendanceRequest{ID: "nope"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestUpdateDateCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	second := validCreate()
	second.Date = "2026-03-03"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	_, err = svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID:   first.ID,
		Date: strPtr("2026-03-03"),
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateDay)
}

func TestDelete(t *testing.T) {
	svc, attendances := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, attendances.records)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), attendance.ErrAttendanceNotFound)
}
