package clock

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/timeclock-backend-go/internal/domain/attendance"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
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

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = active
	f.employees[id] = e
	return nil
}

type fakeScheduleRepo struct {
	schedule.DepartmentScheduleRepository
	schedules map[string]schedule.Schedule
}

func (f *fakeScheduleRepo) ResolveForRole(_ context.Context, departmentID, role string) (schedule.Schedule, error) {
	s, ok := f.schedules[departmentID+"/"+strings.ToUpper(role)]
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[a.EmployeeID+"/"+a.Date] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	a, ok := f.records[employeeID+"/"+date]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	for key, existing := range f.records {
		if existing.ID == a.ID {
			f.records[key] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

const (
	testEmployeeID   = "emp-1"
	testDepartmentID = "dept-1"
)

func strPtr(s string) *string { return &s }

func newTestService(sched schedule.Schedule) (attendance.ClockService, *fakeEmployeeRepo, *fakeAttendanceRepo) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {
			ID:           testEmployeeID,
			Username:     "jdoe",
			FirstName:    "Jane",
			LastName:     "Doe",
			AccessLevel:  employee.AccessLevelEmployee,
			Role:         strPtr("Engineer"),
			DepartmentID: strPtr(testDepartmentID),
		},
		"emp-unassigned": {
			ID:          "emp-unassigned",
			Username:    "drift",
			AccessLevel: employee.AccessLevelEmployee,
		},
	}}

	schedules := &fakeScheduleRepo{schedules: map[string]schedule.Schedule{
		testDepartmentID + "/ENGINEER": sched,
	}}

	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}

	return NewClockService(employees, schedules, attendances), employees, attendances
}

func clockReq(employeeID, clockTime string) attendance.ClockRequest {
	return attendance.ClockRequest{
		EmployeeID: employeeID,
		TimeStamp:  "2026-03-02T" + clockTime + ":00Z",
	}
}

func TestTimeInClampsEarlyArrivalOnFixedSchedule(t *testing.T) {
	svc, employees, _ := newTestService(fixedSchedule(false))

	resp, err := svc.TimeIn(context.Background(), clockReq(testEmployeeID, "08:45"))
	require.NoError(t, err)

	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "09:00", *resp.TimeIn)
	assert.Equal(t, string(attendance.StatusOngoing), resp.Status)
	assert.Equal(t, string(schedule.ScheduleTypeFixed), resp.ScheduleType)
	assert.True(t, employees.employees[testEmployeeID].IsActive)
}

func TestTimeInKeepsRawTimeOnFlexiSchedule(t *testing.T) {
	svc, _, _ := newTestService(flexiSchedule())

	resp, err := svc.TimeIn(context.Background(), clockReq(testEmployeeID, "07:20"))
	require.NoError(t, err)

	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "07:20", *resp.TimeIn)
}

func TestTimeInRejections(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq("ghost", "09:00"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.TimeIn(ctx, clockReq("emp-unassigned", "09:00"))
	assert.ErrorIs(t, err, employee.ErrNotAssigned)

	_, err = svc.TimeIn(ctx, attendance.ClockRequest{EmployeeID: testEmployeeID, TimeStamp: "not-a-time"})
	assert.Error(t, err)
}

func TestTimeInRejectedWhileOnBreak(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)
	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "12:15"))
	require.NoError(t, err)

	_, err = svc.TimeIn(ctx, clockReq(testEmployeeID, "12:30"))
	assert.ErrorIs(t, err, attendance.ErrOnBreak)
}

func TestTimeInWithoutScheduleMapping(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {
			ID:           testEmployeeID,
			Role:         strPtr("Intern"),
			DepartmentID: strPtr(testDepartmentID),
		},
	}}
	schedules := &fakeScheduleRepo{schedules: map[string]schedule.Schedule{}}
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	svc := NewClockService(employees, schedules, attendances)

	_, err := svc.TimeIn(context.Background(), clockReq(testEmployeeID, "09:00"))
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestTimeInResumesClosedDay(t *testing.T) {
	svc, employees, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)
	_, err = svc.TimeOut(ctx, clockReq(testEmployeeID, "16:00"))
	require.NoError(t, err)
	assert.False(t, employees.employees[testEmployeeID].IsActive)

	resp, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "16:30"))
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusOngoing), resp.Status)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "09:00", *resp.TimeIn)
	assert.Nil(t, resp.TimeOut)
	assert.Zero(t, resp.TimeTotal)
	assert.Zero(t, resp.TimeHoursWorked)
	assert.True(t, employees.employees[testEmployeeID].IsActive)
}

func TestFixedDayWithoutOvertime(t *testing.T) {
	svc, employees, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "08:45"))
	require.NoError(t, err)

	lunchIn, err := svc.LunchIn(ctx, clockReq(testEmployeeID, "12:00"))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusBreak), lunchIn.Status)

	lunchOut, err := svc.LunchOut(ctx, clockReq(testEmployeeID, "13:20"))
	require.NoError(t, err)
	require.NotNil(t, lunchOut.LunchTimeOut)
	assert.Equal(t, "13:00", *lunchOut.LunchTimeOut)
	assert.InDelta(t, 1.0, lunchOut.LunchTimeTotal, 1e-9)
	assert.Equal(t, string(attendance.StatusOngoing), lunchOut.Status)

	resp, err := svc.TimeOut(ctx, clockReq(testEmployeeID, "17:30"))
	require.NoError(t, err)

	require.NotNil(t, resp.TimeOut)
	assert.Equal(t, "17:00", *resp.TimeOut)
	assert.InDelta(t, 8.0, resp.TimeTotal, 1e-9)
	assert.InDelta(t, 7.0, resp.TimeHoursWorked, 1e-9)
	assert.Zero(t, resp.OverTimeTotal)
	assert.Equal(t, string(attendance.StatusDone), resp.Status)
	assert.False(t, employees.employees[testEmployeeID].IsActive)
}

func TestFixedDayWithOvertime(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(true))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)

	resp, err := svc.TimeOut(ctx, clockReq(testEmployeeID, "18:00"))
	require.NoError(t, err)

	require.NotNil(t, resp.TimeOut)
	assert.Equal(t, "18:00", *resp.TimeOut)
	assert.InDelta(t, 1.0, resp.OverTimeTotal, 1e-9)
	assert.InDelta(t, 9.0, resp.TimeHoursWorked, 1e-9)
}

func TestSecondTimeOutIsRejectedWithoutMutation(t *testing.T) {
	svc, _, attendances := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)
	first, err := svc.TimeOut(ctx, clockReq(testEmployeeID, "16:00"))
	require.NoError(t, err)

	_, err = svc.TimeOut(ctx, clockReq(testEmployeeID, "17:00"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)

	stored := attendances.records[testEmployeeID+"/2026-03-02"]
	require.NotNil(t, stored.TimeOut)
	assert.Equal(t, *first.TimeOut, stored.TimeOut.String())
	assert.Equal(t, attendance.StatusDone, stored.Status)
}

func TestTimeOutRejections(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeOut(ctx, clockReq(testEmployeeID, "17:00"))
	assert.ErrorIs(t, err, attendance.ErrNoRecordToday)

	_, err = svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)
	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "12:10"))
	require.NoError(t, err)

	_, err = svc.TimeOut(ctx, clockReq(testEmployeeID, "17:00"))
	assert.ErrorIs(t, err, attendance.ErrOnBreak)
}

func TestLunchInWindowOnFixedSchedule(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)

	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "11:00"))
	assert.ErrorIs(t, err, attendance.ErrLunchTooEarly)

	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "13:30"))
	assert.ErrorIs(t, err, attendance.ErrLunchTooLate)

	resp, err := svc.LunchIn(ctx, clockReq(testEmployeeID, "12:10"))
	require.NoError(t, err)
	require.NotNil(t, resp.LunchTimeIn)
	assert.Equal(t, "12:10", *resp.LunchTimeIn)
}

func TestLunchInOutsideWindowAllowedOnFlexi(t *testing.T) {
	svc, _, _ := newTestService(flexiSchedule())
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "08:00"))
	require.NoError(t, err)

	resp, err := svc.LunchIn(ctx, clockReq(testEmployeeID, "10:30"))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusBreak), resp.Status)
}

func TestLunchInResumeKeepsOriginalLunchIn(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)
	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "12:05"))
	require.NoError(t, err)
	_, err = svc.LunchOut(ctx, clockReq(testEmployeeID, "12:20"))
	require.NoError(t, err)

	resp, err := svc.LunchIn(ctx, clockReq(testEmployeeID, "12:40"))
	require.NoError(t, err)

	require.NotNil(t, resp.LunchTimeIn)
	assert.Equal(t, "12:05", *resp.LunchTimeIn)
	assert.Nil(t, resp.LunchTimeOut)
	assert.Zero(t, resp.LunchTimeTotal)
}

func TestLunchOutRejections(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))
	ctx := context.Background()

	_, err := svc.LunchOut(ctx, clockReq(testEmployeeID, "13:00"))
	assert.ErrorIs(t, err, attendance.ErrLunchNotStarted)

	_, err = svc.TimeIn(ctx, clockReq(testEmployeeID, "09:00"))
	require.NoError(t, err)

	_, err = svc.LunchOut(ctx, clockReq(testEmployeeID, "13:00"))
	assert.ErrorIs(t, err, attendance.ErrLunchNotStarted)

	_, err = svc.LunchIn(ctx, clockReq(testEmployeeID, "12:10"))
	require.NoError(t, err)
	_, err = svc.LunchOut(ctx, clockReq(testEmployeeID, "12:40"))
	require.NoError(t, err)

	_, err = svc.LunchOut(ctx, clockReq(testEmployeeID, "12:50"))
	assert.ErrorIs(t, err, attendance.ErrLunchAlreadyEnded)
}

func TestTodayWithoutRecord(t *testing.T) {
	svc, _, _ := newTestService(fixedSchedule(false))

	_, err := svc.Today(context.Background(), testEmployeeID)
	assert.ErrorIs(t, err, attendance.ErrNoRecordToday)

	_, err = svc.Today(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
