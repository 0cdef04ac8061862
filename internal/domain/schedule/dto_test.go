package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

func validCreateRequest() CreateDepartmentScheduleRequest {
	return CreateDepartmentScheduleRequest{
		DepartmentID:   "dept-1",
		Role:           "engineer",
		Name:           "Engineering day shift",
		ScheduleType:   "FIXED",
		StartTime:      "09:00",
		EndTime:        "17:00",
		LunchStartTime: "12:00",
		LunchEndTime:   "13:00",
	}
}

func TestCreateDepartmentScheduleRequestValidate(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, req.Validate())

	start, end, lunchStart, lunchEnd := req.Times()
	assert.Equal(t, timeutil.FromHourMinute(9, 0), start)
	assert.Equal(t, timeutil.FromHourMinute(17, 0), end)
	assert.Equal(t, timeutil.FromHourMinute(12, 0), lunchStart)
	assert.Equal(t, timeutil.FromHourMinute(13, 0), lunchEnd)
}

func TestCreateDepartmentScheduleRequestRejectsMidnightCrossing(t *testing.T) {
	req := validCreateRequest()
	req.StartTime = "22:00"
	req.EndTime = "06:00"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.LunchStartTime = "23:30"
	req.LunchEndTime = "00:30"
	assert.Error(t, req.Validate())
}

func TestCreateDepartmentScheduleRequestRejectsBadInput(t *testing.T) {
	req := validCreateRequest()
	req.ScheduleType = "ROTATING"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.StartTime = "9 o'clock"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.Role = "   "
	assert.Error(t, req.Validate())
}

func TestNormalizedRole(t *testing.T) {
	req := validCreateRequest()
	req.Role = "  Engineer "
	assert.Equal(t, "ENGINEER", req.NormalizedRole())
}
