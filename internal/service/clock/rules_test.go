package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

func fixedSchedule(allowedOvertime bool) schedule.Schedule {
	return schedule.Schedule{
		ScheduleType:    schedule.ScheduleTypeFixed,
		StartTime:       timeutil.FromHourMinute(9, 0),
		EndTime:         timeutil.FromHourMinute(17, 0),
		LunchStartTime:  timeutil.FromHourMinute(12, 0),
		LunchEndTime:    timeutil.FromHourMinute(13, 0),
		AllowedOvertime: allowedOvertime,
	}
}

func flexiSchedule() schedule.Schedule {
	s := fixedSchedule(false)
	s.ScheduleType = schedule.ScheduleTypeFlexi
	return s
}

func TestEffectiveTimeIn(t *testing.T) {
	tests := []struct {
		name     string
		raw      timeutil.TimeOfDay
		schedule schedule.Schedule
		want     timeutil.TimeOfDay
	}{
		{
			name:     "fixed early arrival clamped to start",
			raw:      timeutil.FromHourMinute(8, 45),
			schedule: fixedSchedule(false),
			want:     timeutil.FromHourMinute(9, 0),
		},
		{
			name:     "fixed late arrival untouched",
			raw:      timeutil.FromHourMinute(9, 30),
			schedule: fixedSchedule(false),
			want:     timeutil.FromHourMinute(9, 30),
		},
		{
			name:     "fixed exact start untouched",
			raw:      timeutil.FromHourMinute(9, 0),
			schedule: fixedSchedule(false),
			want:     timeutil.FromHourMinute(9, 0),
		},
		{
			name:     "flexi early arrival untouched",
			raw:      timeutil.FromHourMinute(7, 15),
			schedule: flexiSchedule(),
			want:     timeutil.FromHourMinute(7, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveTimeIn(tt.raw, tt.schedule))
		})
	}
}

func TestEffectiveLunchOut(t *testing.T) {
	tests := []struct {
		name     string
		raw      timeutil.TimeOfDay
		schedule schedule.Schedule
		want     timeutil.TimeOfDay
	}{
		{
			name:     "fixed late return capped at lunch end",
			raw:      timeutil.FromHourMinute(13, 20),
			schedule: fixedSchedule(false),
			want:     timeutil.FromHourMinute(13, 0),
		},
		{
			name:     "fixed return inside window untouched",
			raw:      timeutil.FromHourMinute(12, 50),
			schedule: fixedSchedule(false),
			want:     timeutil.FromHourMinute(12, 50),
		},
		{
			name:     "flexi late return untouched",
			raw:      timeutil.FromHourMinute(13, 20),
			schedule: flexiSchedule(),
			want:     timeutil.FromHourMinute(13, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveLunchOut(tt.raw, tt.schedule))
		})
	}
}

func TestComputeDurations(t *testing.T) {
	nineAM := timeutil.FromHourMinute(9, 0)

	tests := []struct {
		name       string
		timeIn     timeutil.TimeOfDay
		rawTimeOut timeutil.TimeOfDay
		lunchHours float64
		schedule   schedule.Schedule
		want       Durations
	}{
		{
			name:       "fixed no overtime clamps late time-out to scheduled end",
			timeIn:     nineAM,
			rawTimeOut: timeutil.FromHourMinute(17, 30),
			lunchHours: 1.0,
			schedule:   fixedSchedule(false),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(17, 0),
				TimeTotal:       8.0,
				TimeHoursWorked: 7.0,
				OverTimeTotal:   0,
			},
		},
		{
			name:       "fixed overtime allowed records raw time-out and excess",
			timeIn:     nineAM,
			rawTimeOut: timeutil.FromHourMinute(18, 0),
			lunchHours: 1.0,
			schedule:   fixedSchedule(true),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(18, 0),
				TimeTotal:       9.0,
				TimeHoursWorked: 8.0,
				OverTimeTotal:   1.0,
			},
		},
		{
			name:       "fixed time-out before end is never clamped",
			timeIn:     nineAM,
			rawTimeOut: timeutil.FromHourMinute(16, 0),
			lunchHours: 1.0,
			schedule:   fixedSchedule(false),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(16, 0),
				TimeTotal:       7.0,
				TimeHoursWorked: 6.0,
				OverTimeTotal:   0,
			},
		},
		{
			name:       "flexi past end always accrues overtime without clamping",
			timeIn:     nineAM,
			rawTimeOut: timeutil.FromHourMinute(18, 30),
			lunchHours: 0.5,
			schedule:   flexiSchedule(),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(18, 30),
				TimeTotal:       9.5,
				TimeHoursWorked: 9.0,
				OverTimeTotal:   1.5,
			},
		},
		{
			name:       "time-out earlier than time-in guards to zero",
			timeIn:     timeutil.FromHourMinute(16, 0),
			rawTimeOut: timeutil.FromHourMinute(9, 30),
			lunchHours: 0,
			schedule:   fixedSchedule(false),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(9, 30),
				TimeTotal:       0,
				TimeHoursWorked: 0,
				OverTimeTotal:   0,
			},
		},
		{
			name:       "lunch longer than gross guards worked hours to zero",
			timeIn:     timeutil.FromHourMinute(12, 0),
			rawTimeOut: timeutil.FromHourMinute(12, 30),
			lunchHours: 1.0,
			schedule:   fixedSchedule(false),
			want: Durations{
				TimeOut:         timeutil.FromHourMinute(12, 30),
				TimeTotal:       0.5,
				TimeHoursWorked: 0,
				OverTimeTotal:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDurations(tt.timeIn, tt.rawTimeOut, tt.lunchHours, tt.schedule)
			assert.Equal(t, tt.want.TimeOut, got.TimeOut)
			assert.InDelta(t, tt.want.TimeTotal, got.TimeTotal, 1e-9)
			assert.InDelta(t, tt.want.TimeHoursWorked, got.TimeHoursWorked, 1e-9)
			assert.InDelta(t, tt.want.OverTimeTotal, got.OverTimeTotal, 1e-9)
		})
	}
}

func TestComputeDurationsRoundTrip(t *testing.T) {
	// Worked hours plus lunch equals the gross total whenever nothing
	// is guarded to zero.
	sched := fixedSchedule(true)
	timeIn := timeutil.FromHourMinute(9, 0)

	for _, out := range []timeutil.TimeOfDay{
		timeutil.FromHourMinute(15, 45),
		timeutil.FromHourMinute(17, 0),
		timeutil.FromHourMinute(19, 10),
	} {
		got := ComputeDurations(timeIn, out, 0.75, sched)
		assert.InDelta(t, got.TimeTotal, got.TimeHoursWorked+0.75, 1e-9)
	}
}

func TestLunchHours(t *testing.T) {
	assert.InDelta(t, 1.0, LunchHours(timeutil.FromHourMinute(12, 0), timeutil.FromHourMinute(13, 0)), 1e-9)
	assert.InDelta(t, float64(50)/60, LunchHours(timeutil.FromHourMinute(12, 10), timeutil.FromHourMinute(13, 0)), 1e-9)
	assert.Zero(t, LunchHours(timeutil.FromHourMinute(13, 0), timeutil.FromHourMinute(12, 30)))
}
