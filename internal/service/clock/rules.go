package clock

import (
	"github.com/workpulse/timeclock-backend-go/internal/domain/schedule"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/timeutil"
)

// Durations holds the derived fields of a completed attendance day. All
// totals are hours; TimeOut is the effective (possibly clamped) value
// that gets recorded.
type Durations struct {
	TimeOut         timeutil.TimeOfDay
	TimeTotal       float64
	TimeHoursWorked float64
	OverTimeTotal   float64
}

// EffectiveTimeIn clamps an early arrival forward to the scheduled
// start on FIXED schedules. Flexible schedules take the raw time.
func EffectiveTimeIn(raw timeutil.TimeOfDay, s schedule.Schedule) timeutil.TimeOfDay {
	if s.Fixed() && raw.Before(s.StartTime) {
		return s.StartTime
	}
	return raw
}

// EffectiveLunchOut caps a late lunch return at the scheduled lunch end
// on FIXED schedules.
func EffectiveLunchOut(raw timeutil.TimeOfDay, s schedule.Schedule) timeutil.TimeOfDay {
	if s.Fixed() && raw.After(s.LunchEndTime) {
		return s.LunchEndTime
	}
	return raw
}

// ComputeDurations derives the recorded time-out and the day's totals
// from a raw clock-out, minus time spent at lunch.
//
// FIXED schedules clamp a time-out past the scheduled end back to the
// end unless overtime is allowed, in which case the excess is credited
// as overtime and the raw time-out is recorded. Flexible schedules
// never clamp; any time past the nominal end is overtime. Totals are
// computed from the effective time-out, so unpaid excess never inflates
// worked hours.
func ComputeDurations(timeIn, rawTimeOut timeutil.TimeOfDay, lunchHours float64, s schedule.Schedule) Durations {
	effectiveOut := rawTimeOut
	overtime := 0.0

	switch {
	case s.Fixed():
		if rawTimeOut.After(s.EndTime) {
			if s.AllowedOvertime {
				overtime = float64(rawTimeOut.MinutesSince(s.EndTime)) / 60
			} else {
				effectiveOut = s.EndTime
			}
		}
	default:
		if rawTimeOut.After(s.EndTime) {
			overtime = float64(rawTimeOut.MinutesSince(s.EndTime)) / 60
		}
	}

	gross := float64(effectiveOut.MinutesSince(timeIn)) / 60
	if gross < 0 {
		gross = 0
	}

	worked := gross - lunchHours
	if worked < 0 {
		worked = 0
	}

	return Durations{
		TimeOut:         effectiveOut,
		TimeTotal:       gross,
		TimeHoursWorked: worked,
		OverTimeTotal:   overtime,
	}
}

// LunchHours computes the hours between lunch-in and an effective
// lunch-out, guarded to never go negative.
func LunchHours(lunchIn, effectiveLunchOut timeutil.TimeOfDay) float64 {
	minutes := effectiveLunchOut.MinutesSince(lunchIn)
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60
}
