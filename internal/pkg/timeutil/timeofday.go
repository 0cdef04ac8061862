package timeutil

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
// Schedule comparisons never care about the calendar date, so every
// timestamp is reduced to this type before being compared against a
// schedule boundary.
type TimeOfDay int

const MinutesPerDay = 24 * 60

// At extracts the time-of-day from a timestamp, dropping seconds.
func At(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// FromHourMinute builds a TimeOfDay from an hour and minute pair.
func FromHourMinute(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Parse accepts either a bare clock time ("15:04") or an RFC3339
// timestamp, of which only the time-of-day component is kept.
func Parse(s string) (TimeOfDay, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return At(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return At(t), nil
	}
	return 0, fmt.Errorf("invalid time of day %q: expected HH:MM or RFC3339", s)
}

func (d TimeOfDay) Hour() int   { return int(d) / 60 }
func (d TimeOfDay) Minute() int { return int(d) % 60 }

func (d TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour(), d.Minute())
}

func (d TimeOfDay) Before(o TimeOfDay) bool { return d < o }
func (d TimeOfDay) After(o TimeOfDay) bool  { return d > o }

// MinutesSince returns the signed minute distance from o to d.
func (d TimeOfDay) MinutesSince(o TimeOfDay) int {
	return int(d) - int(o)
}

// Valid reports whether d falls inside a single calendar day. Windows
// crossing midnight are not supported and must be rejected at write time.
func (d TimeOfDay) Valid() bool {
	return d >= 0 && d < MinutesPerDay
}

// DayKey normalizes a timestamp to its calendar-day string, the natural
// key of an attendance record.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameCalendarDay reports whether two timestamps fall on the same
// calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
