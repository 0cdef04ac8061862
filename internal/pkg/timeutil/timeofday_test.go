package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt_DropsDateAndSeconds(t *testing.T) {
	ts := time.Date(2024, 9, 15, 8, 45, 59, 0, time.UTC)
	tod := At(ts)

	assert.Equal(t, 8, tod.Hour())
	assert.Equal(t, 45, tod.Minute())
	assert.Equal(t, "08:45", tod.String())
}

func TestAt_DifferentDatesSameClockTimeAreEqual(t *testing.T) {
	a := time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)
	b := time.Date(2024, 9, 15, 12, 30, 12, 0, time.UTC)

	assert.Equal(t, At(a), At(b))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "clock time", input: "09:00", want: FromHourMinute(9, 0)},
		{name: "late clock time", input: "17:30", want: FromHourMinute(17, 30)},
		{name: "rfc3339", input: "2024-09-15T13:20:00Z", want: FromHourMinute(13, 20)},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesSince(t *testing.T) {
	start := FromHourMinute(9, 0)
	end := FromHourMinute(17, 30)

	assert.Equal(t, 510, end.MinutesSince(start))
	assert.Equal(t, -510, start.MinutesSince(end))
	assert.Equal(t, 0, start.MinutesSince(start))
}

func TestBeforeAfter(t *testing.T) {
	early := FromHourMinute(8, 45)
	start := FromHourMinute(9, 0)

	assert.True(t, early.Before(start))
	assert.True(t, start.After(early))
	assert.False(t, start.Before(start))
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2024, 9, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-09-15", DayKey(ts))

	next := ts.Add(2 * time.Minute)
	assert.False(t, SameCalendarDay(ts, next))
	assert.True(t, SameCalendarDay(ts, ts.Add(-time.Hour)))
}

func TestValid(t *testing.T) {
	assert.True(t, FromHourMinute(0, 0).Valid())
	assert.True(t, FromHourMinute(23, 59).Valid())
	assert.False(t, TimeOfDay(-1).Valid())
	assert.False(t, TimeOfDay(MinutesPerDay).Valid())
}
