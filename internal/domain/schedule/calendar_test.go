package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleFor_Weekdays(t *testing.T) {
	// 2026-08-24 is a Monday.
	for i := 0; i < 5; i++ {
		d := date(2026, time.August, 24).AddDate(0, 0, i)
		ds := ScheduleFor(d)

		require.True(t, ds.Working, "weekday %s should be working", d.Weekday())
		assert.Equal(t, 8, ds.Start.Hour())
		assert.Equal(t, 17, ds.End.Hour())
		assert.Equal(t, d.Day(), ds.Start.Day())
	}
}

func TestScheduleFor_Saturday(t *testing.T) {
	ds := ScheduleFor(date(2026, time.August, 29)) // Saturday

	require.True(t, ds.Working)
	assert.Equal(t, 8, ds.Start.Hour())
	assert.Equal(t, 13, ds.End.Hour())
}

func TestScheduleFor_Sunday(t *testing.T) {
	ds := ScheduleFor(date(2026, time.August, 30)) // Sunday

	assert.False(t, ds.Working)
	assert.True(t, ds.Start.IsZero())
	assert.True(t, ds.End.IsZero())
}

func TestScheduleFor_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	d := time.Date(2026, time.August, 25, 9, 30, 0, 0, loc)

	ds := ScheduleFor(d)
	assert.Equal(t, loc, ds.Start.Location())
	assert.Equal(t, 0, ds.Start.Minute())
}

func TestDateOnly(t *testing.T) {
	d := time.Date(2026, time.August, 25, 14, 45, 12, 99, time.UTC)
	assert.Equal(t, date(2026, time.August, 25), DateOnly(d))
}
