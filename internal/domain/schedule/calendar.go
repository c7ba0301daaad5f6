package schedule

import "time"

// DaySchedule describes the working window for one calendar date. Start and
// End are anchored to the date they were derived from, in that date's
// location.
type DaySchedule struct {
	Working bool
	Start   time.Time
	End     time.Time
}

// Working hours: Monday-Friday 08:00-17:00, Saturday 08:00-13:00, Sunday
// closed.
const (
	workStartHour   = 8
	weekdayEndHour  = 17
	saturdayEndHour = 13
)

// ScheduleFor returns the working window for the given date. It is pure: the
// same date always yields the same schedule.
func ScheduleFor(date time.Time) DaySchedule {
	day := date.Weekday()
	if day == time.Sunday {
		return DaySchedule{Working: false}
	}

	endHour := weekdayEndHour
	if day == time.Saturday {
		endHour = saturdayEndHour
	}

	return DaySchedule{
		Working: true,
		Start:   at(date, workStartHour),
		End:     at(date, endHour),
	}
}

// DateOnly truncates a timestamp to its calendar date, preserving location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func at(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
