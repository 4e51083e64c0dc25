package booking

import (
	"strings"
	"time"

	"github.com/barbershop-bg/booking-api/internal/httperr"
)

// ===============================
// Weekday
// ===============================

// Weekday is the closed set of schedule keys. Schedules are stored per
// weekday name, not per calendar date.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf maps any calendar date onto its schedule key.
func WeekdayOf(t time.Time) Weekday {
	return weekdays[t.Weekday()]
}

func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return w, nil
	}
	return "", httperr.ErrBusiness("invalid_weekday")
}
