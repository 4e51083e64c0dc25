package booking

import (
	"time"

	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

// ClosingGrace is how far past the last nominal slot a service may still
// end. It lets a long service start near closing time without being
// excluded for running slightly over.
const ClosingGrace = time.Hour

const slotLayout = "15:04"

// ParseSlot validates a nominal "HH:MM" slot string and anchors it on the
// given calendar day.
func ParseSlot(day time.Time, slot string) (time.Time, error) {
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time_format")
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}

// WorkdayCutoff is the instant the day's last appointment must end by:
// one ClosingGrace after the day's final nominal slot. Unparseable slot
// strings are skipped.
func WorkdayCutoff(day time.Time, slots []string) time.Time {
	var last time.Time
	for _, s := range slots {
		t, err := ParseSlot(day, s)
		if err != nil {
			continue
		}
		if t.After(last) {
			last = t
		}
	}
	return last.Add(ClosingGrace)
}

// ===============================
// Intervals
// ===============================

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses half-open semantics: touching endpoints do not conflict.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// IntervalOf reconstructs a booking's occupied interval from its
// snapshotted service duration.
func IntervalOf(b *models.Booking) Interval {
	return Interval{
		Start: b.StartTime,
		End:   b.StartTime.Add(time.Duration(b.ServiceDuration) * time.Minute),
	}
}

// HasConflict reports whether the proposed interval overlaps any of the
// given bookings. Cancelled bookings never conflict.
func HasConflict(proposed Interval, existing []models.Booking) bool {
	for i := range existing {
		if existing[i].Status == string(StatusCancelled) {
			continue
		}
		if proposed.Overlaps(IntervalOf(&existing[i])) {
			return true
		}
	}
	return false
}
