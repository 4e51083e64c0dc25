package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbershop-bg/booking-api/internal/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Sofia")
	require.NoError(t, err)
	return time.Date(2025, 6, 2, 0, 0, 0, 0, loc) // a Monday
}

func TestParseSlot(t *testing.T) {
	d := day(t)

	got, err := ParseSlot(d, "10:30")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, d.Location(), got.Location())
	assert.Equal(t, d.Day(), got.Day())

	_, err = ParseSlot(d, "25:00")
	assert.Error(t, err)

	_, err = ParseSlot(d, "10.30")
	assert.Error(t, err)
}

func TestIntervalOverlaps(t *testing.T) {
	d := day(t)

	at := func(slot string) time.Time {
		s, err := ParseSlot(d, slot)
		require.NoError(t, err)
		return s
	}

	iv := func(from, to string) Interval {
		return Interval{Start: at(from), End: at(to)}
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv("10:00", "10:30"), iv("10:00", "10:30"), true},
		{"contained", iv("10:00", "11:00"), iv("10:15", "10:45"), true},
		{"partial", iv("10:00", "11:00"), iv("10:30", "11:30"), true},
		{"touching end to start", iv("10:00", "10:30"), iv("10:30", "11:00"), false},
		{"touching start to end", iv("10:30", "11:00"), iv("10:00", "10:30"), false},
		{"disjoint", iv("10:00", "10:30"), iv("12:00", "12:30"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWorkdayCutoff(t *testing.T) {
	d := day(t)

	cutoff := WorkdayCutoff(d, []string{"10:30", "09:00", "11:00"})
	want, err := ParseSlot(d, "12:00")
	require.NoError(t, err)
	assert.True(t, cutoff.Equal(want))

	// order does not matter, unparseable entries are skipped
	cutoff = WorkdayCutoff(d, []string{"bogus", "11:00", "10:00"})
	assert.True(t, cutoff.Equal(want))
}

func TestHasConflictSkipsCancelled(t *testing.T) {
	d := day(t)

	start, err := ParseSlot(d, "10:00")
	require.NoError(t, err)

	cancelled := models.Booking{
		StartTime:       start,
		ServiceDuration: 60,
		Status:          string(StatusCancelled),
	}

	proposed := Interval{Start: start, End: start.Add(30 * time.Minute)}

	assert.False(t, HasConflict(proposed, []models.Booking{cancelled}))

	confirmed := cancelled
	confirmed.Status = string(StatusConfirmed)
	assert.True(t, HasConflict(proposed, []models.Booking{confirmed}))
}

func TestWeekdayOf(t *testing.T) {
	d := day(t)

	assert.Equal(t, Monday, WeekdayOf(d))
	assert.Equal(t, Sunday, WeekdayOf(d.AddDate(0, 0, 6)))
}

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday("  Friday ")
	require.NoError(t, err)
	assert.Equal(t, Friday, w)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}
