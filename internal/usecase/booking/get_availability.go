package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httperr"
)

// SlotCache holds computed availability keyed by date, service and the
// service's current duration, so a duration change misses instead of
// serving slots computed for the old length.
type SlotCache interface {
	GetSlots(ctx context.Context, date string, serviceID uint, durationMin int) ([]string, bool)
	SetSlots(ctx context.Context, date string, serviceID uint, durationMin int, slots []string)
}

type GetAvailability struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// Execute returns the bookable "HH:MM" slots for the given day and
// service, in the schedule's stored order. A closed day is an empty list,
// not an error. The service is resolved before the cache is consulted, so
// a deleted service never serves stale slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	day time.Time,
	serviceID uint,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	dateKey := day.Format("2006-01-02")

	if uc.cache != nil {
		if slots, ok := uc.cache.GetSlots(ctx, dateKey, serviceID, service.DurationMin); ok {
			return slots, nil
		}
	}

	schedule, err := uc.repo.GetScheduleForDay(ctx, domain.WeekdayOf(day))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	if len(schedule.Slots) == 0 {
		return []string{}, nil
	}

	dayStart := time.Date(
		day.Year(), day.Month(), day.Day(),
		0, 0, 0, 0,
		day.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListActiveBookingsForRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	cutoff := domain.WorkdayCutoff(day, schedule.Slots)

	available := make([]string, 0, len(schedule.Slots))

	for _, s := range schedule.Slots {
		start, err := domain.ParseSlot(day, s)
		if err != nil {
			continue
		}

		proposed := domain.Interval{Start: start, End: start.Add(duration)}

		if proposed.End.After(cutoff) {
			continue
		}

		if domain.HasConflict(proposed, existing) {
			continue
		}

		available = append(available, s)
	}

	if uc.cache != nil {
		uc.cache.SetSlots(ctx, dateKey, serviceID, service.DurationMin, available)
	}

	return available, nil
}
