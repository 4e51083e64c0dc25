package booking

import (
	"context"
	"time"

	"github.com/barbershop-bg/booking-api/internal/cache"
	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	loc   *time.Location
	cache *cache.AvailabilityCache
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	loc *time.Location,
	cache *cache.AvailabilityCache,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		loc:   loc,
		cache: cache,
	}
}

// Execute applies an admin status change. Admins skip the customer lead
// window but the state machine still holds: only confirmed bookings move,
// and only to completed or cancelled.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	target := domain.Status(status)
	if target != domain.StatusCompleted && target != domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now().In(uc.loc)

	switch target {
	case domain.StatusCompleted:
		err = domain.Complete(b, now)
	case domain.StatusCancelled:
		err = domain.Cancel(b, now)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if target == domain.StatusCancelled {
		// the slot is free again
		uc.cache.InvalidateDay(ctx, b.StartTime.In(uc.loc).Format("2006-01-02"))
	}

	return b, nil
}
