package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/barbershop-bg/booking-api/internal/cache"
	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/feed"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
	"github.com/barbershop-bg/booking-api/internal/notification"
)

type CancelBooking struct {
	repo  domain.Repository
	loc   *time.Location
	sms   *notification.Dispatcher
	feed  *feed.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCancelBooking(
	repo domain.Repository,
	loc *time.Location,
	sms *notification.Dispatcher,
	feedDispatcher *feed.Dispatcher,
	cache *cache.AvailabilityCache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		loc:   loc,
		sms:   sms,
		feed:  feedDispatcher,
		cache: cache,
	}
}

// Execute cancels the caller's own booking, subject to the two-hour lead
// window enforced by the domain.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.UserID != userID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := time.Now().In(uc.loc)
	if err := domain.CanCancelAsCustomer(b, now); err != nil {
		return nil, err
	}

	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, b.StartTime.In(uc.loc).Format("2006-01-02"))

	if uc.sms != nil {
		uc.sms.Dispatch(notification.Message{
			To:   b.Phone,
			Body: notification.CancellationMessage(b),
		})
	}

	if uc.feed != nil {
		uc.feed.Dispatch(feed.Event{
			Type:      feed.TypeCancellation,
			Title:     "Отменена резервация",
			Message:   fmt.Sprintf("%s отмени %s на %s в %s ч.", b.UserName, b.ServiceName, b.StartTime.Format("02.01.2006"), b.Time),
			BookingID: &b.ID,
		})
	}

	return b, nil
}
