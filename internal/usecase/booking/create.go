package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/cache"
	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/feed"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
	"github.com/barbershop-bg/booking-api/internal/notification"
	"github.com/barbershop-bg/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID   uint
	UserName string
	Phone    string

	ServiceID uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	loc   *time.Location
	sms   *notification.Dispatcher
	feed  *feed.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateBooking(
	repo domain.Repository,
	loc *time.Location,
	sms *notification.Dispatcher,
	feedDispatcher *feed.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		loc:   loc,
		sms:   sms,
		feed:  feedDispatcher,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the whole create-booking unit: validation, schedule
// membership, the isolated conflict re-check plus insert, and finally the
// best-effort notifications. Any failure before the insert leaves no
// state behind.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields + phone
	// --------------------------------------------------
	if in.UserName == "" || in.Phone == "" || in.ServiceID == 0 ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	phone := validators.FormatToE164(in.Phone)
	if !validators.IsValidBulgarianPhone(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2. Date / time in the shop's clock
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 4. Weekday schedule: the requested time must be an
	//    advertised slot, not an arbitrary instant
	// --------------------------------------------------
	schedule, err := uc.repo.GetScheduleForDay(ctx, domain.WeekdayOf(start))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("day_off")
		}
		return nil, err
	}

	if len(schedule.Slots) == 0 {
		return nil, httperr.ErrBusiness("day_off")
	}

	advertised := false
	for _, s := range schedule.Slots {
		if s == in.Time {
			advertised = true
			break
		}
	}
	if !advertised {
		return nil, httperr.ErrBusiness("time_not_in_schedule")
	}

	// --------------------------------------------------
	// 5. Workday cutoff: the service must end within one
	//    grace hour of the last nominal slot
	// --------------------------------------------------
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)
	if end.After(domain.WorkdayCutoff(start, schedule.Slots)) {
		return nil, httperr.ErrBusiness("past_closing_time")
	}

	// --------------------------------------------------
	// 6. Atomic conflict re-check + insert
	// --------------------------------------------------
	b := &models.Booking{
		Code:     uuid.NewString(),
		UserID:   in.UserID,
		UserName: in.UserName,
		Phone:    phone,

		ServiceID:       service.ID,
		ServiceName:     service.Name,
		ServiceDuration: service.DurationMin,
		ServicePrice:    service.Price,

		StartTime: start,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBookingInSlot(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.Date)

	// --------------------------------------------------
	// 7. Best-effort side effects, off the response path
	// --------------------------------------------------
	if uc.sms != nil {
		uc.sms.Dispatch(notification.Message{
			To:   phone,
			Body: notification.ConfirmationMessage(b),
		})
	}

	if uc.feed != nil {
		uc.feed.Dispatch(feed.Event{
			Type:      feed.TypeBooking,
			Title:     "Нова резервация",
			Message:   fmt.Sprintf("%s — %s, %s в %s ч.", b.UserName, b.ServiceName, in.Date, b.Time),
			BookingID: &b.ID,
		})
	}

	return b, nil
}
