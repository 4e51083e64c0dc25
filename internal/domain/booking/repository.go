package booking

import (
	"context"
	"time"

	"github.com/barbershop-bg/booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Schedule --------
	GetScheduleForDay(
		ctx context.Context,
		day Weekday,
	) (*models.Schedule, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListActiveBookingsForRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingInSlot re-checks the booking's interval against all
	// non-cancelled bookings and inserts it as one isolated unit, so two
	// concurrent overlapping creates can never both succeed.
	CreateBookingInSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Scheduler --------

	// CompleteElapsed transitions every confirmed booking whose start
	// instant is before now to completed, returning how many changed.
	CompleteElapsed(
		ctx context.Context,
		now time.Time,
	) (int64, error)

	ListUnremindedInWindow(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// MarkReminderSent flips reminder_sent to true for a still-confirmed
	// booking; false means another pass already claimed it.
	MarkReminderSent(
		ctx context.Context,
		id uint,
	) (bool, error)
}
