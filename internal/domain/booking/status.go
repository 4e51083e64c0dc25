package booking

import (
	"time"

	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CancelWindow is the minimum lead time a customer must leave when
// cancelling their own booking. Admins are not bound by it.
const CancelWindow = 2 * time.Hour

func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel: only confirmed bookings may be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only confirmed bookings may be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelAsCustomer additionally enforces the self-service lead time:
// the booking must still be in the future and more than CancelWindow away.
func CanCancelAsCustomer(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}
	if !b.StartTime.After(now) {
		return httperr.ErrBusiness("booking_already_started")
	}
	if b.StartTime.Sub(now) <= CancelWindow {
		return httperr.ErrBusiness("too_late_to_cancel")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}
