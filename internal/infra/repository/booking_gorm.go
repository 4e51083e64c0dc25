package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetScheduleForDay(
	ctx context.Context,
	day domain.Weekday,
) (*models.Schedule, error) {

	var schedule models.Schedule
	if err := r.db.WithContext(ctx).
		Where("day = ?", string(day)).
		First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListActiveBookingsForRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"status <> ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBookingInSlot serializes create attempts per calendar day with a
// transaction-scoped advisory lock, then re-checks overlap against the
// snapshot it now exclusively owns. Two concurrent overlapping creates
// therefore end with exactly one insert and one time_conflict.
func (r *BookingGormRepository) CreateBookingInSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	dayStart := time.Date(
		b.StartTime.Year(), b.StartTime.Month(), b.StartTime.Day(),
		0, 0, 0, 0,
		b.StartTime.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		lockKey := "bookings:" + dayStart.Format("2006-01-02")
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			lockKey,
		).Error; err != nil {
			return err
		}

		var sameDay []models.Booking
		if err := tx.
			Where(
				"status <> ? AND start_time >= ? AND start_time < ?",
				string(domain.StatusCancelled), dayStart, dayEnd,
			).
			Find(&sameDay).Error; err != nil {
			return err
		}

		if domain.HasConflict(domain.IntervalOf(b), sameDay) {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Scheduler
// --------------------------------------------------

func (r *BookingGormRepository) CompleteElapsed(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"status = ? AND start_time < ?",
			string(domain.StatusConfirmed), now,
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) ListUnremindedInWindow(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND reminder_sent = ? AND start_time >= ? AND start_time <= ?",
			string(domain.StatusConfirmed), false, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"id = ? AND status = ? AND reminder_sent = ?",
			id, string(domain.StatusConfirmed), false,
		).
		Update("reminder_sent", true)

	return res.RowsAffected > 0, res.Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
