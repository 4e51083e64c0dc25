package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

// fakeRepo is an in-memory Repository. CreateBookingInSlot holds a mutex
// across the re-check and the insert, mirroring the per-day isolation the
// real repository gets from its advisory lock.
type fakeRepo struct {
	mu sync.Mutex

	services  map[uint]models.Service
	schedules map[domain.Weekday]models.Schedule
	bookings  map[uint]models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:  make(map[uint]models.Service),
		schedules: make(map[domain.Weekday]models.Schedule),
		bookings:  make(map[uint]models.Booking),
	}
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = s
}

func (r *fakeRepo) addSchedule(day domain.Weekday, slots []string) {
	r.schedules[day] = models.Schedule{Day: string(day), Slots: slots}
}

func (r *fakeRepo) addBooking(b models.Booking) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = b
	return b.ID
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetScheduleForDay(_ context.Context, day domain.Weekday) (*models.Schedule, error) {
	s, ok := r.schedules[day]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) ListActiveBookingsForRange(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeInRangeLocked(start, end), nil
}

func (r *fakeRepo) activeInRangeLocked(start, end time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *fakeRepo) CreateBookingInSlot(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dayStart := time.Date(
		b.StartTime.Year(), b.StartTime.Month(), b.StartTime.Day(),
		0, 0, 0, 0,
		b.StartTime.Location(),
	)
	sameDay := r.activeInRangeLocked(dayStart, dayStart.Add(24*time.Hour))

	if domain.HasConflict(domain.IntervalOf(b), sameDay) {
		return httperr.ErrBusiness("time_conflict")
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) CompleteElapsed(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, b := range r.bookings {
		if b.Status == string(domain.StatusConfirmed) && b.StartTime.Before(now) {
			b.Status = string(domain.StatusCompleted)
			b.CompletedAt = &now
			r.bookings[id] = b
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) ListUnremindedInWindow(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != string(domain.StatusConfirmed) || b.ReminderSent {
			continue
		}
		if b.StartTime.Before(start) || b.StartTime.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) MarkReminderSent(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.Status != string(domain.StatusConfirmed) || b.ReminderSent {
		return false, nil
	}
	b.ReminderSent = true
	r.bookings[id] = b
	return true, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
