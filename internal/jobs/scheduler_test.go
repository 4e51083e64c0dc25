package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
	"github.com/barbershop-bg/booking-api/internal/notification"
)

// jobRepo is a minimal in-memory Repository for exercising the two ticks.
type jobRepo struct {
	mu       sync.Mutex
	bookings map[uint]models.Booking
	nextID   uint
}

func newJobRepo() *jobRepo {
	return &jobRepo{bookings: make(map[uint]models.Booking)}
}

func (r *jobRepo) add(b models.Booking) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = b
	return b.ID
}

func (r *jobRepo) get(id uint) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id]
}

func (r *jobRepo) GetService(context.Context, uint) (*models.Service, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *jobRepo) GetScheduleForDay(context.Context, domain.Weekday) (*models.Schedule, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *jobRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *jobRepo) ListActiveBookingsForRange(context.Context, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *jobRepo) CreateBookingInSlot(context.Context, *models.Booking) error {
	return httperr.ErrBusiness("time_conflict")
}

func (r *jobRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ID] = *b
	return nil
}

func (r *jobRepo) CompleteElapsed(_ context.Context, now time.Time) (int64, error) {
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

func (r *jobRepo) ListUnremindedInWindow(_ context.Context, start, end time.Time) ([]models.Booking, error) {
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

func (r *jobRepo) MarkReminderSent(_ context.Context, id uint) (bool, error) {
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

var _ domain.Repository = (*jobRepo)(nil)

// recordingSender counts sends and can be told to fail.
type recordingSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (s *recordingSender) Send(_ context.Context, to, _ string) notification.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return notification.Result{Success: false, Err: "carrier unavailable"}
	}
	s.sent = append(s.sent, to)
	return notification.Result{Success: true, SID: "SM-test"}
}

func (s *recordingSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Sofia")
	require.NoError(t, err)
	return loc
}

func confirmed(start time.Time) models.Booking {
	return models.Booking{
		UserName:        "Димитър",
		Phone:           "+359888123456",
		ServiceName:     "Подстригване",
		ServiceDuration: 30,
		StartTime:       start,
		Time:            start.Format("15:04"),
		Status:          string(domain.StatusConfirmed),
	}
}

func TestAutoCompleteTick(t *testing.T) {
	loc := testLoc(t)
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, loc)

	repo := newJobRepo()
	elapsed1 := repo.add(confirmed(now.Add(-2 * time.Hour)))
	elapsed2 := repo.add(confirmed(now.Add(-time.Minute)))
	future := repo.add(confirmed(now.Add(time.Hour)))

	cancelled := confirmed(now.Add(-time.Hour))
	cancelled.Status = string(domain.StatusCancelled)
	skipped := repo.add(cancelled)

	s := NewScheduler(repo, &recordingSender{}, loc)

	s.AutoCompleteTick(context.Background(), now)

	assert.Equal(t, string(domain.StatusCompleted), repo.get(elapsed1).Status)
	assert.Equal(t, string(domain.StatusCompleted), repo.get(elapsed2).Status)
	assert.Equal(t, string(domain.StatusConfirmed), repo.get(future).Status)
	assert.Equal(t, string(domain.StatusCancelled), repo.get(skipped).Status)

	// rerunning changes nothing
	n, err := repo.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReminderTickWindow(t *testing.T) {
	loc := testLoc(t)
	// 10:20 + 3h lead puts the window at [13:00, 13:59:59]
	now := time.Date(2025, 6, 2, 10, 20, 0, 0, loc)

	repo := newJobRepo()
	inWindow := repo.add(confirmed(time.Date(2025, 6, 2, 13, 30, 0, 0, loc)))
	nextHour := repo.add(confirmed(time.Date(2025, 6, 2, 14, 0, 0, 0, loc)))
	prevHour := repo.add(confirmed(time.Date(2025, 6, 2, 12, 30, 0, 0, loc)))

	sender := &recordingSender{}
	s := NewScheduler(repo, sender, loc)

	s.ReminderTick(context.Background(), now)

	assert.Equal(t, 1, sender.sentCount())
	assert.True(t, repo.get(inWindow).ReminderSent)
	assert.False(t, repo.get(nextHour).ReminderSent)
	assert.False(t, repo.get(prevHour).ReminderSent)

	// the flag makes the next pass a no-op
	s.ReminderTick(context.Background(), now)
	assert.Equal(t, 1, sender.sentCount())
}

func TestReminderTickRetriesAfterSendFailure(t *testing.T) {
	loc := testLoc(t)
	now := time.Date(2025, 6, 2, 10, 20, 0, 0, loc)

	repo := newJobRepo()
	id := repo.add(confirmed(time.Date(2025, 6, 2, 13, 30, 0, 0, loc)))

	sender := &recordingSender{fail: true}
	s := NewScheduler(repo, sender, loc)

	s.ReminderTick(context.Background(), now)
	assert.Zero(t, sender.sentCount())
	assert.False(t, repo.get(id).ReminderSent)

	sender.mu.Lock()
	sender.fail = false
	sender.mu.Unlock()

	s.ReminderTick(context.Background(), now.Add(10*time.Minute))
	assert.Equal(t, 1, sender.sentCount())
	assert.True(t, repo.get(id).ReminderSent)
}
