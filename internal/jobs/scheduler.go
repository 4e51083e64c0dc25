package jobs

import (
	"context"
	"log"
	"time"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/notification"
	"github.com/barbershop-bg/booking-api/internal/validators"
)

const (
	autoCompleteInterval = time.Hour
	reminderInterval     = 10 * time.Minute

	// reminders go out for bookings starting about this far ahead
	reminderLead = 3 * time.Hour
)

// Scheduler runs the two background lifecycle tasks: auto-completing
// elapsed bookings and dispatching SMS reminders. Both ticks are
// idempotent conditional updates, so rerunning one is a no-op.
type Scheduler struct {
	repo domain.Repository
	sms  notification.Sender
	loc  *time.Location
}

func NewScheduler(
	repo domain.Repository,
	sms notification.Sender,
	loc *time.Location,
) *Scheduler {
	return &Scheduler{
		repo: repo,
		sms:  sms,
		loc:  loc,
	}
}

// Start launches both loops; they stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx, autoCompleteInterval, s.AutoCompleteTick)
	go s.loop(ctx, reminderInterval, s.ReminderTick)
}

func (s *Scheduler) loop(
	ctx context.Context,
	interval time.Duration,
	tick func(ctx context.Context, now time.Time),
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx, time.Now().In(s.loc))
		}
	}
}

// AutoCompleteTick moves every confirmed booking whose start instant has
// passed to completed.
func (s *Scheduler) AutoCompleteTick(ctx context.Context, now time.Time) {
	n, err := s.repo.CompleteElapsed(ctx, now)
	if err != nil {
		log.Println("auto-complete job error:", err)
		return
	}

	if n > 0 {
		log.Printf("auto-completed %d bookings", n)
	}
}

// ReminderTick sends reminders for confirmed bookings starting inside the
// clock hour that lies reminderLead ahead of now. The reminder flag is
// set only after a successful send, so a failed send gets retried on the
// next pass while the window lasts.
func (s *Scheduler) ReminderTick(ctx context.Context, now time.Time) {
	target := now.Add(reminderLead).In(s.loc)

	windowStart := time.Date(
		target.Year(), target.Month(), target.Day(),
		target.Hour(), 0, 0, 0,
		s.loc,
	)
	windowEnd := windowStart.Add(time.Hour - time.Second)

	bookings, err := s.repo.ListUnremindedInWindow(ctx, windowStart, windowEnd)
	if err != nil {
		log.Println("reminder job error:", err)
		return
	}

	for i := range bookings {
		b := &bookings[i]

		res := s.sms.Send(
			ctx,
			validators.FormatToE164(b.Phone),
			notification.ReminderMessage(b),
		)
		if !res.Success {
			log.Printf("reminder send failed for booking %d (%s): %s", b.ID, b.Phone, res.Err)
			continue
		}

		claimed, err := s.repo.MarkReminderSent(ctx, b.ID)
		if err != nil {
			log.Printf("reminder flag update failed for booking %d: %v", b.ID, err)
			continue
		}
		if claimed {
			log.Printf("reminder sent to %s for %s", b.UserName, b.Time)
		}
	}
}
