// Package jobs holds the scheduled background work: the nightly reminder for
// the next day's shoots and session cleanup.
package jobs

import (
	"context"
	"time"

	"photodesk/internal/bus"
	"photodesk/internal/data/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Scheduler struct {
	cron     *cron.Cron
	repo     *repository.Repository
	eventBus *bus.Bus
	log      *zap.Logger
}

func NewScheduler(repo *repository.Repository, eventBus *bus.Bus, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		repo:     repo,
		eventBus: eventBus,
		log:      log.With(zap.String("component", "scheduler")),
	}
}

// Start registers the jobs and runs the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	// 18:00 every day: remind about tomorrow's shoots.
	if _, err := s.cron.AddFunc("0 18 * * *", s.remindTomorrow); err != nil {
		return err
	}

	// 03:00 every day: drop expired sessions.
	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanSessions); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) remindTomorrow() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.repo.Booking.FindConfirmedInRange(ctx, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to load tomorrow's bookings", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		s.eventBus.Publish(bus.BookingReminder{
			BookingID: booking.ID,
			Title:     booking.Title,
			Start:     booking.StartTime,
		})
	}

	s.log.Info("Booking reminders published", zap.Int("count", len(bookings)))
}

func (s *Scheduler) cleanSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.repo.Session.CleanExpiredSessions(ctx); err != nil {
		s.log.Error("Failed to clean expired sessions", zap.Error(err))
	}
}
