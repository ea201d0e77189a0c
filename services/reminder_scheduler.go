package services

import (
	"context"
	"fmt"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderScheduler sweeps upcoming postings and pushes tee-time reminders
// at the 24-hour and 2-hour marks. The sweep is stateless: each pass only
// looks at a lead-time window around its mark, sized so that consecutive
// runs neither skip nor double-fire an event as long as the sweep interval
// stays under two hours. Overlapping runs inside one window can duplicate
// a reminder; there is no persisted sent-marker.
type ReminderScheduler struct {
	db       *gorm.DB
	push     *PushService
	log      *zap.SugaredLogger
	interval time.Duration
	now      func() time.Time
}

func NewReminderScheduler(db *gorm.DB, push *PushService, log *zap.SugaredLogger) *ReminderScheduler {
	return &ReminderScheduler{
		db:       db,
		push:     push,
		log:      log,
		interval: time.Hour,
		now:      time.Now,
	}
}

// Run blocks, sweeping once per interval until ctx is cancelled.
func (s *ReminderScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs both lead-time passes once. The processed counts are a
// diagnostic, not a delivery guarantee.
func (s *ReminderScheduler) Sweep() {
	now := s.now()
	n24 := s.sweepWindow(
		now.Add(23*time.Hour), now.Add(25*time.Hour),
		models.CategoryReminder24h, "tomorrow",
	)
	n2 := s.sweepWindow(
		now.Add(90*time.Minute), now.Add(150*time.Minute),
		models.CategoryReminder2h, "in about two hours",
	)
	s.log.Infow("reminder sweep complete", "events_24h", n24, "events_2h", n2)
}

// sweepWindow notifies the owner and every player of each posting teeing
// off in [from, to), deduplicated, each in their own device-local time.
func (s *ReminderScheduler) sweepWindow(from, to time.Time, category, lead string) int {
	var postings []models.Posting
	err := s.db.
		Preload("Players").
		Where("tee_time >= ? AND tee_time < ?", from, to).
		Find(&postings).Error
	if err != nil {
		s.log.Errorw("reminder sweep query failed", "category", category, "err", err)
		return 0
	}

	for i := range postings {
		p := &postings[i]

		recipients := map[uint]struct{}{p.OwnerID: {}}
		for _, pl := range p.Players {
			recipients[pl.UserID] = struct{}{}
		}

		course := p.CourseName
		if course == "" {
			course = "Unknown Course"
		}
		teeTime := p.TeeTime
		msg := Message{
			Category: category,
			Title:    "Tee time reminder",
			Body:     fmt.Sprintf("You tee off %s at %s, %s.", lead, course, TimePlaceholder),
			Data: map[string]any{
				"posting_id": p.ID,
				"tee_time":   p.TeeTime,
			},
			EventAt: &teeTime,
		}
		for id := range recipients {
			s.push.Dispatch(id, msg)
		}
	}
	return len(postings)
}
