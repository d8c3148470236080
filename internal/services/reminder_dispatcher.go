package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/terraincognita07/remedywhisper/internal/models"
	"go.uber.org/zap"
)

const (
	reminderTickInterval = time.Minute
	maxSentReminderKeys  = 500
	reminderTimeLayout   = "15:04"
)

type profileSource interface {
	ListProfileIDs() ([]string, error)
	State(profileID string) (models.HealthProfileState, error)
}

type ReminderDispatcher struct {
	profiles profileSource
	senders  []ReminderSender
	location *time.Location
	logger   *zap.Logger
	interval time.Duration
	now      func() time.Time

	mu            sync.Mutex
	sentReminders map[string]time.Time
}

func NewReminderDispatcher(directory *ProfileDirectory, senders []ReminderSender, location *time.Location, logger *zap.Logger) *ReminderDispatcher {
	return newReminderDispatcher(directory, senders, location, logger)
}

func newReminderDispatcher(profiles profileSource, senders []ReminderSender, location *time.Location, logger *zap.Logger) *ReminderDispatcher {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderDispatcher{
		profiles:      profiles,
		senders:       senders,
		location:      location,
		logger:        logger,
		interval:      reminderTickInterval,
		now:           time.Now,
		sentReminders: make(map[string]time.Time),
	}
}

func (dispatcher *ReminderDispatcher) Enabled() bool {
	return len(dispatcher.senders) > 0
}

// Run checks for due reminders right away and then on every tick until ctx
// is cancelled. It returns nil immediately when no sender is configured.
func (dispatcher *ReminderDispatcher) Run(ctx context.Context) error {
	if !dispatcher.Enabled() {
		return nil
	}

	ticker := time.NewTicker(dispatcher.interval)
	defer ticker.Stop()

	dispatcher.DispatchDue(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			dispatcher.DispatchDue(ctx)
		}
	}
}

// DispatchDue delivers every reminder due at the current minute and returns
// how many reminders were handed to the senders.
func (dispatcher *ReminderDispatcher) DispatchDue(ctx context.Context) int {
	profileIDs, err := dispatcher.profiles.ListProfileIDs()
	if err != nil {
		dispatcher.logger.Error("reminders: list profiles failed", zap.Error(err))
		return 0
	}

	now := dispatcher.now().In(dispatcher.location)
	dispatched := 0
	for _, profileID := range profileIDs {
		state, err := dispatcher.profiles.State(profileID)
		if err != nil {
			dispatcher.logger.Warn("reminders: read profile failed", zap.String("profile_id", profileID), zap.Error(err))
			continue
		}

		for _, reminder := range DueReminders(state.Reminders, now) {
			key := fmt.Sprintf("reminder:%s:%s:%s", profileID, reminder.ID, now.Format("2006-01-02"))
			if !dispatcher.shouldSend(key, now) {
				continue
			}
			dispatcher.deliver(ctx, profileID, reminder)
			dispatched++
		}
	}
	return dispatched
}

func (dispatcher *ReminderDispatcher) deliver(ctx context.Context, profileID string, reminder models.Reminder) {
	for _, sender := range dispatcher.senders {
		if err := sender.Send(ctx, profileID, reminder); err != nil {
			dispatcher.logger.Warn("reminders: send failed",
				zap.String("sender", sender.Name()),
				zap.String("profile_id", profileID),
				zap.String("reminder_id", reminder.ID),
				zap.Error(err),
			)
		}
	}
}

func (dispatcher *ReminderDispatcher) shouldSend(key string, now time.Time) bool {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()

	if sentOn, ok := dispatcher.sentReminders[key]; ok && sameCalendarDay(sentOn, now) {
		return false
	}

	if len(dispatcher.sentReminders) >= maxSentReminderKeys {
		dispatcher.sentReminders = make(map[string]time.Time)
	}
	dispatcher.sentReminders[key] = now
	return true
}

// DueReminders returns the active reminders scheduled for the minute of now.
// A reminder without days fires every day.
func DueReminders(reminders []models.Reminder, now time.Time) []models.Reminder {
	clock := now.Format(reminderTimeLayout)
	weekday := now.Format("Mon")

	due := make([]models.Reminder, 0)
	for _, reminder := range reminders {
		if !reminder.IsActive || strings.TrimSpace(reminder.Time) != clock {
			continue
		}
		if len(reminder.Days) > 0 && !reminderRunsOn(reminder.Days, weekday) {
			continue
		}
		due = append(due, reminder)
	}
	return due
}

func reminderRunsOn(days []string, weekday string) bool {
	for _, day := range days {
		day = strings.TrimSpace(day)
		if len(day) >= 3 && strings.EqualFold(day[:3], weekday) {
			return true
		}
	}
	return false
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
