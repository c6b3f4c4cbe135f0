package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/linguabot/internal/appstate"
	"github.com/example/linguabot/internal/challenge"
	"github.com/example/linguabot/internal/database"
	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/pkg/models"
)

// Default window for sending streak reminders.
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier interface for sending notifications
type Notifier interface {
	SendStreakReminder(userID int64, languageCode string, streak int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	engine    *challenge.Engine
	catalog   *refdata.Catalog
	state     *appstate.Holder
	notifier  Notifier
	log       *zap.Logger
}

// New creates a new scheduler instance
func New(engine *challenge.Engine, catalog *refdata.Catalog, state *appstate.Holder, notifier Notifier, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		engine:    engine,
		catalog:   catalog,
		state:     state,
		notifier:  notifier,
		log:       log,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Rotate the daily challenge set at midnight UTC
	s.scheduler.Every(1).Day().At("00:00").Do(s.RotateDailyChallenges)

	// Hourly sweep for streaks about to lapse
	s.scheduler.Every(1).Hour().Do(s.checkStreaksAtRisk)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RotateDailyChallenges regenerates the daily challenge set for every
// language in the catalog and publishes it to the shared state.
func (s *Scheduler) RotateDailyChallenges() {
	var all []models.Challenge
	for _, lang := range s.catalog.Languages() {
		set, err := s.engine.DailyChallenges(lang.Code)
		if err != nil {
			s.log.Error("failed to generate daily challenges",
				zap.String("language", lang.Code),
				zap.Error(err))
			continue
		}
		all = append(all, set...)
	}
	s.state.Apply(appstate.SetChallenges(all))
	s.log.Info("rotated daily challenges", zap.Int("count", len(all)))
}

// checkStreaksAtRisk reminds users whose streak lapses today if they skip
// their session. Reminders are only sent inside the configured window.
func (s *Scheduler) checkStreaksAtRisk() {
	if s.notifier == nil {
		return
	}

	currentHour := time.Now().Hour()
	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		s.log.Debug("outside notification hours, skipping reminders",
			zap.Int("hour", currentHour),
			zap.Int("start", startHour),
			zap.Int("end", endHour))
		return
	}

	progressRepo := database.NewUserProgressRepository()
	atRisk, err := progressRepo.GetStreaksAtRisk(time.Now())
	if err != nil {
		s.log.Error("failed to get streaks at risk", zap.Error(err))
		return
	}

	for _, p := range atRisk {
		if err := s.notifier.SendStreakReminder(p.UserID, p.LanguageCode, p.Streak); err != nil {
			s.log.Error("failed to send streak reminder",
				zap.Int64("user_id", p.UserID),
				zap.Error(err))
		}
	}
}

// envHour reads an hour from the environment, falling back when unset or invalid
func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
