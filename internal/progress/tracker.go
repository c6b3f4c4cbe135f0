// Package progress maintains per-language learner state: experience points,
// proficiency level, streaks, study time and achievements. All mutation of
// UserProgress records goes through the Tracker.
package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/linguabot/internal/metrics"
	"github.com/example/linguabot/pkg/models"
)

// ErrNotFound is returned by stores when no record exists for the key.
var ErrNotFound = errors.New("progress record not found")

// ErrInvalidInput is returned when a tracker argument fails validation.
var ErrInvalidInput = errors.New("invalid progress input")

// streakMilestones are the streak lengths that earn a milestone achievement.
var streakMilestones = []int{7, 14, 30, 60, 100}

// ProgressStore persists UserProgress records.
type ProgressStore interface {
	GetByUserAndLanguage(userID int64, languageCode string) (*models.UserProgress, error)
	GetByUser(userID int64) ([]models.UserProgress, error)
	Create(p *models.UserProgress) error
	Update(p *models.UserProgress) error
	ResetUser(userID int64) error
}

// AchievementStore persists achievements.
type AchievementStore interface {
	GetByUser(userID int64) ([]models.Achievement, error)
	HasTitle(userID int64, title string) (bool, error)
	Create(a *models.Achievement) error
	ResetUser(userID int64) error
}

// Clock abstracts time for the streak logic. Calendar-day comparisons use
// the local timezone of the returned timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SessionResult describes what a study session changed.
type SessionResult struct {
	Progress       *models.UserProgress
	LeveledUp      bool
	StreakExtended bool
	Unlocked       []models.Achievement
}

// Tracker applies study events to progress records and awards achievements.
type Tracker struct {
	progress     ProgressStore
	achievements AchievementStore
	clock        Clock
	log          *zap.Logger
}

// NewTracker creates a tracker. A nil clock uses the system clock; a nil
// logger disables logging.
func NewTracker(p ProgressStore, a AchievementStore, clock Clock, log *zap.Logger) *Tracker {
	if clock == nil {
		clock = systemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{progress: p, achievements: a, clock: clock, log: log}
}

// AddLanguage creates a fresh A1 progress record for the language and awards
// the "Language Explorer" achievement. If the user already tracks the
// language, the existing record is returned unchanged.
func (t *Tracker) AddLanguage(userID int64, lang models.Language) (*models.UserProgress, []models.Achievement, error) {
	existing, err := t.progress.GetByUserAndLanguage(userID, lang.Code)
	if err == nil {
		return existing, nil, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, nil, err
	}

	now := t.clock.Now()
	p := &models.UserProgress{
		UserID:              userID,
		LanguageCode:        lang.Code,
		Level:               models.LevelA1,
		LastStudyDate:       now,
		CompletedChallenges: []string{},
	}
	if err := t.progress.Create(p); err != nil {
		return nil, nil, fmt.Errorf("failed to create progress record: %v", err)
	}

	unlocked := t.award(userID, models.Achievement{
		Title:            "Language Explorer",
		Description:      fmt.Sprintf("Started learning %s", lang.Name),
		Icon:             "globe",
		Category:         models.CategoryVocabulary,
		ExperienceReward: 100,
	})
	return p, unlocked, nil
}

// RecordStudySession credits xpGained to the user's record for the language,
// then runs the level-up check and the streak update, in that order. The
// streak comparison uses the study date recorded before this session.
//
// A single call advances at most one proficiency level, even when the new
// XP total satisfies several thresholds.
func (t *Tracker) RecordStudySession(userID int64, languageCode string, xpGained int, studyTime time.Duration) (*SessionResult, error) {
	if xpGained < 0 {
		return nil, fmt.Errorf("%w: xp gained must not be negative", ErrInvalidInput)
	}

	p, err := t.progress.GetByUserAndLanguage(userID, languageCode)
	if err != nil {
		return nil, err
	}

	now := t.clock.Now()
	previousStudy := p.LastStudyDate

	p.ExperiencePoints += xpGained
	p.LastStudyDate = now
	p.TotalStudySeconds += int64(studyTime / time.Second)

	res := &SessionResult{Progress: p}

	// Level-up check against the cumulative threshold of the current level.
	if next, ok := p.Level.Next(); ok && p.ExperiencePoints >= p.Level.RequiredXP() {
		p.Level = next
		res.LeveledUp = true
		res.Unlocked = append(res.Unlocked, t.award(userID, models.Achievement{
			Title:            "Level Up!",
			Description:      fmt.Sprintf("Reached %s", next.Label()),
			Icon:             "arrow.up.circle.fill",
			Category:         models.CategoryVocabulary,
			ExperienceReward: 500,
		})...)
	}

	// Streak update with calendar-day granularity.
	switch {
	case sameCalendarDay(previousStudy, now):
		// Already studied today; streak unchanged.
	case sameCalendarDay(previousStudy, now.AddDate(0, 0, -1)):
		p.Streak++
		res.StreakExtended = true
		if isStreakMilestone(p.Streak) {
			res.Unlocked = append(res.Unlocked, t.award(userID, models.Achievement{
				Title:            fmt.Sprintf("%d Day Streak!", p.Streak),
				Description:      fmt.Sprintf("Maintained a %d-day study streak", p.Streak),
				Icon:             "flame.fill",
				Category:         models.CategoryStreak,
				ExperienceReward: p.Streak * 10,
			})...)
		}
	default:
		p.Streak = 1
	}

	if err := t.progress.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update progress record: %v", err)
	}

	metrics.StudySessions.WithLabelValues(languageCode).Inc()
	t.log.Info("study_session_recorded",
		zap.Int64("user_id", userID),
		zap.String("language", languageCode),
		zap.Int("xp_gained", xpGained),
		zap.Bool("leveled_up", res.LeveledUp),
	)
	return res, nil
}

// CompleteChallenge scores a finished challenge into XP and records the
// completion on the user's progress for the challenge's language. A score of
// 0.8 or better additionally earns the "Challenge Master" achievement.
func (t *Tracker) CompleteChallenge(userID int64, ch models.Challenge, score float64) (*SessionResult, error) {
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("%w: score %v outside [0,1]", ErrInvalidInput, score)
	}
	if ch.LanguageCode == "" {
		return nil, fmt.Errorf("%w: challenge has no language code", ErrInvalidInput)
	}

	xpGained := int(math.Round(float64(ch.ExperienceReward) * score))
	res, err := t.RecordStudySession(userID, ch.LanguageCode, xpGained, 0)
	if err != nil {
		return nil, err
	}

	p := res.Progress
	p.CompletedChallenges = append(p.CompletedChallenges, ch.ID)
	if ch.Category == "vocabulary" {
		p.VocabularyMastered += int(math.Round(score * float64(len(ch.Questions))))
	}

	if score >= 0.8 {
		res.Unlocked = append(res.Unlocked, t.award(userID, models.Achievement{
			Title:            "Challenge Master",
			Description:      fmt.Sprintf("Completed '%s' with excellent score", ch.Title),
			Icon:             "star.fill",
			Category:         models.CategoryChallenge,
			ExperienceReward: 200,
		})...)
	}

	if err := t.progress.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update progress record: %v", err)
	}

	metrics.ChallengesCompleted.WithLabelValues(string(ch.Difficulty)).Inc()
	return res, nil
}

// Overview returns everything the user has: progress per language plus the
// full achievement list.
func (t *Tracker) Overview(userID int64) ([]models.UserProgress, []models.Achievement, error) {
	progress, err := t.progress.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	achievements, err := t.achievements.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return progress, achievements, nil
}

// Reset wipes all progress and achievements for the user. This is the only
// operation allowed to decrease experience points.
func (t *Tracker) Reset(userID int64) error {
	if err := t.progress.ResetUser(userID); err != nil {
		return fmt.Errorf("failed to reset progress: %v", err)
	}
	if err := t.achievements.ResetUser(userID); err != nil {
		return fmt.Errorf("failed to reset achievements: %v", err)
	}
	t.log.Info("progress_reset", zap.Int64("user_id", userID))
	return nil
}

// award stores the achievement unless the user already holds the title.
// Returns the stored achievement in a slice, or nil when deduplicated.
func (t *Tracker) award(userID int64, a models.Achievement) []models.Achievement {
	exists, err := t.achievements.HasTitle(userID, a.Title)
	if err != nil {
		t.log.Warn("achievement_lookup_failed", zap.String("title", a.Title), zap.Error(err))
		return nil
	}
	if exists {
		return nil
	}

	a.ID = uuid.NewString()
	a.UserID = userID
	a.UnlockedAt = t.clock.Now()
	if err := t.achievements.Create(&a); err != nil {
		t.log.Warn("achievement_create_failed", zap.String("title", a.Title), zap.Error(err))
		return nil
	}

	metrics.AchievementsUnlocked.WithLabelValues(string(a.Category)).Inc()
	t.log.Info("achievement_unlocked",
		zap.Int64("user_id", userID),
		zap.String("title", a.Title),
	)
	return []models.Achievement{a}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isStreakMilestone(streak int) bool {
	for _, m := range streakMilestones {
		if streak == m {
			return true
		}
	}
	return false
}
