package models

import "time"

// AchievementCategory groups achievements by the activity that earns them.
type AchievementCategory string

const (
	CategoryVocabulary AchievementCategory = "Vocabulary"
	CategoryStreak     AchievementCategory = "Streak"
	CategoryChallenge  AchievementCategory = "Challenge"
	CategoryFinancial  AchievementCategory = "Financial"
	CategoryLocation   AchievementCategory = "Location"
	CategorySocial     AchievementCategory = "Social"
)

// Achievement is an award earned by a user. The title acts as the
// de-duplication key: a given title can be earned at most once per user.
// Immutable once created.
type Achievement struct {
	ID               string              `json:"id" db:"id"`
	UserID           int64               `json:"user_id" db:"user_id"`
	Title            string              `json:"title" db:"title"`
	Description      string              `json:"description" db:"description"`
	Icon             string              `json:"icon" db:"icon"`
	Category         AchievementCategory `json:"category" db:"category"`
	ExperienceReward int                 `json:"experience_reward" db:"experience_reward"`
	UnlockedAt       time.Time           `json:"unlocked_at" db:"unlocked_at"`
}
