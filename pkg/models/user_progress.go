package models

import "time"

// UserProgress tracks a learner's state for one language. There is at most
// one record per (user, language) pair; it is mutated only by the progress
// tracker in response to study sessions and challenge completions.
type UserProgress struct {
	ID                  int64            `json:"id" db:"id"`
	UserID              int64            `json:"user_id" db:"user_id"`
	LanguageCode        string           `json:"language_code" db:"language_code"`
	Level               ProficiencyLevel `json:"level" db:"level"`
	ExperiencePoints    int              `json:"experience_points" db:"experience_points"`
	Streak              int              `json:"streak" db:"streak"`
	LastStudyDate       time.Time        `json:"last_study_date" db:"last_study_date"`
	TotalStudySeconds   int64            `json:"total_study_seconds" db:"total_study_seconds"`
	VocabularyMastered  int              `json:"vocabulary_mastered" db:"vocabulary_mastered"`
	CompletedChallenges []string         `json:"completed_challenges"`
	CreatedAt           time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at" db:"updated_at"`
}

// TotalStudyTime returns the accumulated study time as a duration.
func (p *UserProgress) TotalStudyTime() time.Duration {
	return time.Duration(p.TotalStudySeconds) * time.Second
}

// HasCompleted reports whether the challenge identifier is already recorded.
func (p *UserProgress) HasCompleted(challengeID string) bool {
	for _, id := range p.CompletedChallenges {
		if id == challengeID {
			return true
		}
	}
	return false
}
