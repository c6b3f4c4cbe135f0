package models

import "time"

// ChallengeDifficulty is the difficulty tier of a challenge.
type ChallengeDifficulty string

const (
	DifficultyEasy       ChallengeDifficulty = "Easy"
	DifficultyMedium     ChallengeDifficulty = "Medium"
	DifficultyHard       ChallengeDifficulty = "Hard"
	DifficultyExpertTier ChallengeDifficulty = "Expert"
)

// Multiplier returns the fixed reward scaling for the difficulty tier.
func (d ChallengeDifficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 1.0
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	case DifficultyExpertTier:
		return 3.0
	}
	return 1.0
}

// ChallengeQuestion is a single multiple-choice question. Immutable once
// generated.
type ChallengeQuestion struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	AudioRef     string   `json:"audio_ref,omitempty"`
}

// Challenge is a quiz-style exercise generated fresh each session. Completing
// one produces a score in [0,1]; the identifier is then recorded on the
// user's progress.
type Challenge struct {
	ID               string              `json:"id"`
	LanguageCode     string              `json:"language_code"`
	Category         string              `json:"category"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Difficulty       ChallengeDifficulty `json:"difficulty"`
	ExperienceReward int                 `json:"experience_reward"`
	TimeLimit        time.Duration       `json:"time_limit,omitempty"` // 0 means untimed
	Questions        []ChallengeQuestion `json:"questions"`
	RequiredCity     string              `json:"required_city,omitempty"` // "" means no location gate
}
