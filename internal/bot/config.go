package bot

import (
	"time"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Number of questions per quiz
	QuizQuestionLimit int
	// Experience granted for a plain /study session
	StudySessionXP int
	// Length credited for a plain /study session
	StudySessionLength time.Duration
	// How long a conversation state is kept before expiring
	StateTimeout time.Duration
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		QuizQuestionLimit:  5,
		StudySessionXP:     50,
		StudySessionLength: 15 * time.Minute,
		StateTimeout:       30 * time.Minute,
	}
}
