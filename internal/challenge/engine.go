// Package challenge generates daily quiz challenges and scores completed
// attempts. Question content comes from a pluggable QuestionBank so the
// built-in bank can be swapped for an AI-backed or imported one.
package challenge

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/linguabot/pkg/models"
)

// ErrNoQuestions is returned when a challenge without questions is scored.
// Such a challenge must never be presented to a user.
var ErrNoQuestions = errors.New("challenge has no questions")

// QuestionBank supplies questions for a language and category. Returning an
// empty slice is not an error; the engine simply skips that archetype.
type QuestionBank interface {
	Questions(languageCode, category string, limit int) ([]models.ChallengeQuestion, error)
}

// archetype describes one of the fixed daily challenge templates.
type archetype struct {
	category    string
	title       string
	description string
	difficulty  models.ChallengeDifficulty
	reward      int
	timeLimit   time.Duration
	questions   int
}

var dailyArchetypes = []archetype{
	{
		category:    "vocabulary",
		title:       "Daily Vocabulary",
		description: "Learn 10 new words in your target language",
		difficulty:  models.DifficultyEasy,
		reward:      100,
		timeLimit:   10 * time.Minute,
		questions:   10,
	},
	{
		category:    "grammar",
		title:       "Grammar Focus",
		description: "Master verb conjugations",
		difficulty:  models.DifficultyMedium,
		reward:      200,
		timeLimit:   15 * time.Minute,
		questions:   10,
	},
	{
		category:    "listening",
		title:       "Listening Practice",
		description: "Improve your listening comprehension",
		difficulty:  models.DifficultyHard,
		reward:      300,
		timeLimit:   20 * time.Minute,
		questions:   10,
	},
}

// Engine generates and scores challenges.
type Engine struct {
	bank QuestionBank
	log  *zap.Logger
}

// NewEngine creates an engine over the given question bank.
func NewEngine(bank QuestionBank, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{bank: bank, log: log}
}

// DailyChallenges produces the fixed daily set for a language: one challenge
// per archetype. Challenges are generated fresh per session and are not
// persisted. Archetypes the bank has no questions for are skipped.
func (e *Engine) DailyChallenges(languageCode string) ([]models.Challenge, error) {
	var out []models.Challenge
	for _, a := range dailyArchetypes {
		questions, err := e.bank.Questions(languageCode, a.category, a.questions)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s questions: %v", a.category, err)
		}
		if len(questions) == 0 {
			e.log.Debug("archetype_skipped",
				zap.String("language", languageCode),
				zap.String("category", a.category),
			)
			continue
		}
		out = append(out, models.Challenge{
			ID:               uuid.NewString(),
			LanguageCode:     languageCode,
			Category:         a.category,
			Title:            a.title,
			Description:      a.description,
			Difficulty:       a.difficulty,
			ExperienceReward: a.reward,
			TimeLimit:        a.timeLimit,
			Questions:        questions,
		})
	}
	return out, nil
}

// Score computes the fraction of correctly answered questions. selected holds
// one answer index per question; -1, an out-of-range index or a missing entry
// counts as wrong. There is no partial credit.
func Score(ch models.Challenge, selected []int) (float64, error) {
	total := len(ch.Questions)
	if total == 0 {
		return 0, ErrNoQuestions
	}
	return float64(CorrectCount(ch, selected)) / float64(total), nil
}

// CorrectCount returns how many answers match the questions' correct indices.
func CorrectCount(ch models.Challenge, selected []int) int {
	correct := 0
	for i, q := range ch.Questions {
		if i < len(selected) && selected[i] == q.CorrectIndex {
			correct++
		}
	}
	return correct
}

// AvailableAt reports whether the challenge may be presented at the given
// city. Challenges without a location gate are available everywhere; a gated
// challenge requires a matching city.
func AvailableAt(ch models.Challenge, city string) bool {
	return ch.RequiredCity == "" || ch.RequiredCity == city
}
