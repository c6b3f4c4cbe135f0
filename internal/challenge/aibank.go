package challenge

import (
	"go.uber.org/zap"

	"github.com/example/linguabot/pkg/models"
)

// Generator produces practice questions on demand, typically backed by an
// external model.
type Generator interface {
	GenerateQuestions(languageName, category string, count int) ([]models.ChallengeQuestion, error)
}

// GeneratedBank asks a Generator for questions and falls back to another bank
// when generation fails or returns nothing.
type GeneratedBank struct {
	gen      Generator
	names    map[string]string // language code to display name
	fallback QuestionBank
	log      *zap.Logger
}

// NewGeneratedBank builds a bank over gen. names maps language codes to the
// display names used in prompts. fallback may not be nil.
func NewGeneratedBank(gen Generator, names map[string]string, fallback QuestionBank, log *zap.Logger) *GeneratedBank {
	if log == nil {
		log = zap.NewNop()
	}
	return &GeneratedBank{gen: gen, names: names, fallback: fallback, log: log}
}

// Questions returns generated questions for the language and category,
// falling back to the static bank on failure.
func (b *GeneratedBank) Questions(languageCode, category string, limit int) ([]models.ChallengeQuestion, error) {
	name, ok := b.names[languageCode]
	if !ok || b.gen == nil {
		return b.fallback.Questions(languageCode, category, limit)
	}

	questions, err := b.gen.GenerateQuestions(name, category, limit)
	if err != nil {
		b.log.Warn("question generation failed, using built-in bank",
			zap.String("language", languageCode),
			zap.String("category", category),
			zap.Error(err))
		return b.fallback.Questions(languageCode, category, limit)
	}
	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}
