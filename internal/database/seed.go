package database

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/pkg/models"
)

// EnsureSeedData populates the languages table with the built-in catalog when
// it is empty. A read failure is logged and the built-in defaults are used by
// the caller, so a corrupt database never blocks startup.
func EnsureSeedData(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	repo := NewLanguageRepository()

	count, err := repo.Count()
	if err != nil {
		log.Warn("failed to count languages, reseeding defaults", zap.Error(err))
		count = 0
	}
	if count > 0 {
		return nil
	}

	for _, lang := range refdata.DefaultLanguages() {
		if err := repo.Upsert(&lang); err != nil {
			return fmt.Errorf("failed to seed language %s: %v", lang.Code, err)
		}
	}
	log.Info("seeded default languages", zap.Int("count", len(refdata.DefaultLanguages())))
	return nil
}

// SeedSampleProgress inserts a demonstration progress record for the given
// user when they have no data yet. Used by the demo mode flag.
func SeedSampleProgress(userID int64) error {
	repo := NewUserProgressRepository()
	existing, err := repo.GetByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to check existing progress: %v", err)
	}
	if len(existing) > 0 {
		return nil
	}

	sample := &models.UserProgress{
		UserID:              userID,
		LanguageCode:        "es",
		Level:               models.LevelB1,
		ExperiencePoints:    2500,
		Streak:              15,
		TotalStudySeconds:   45 * 3600,
		VocabularyMastered:  450,
		CompletedChallenges: []string{},
	}
	if err := repo.Create(sample); err != nil {
		return fmt.Errorf("failed to seed sample progress: %v", err)
	}
	return nil
}
