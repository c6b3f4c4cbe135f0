package progress_test

import (
	"errors"
	"testing"
	"time"

	"github.com/example/linguabot/internal/progress"
	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/pkg/models"
)

// fakeProgressStore keeps progress records in memory, keyed by language.
type fakeProgressStore struct {
	records map[string]*models.UserProgress
	nextID  int64
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]*models.UserProgress)}
}

func (s *fakeProgressStore) GetByUserAndLanguage(userID int64, languageCode string) (*models.UserProgress, error) {
	p, ok := s.records[languageCode]
	if !ok || p.UserID != userID {
		return nil, progress.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProgressStore) GetByUser(userID int64) ([]models.UserProgress, error) {
	var out []models.UserProgress
	for _, p := range s.records {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProgressStore) Create(p *models.UserProgress) error {
	s.nextID++
	p.ID = s.nextID
	cp := *p
	s.records[p.LanguageCode] = &cp
	return nil
}

func (s *fakeProgressStore) Update(p *models.UserProgress) error {
	cp := *p
	s.records[p.LanguageCode] = &cp
	return nil
}

func (s *fakeProgressStore) ResetUser(userID int64) error {
	for code, p := range s.records {
		if p.UserID == userID {
			delete(s.records, code)
		}
	}
	return nil
}

// fakeAchievementStore keeps achievements in memory.
type fakeAchievementStore struct {
	achievements []models.Achievement
}

func (s *fakeAchievementStore) GetByUser(userID int64) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range s.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAchievementStore) HasTitle(userID int64, title string) (bool, error) {
	for _, a := range s.achievements {
		if a.UserID == userID && a.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAchievementStore) Create(a *models.Achievement) error {
	s.achievements = append(s.achievements, *a)
	return nil
}

func (s *fakeAchievementStore) ResetUser(userID int64) error {
	kept := s.achievements[:0]
	for _, a := range s.achievements {
		if a.UserID != userID {
			kept = append(kept, a)
		}
	}
	s.achievements = kept
	return nil
}

// fixedClock returns a controllable time.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

const testUser = int64(42)

func newFixture(t *testing.T) (*progress.Tracker, *fakeProgressStore, *fakeAchievementStore, *fixedClock) {
	t.Helper()
	ps := newFakeProgressStore()
	as := &fakeAchievementStore{}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	return progress.NewTracker(ps, as, clock, nil), ps, as, clock
}

func spanish() models.Language {
	langs := refdata.DefaultLanguages()
	for _, l := range langs {
		if l.Code == "es" {
			return l
		}
	}
	return langs[0]
}

func TestAddLanguage_NewAndExisting(t *testing.T) {
	tracker, _, _, _ := newFixture(t)

	p, unlocked, err := tracker.AddLanguage(testUser, spanish())
	if err != nil {
		t.Fatalf("AddLanguage returned error: %v", err)
	}
	if p.Level != models.LevelA1 {
		t.Errorf("new record level = %v, want A1", p.Level)
	}
	if len(unlocked) != 1 || unlocked[0].Title != "Language Explorer" {
		t.Fatalf("unlocked = %+v, want Language Explorer", unlocked)
	}
	if unlocked[0].ExperienceReward != 100 {
		t.Errorf("Language Explorer reward = %d, want 100", unlocked[0].ExperienceReward)
	}

	// Second call returns the existing record without another award.
	_, unlocked, err = tracker.AddLanguage(testUser, spanish())
	if err != nil {
		t.Fatalf("second AddLanguage returned error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("second AddLanguage unlocked %d achievements, want 0", len(unlocked))
	}
}

func TestRecordStudySession_UnknownLanguage(t *testing.T) {
	tracker, _, _, _ := newFixture(t)

	_, err := tracker.RecordStudySession(testUser, "es", 100, time.Minute)
	if !errors.Is(err, progress.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRecordStudySession_NegativeXP(t *testing.T) {
	tracker, _, _, _ := newFixture(t)

	_, err := tracker.RecordStudySession(testUser, "es", -1, 0)
	if !errors.Is(err, progress.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

// Crossing the 1000 XP threshold at A1 advances exactly one level and awards
// the Level Up achievement.
func TestRecordStudySession_LevelUp(t *testing.T) {
	tracker, ps, _, clock := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	clock.now = clock.now.Add(time.Hour)
	res, err := tracker.RecordStudySession(testUser, "es", 999, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if res.LeveledUp {
		t.Error("999 XP leveled up, want no level change below threshold")
	}

	res, err = tracker.RecordStudySession(testUser, "es", 1, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !res.LeveledUp {
		t.Fatal("1000 XP did not level up")
	}
	if res.Progress.Level != models.LevelA2 {
		t.Errorf("level = %v, want A2", res.Progress.Level)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].Title != "Level Up!" {
		t.Fatalf("unlocked = %+v, want Level Up!", res.Unlocked)
	}
	if res.Unlocked[0].ExperienceReward != 500 {
		t.Errorf("Level Up! reward = %d, want 500", res.Unlocked[0].ExperienceReward)
	}

	stored := ps.records["es"]
	if stored.Level != models.LevelA2 {
		t.Errorf("stored level = %v, want A2", stored.Level)
	}
}

// One session advances at most one level even when the XP total clears
// several thresholds at once.
func TestRecordStudySession_NoLevelCascade(t *testing.T) {
	tracker, _, _, _ := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	res, err := tracker.RecordStudySession(testUser, "es", 6000, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.Level != models.LevelA2 {
		t.Errorf("level after 6000 XP in one session = %v, want A2", res.Progress.Level)
	}
}

func TestRecordStudySession_StreakRules(t *testing.T) {
	tracker, _, _, clock := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	// Same calendar day: streak unchanged.
	clock.now = clock.now.Add(2 * time.Hour)
	res, err := tracker.RecordStudySession(testUser, "es", 10, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if res.StreakExtended {
		t.Error("same-day session extended the streak")
	}
	if res.Progress.Streak != 0 {
		t.Errorf("streak = %d, want 0", res.Progress.Streak)
	}

	// Next calendar day: streak extends.
	clock.now = clock.now.AddDate(0, 0, 1)
	res, err = tracker.RecordStudySession(testUser, "es", 10, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !res.StreakExtended {
		t.Error("next-day session did not extend the streak")
	}
	if res.Progress.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Progress.Streak)
	}

	// A multi-day gap resets the streak to 1.
	clock.now = clock.now.AddDate(0, 0, 3)
	res, err = tracker.RecordStudySession(testUser, "es", 10, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", res.Progress.Streak)
	}
}

// Reaching the 7-day milestone awards a streak achievement worth streak*10 XP.
func TestRecordStudySession_StreakMilestone(t *testing.T) {
	tracker, ps, _, clock := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	// Put the record one day of streak away from the milestone.
	p := ps.records["es"]
	p.Streak = 6
	p.LastStudyDate = clock.now

	clock.now = clock.now.AddDate(0, 0, 1)
	res, err := tracker.RecordStudySession(testUser, "es", 10, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.Streak != 7 {
		t.Fatalf("streak = %d, want 7", res.Progress.Streak)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].Title != "7 Day Streak!" {
		t.Fatalf("unlocked = %+v, want 7 Day Streak!", res.Unlocked)
	}
	if res.Unlocked[0].ExperienceReward != 70 {
		t.Errorf("milestone reward = %d, want 70", res.Unlocked[0].ExperienceReward)
	}
}

func TestCompleteChallenge_ScoreValidation(t *testing.T) {
	tracker, _, _, _ := newFixture(t)

	ch := models.Challenge{ID: "c1", LanguageCode: "es", ExperienceReward: 100}
	for _, score := range []float64{-0.1, 1.1} {
		if _, err := tracker.CompleteChallenge(testUser, ch, score); !errors.Is(err, progress.ErrInvalidInput) {
			t.Errorf("score %v: error = %v, want ErrInvalidInput", score, err)
		}
	}

	noLang := models.Challenge{ID: "c2", ExperienceReward: 100}
	if _, err := tracker.CompleteChallenge(testUser, noLang, 0.5); !errors.Is(err, progress.ErrInvalidInput) {
		t.Errorf("missing language: error = %v, want ErrInvalidInput", err)
	}
}

func TestCompleteChallenge_AwardsAndRecords(t *testing.T) {
	tracker, ps, _, _ := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	ch := models.Challenge{
		ID:               "daily-vocab",
		LanguageCode:     "es",
		Category:         "vocabulary",
		Title:            "Daily Vocabulary",
		ExperienceReward: 100,
		Questions:        make([]models.ChallengeQuestion, 10),
	}

	res, err := tracker.CompleteChallenge(testUser, ch, 0.85)
	if err != nil {
		t.Fatal(err)
	}

	// 100 * 0.85 rounds to 85 XP.
	if res.Progress.ExperiencePoints != 85 {
		t.Errorf("XP = %d, want 85", res.Progress.ExperiencePoints)
	}
	if !res.Progress.HasCompleted("daily-vocab") {
		t.Error("challenge ID not recorded on progress")
	}
	// 0.85 * 10 questions rounds to 9 words mastered.
	if res.Progress.VocabularyMastered != 9 {
		t.Errorf("VocabularyMastered = %d, want 9", res.Progress.VocabularyMastered)
	}

	var gotMaster bool
	for _, a := range res.Unlocked {
		if a.Title == "Challenge Master" {
			gotMaster = true
			if a.ExperienceReward != 200 {
				t.Errorf("Challenge Master reward = %d, want 200", a.ExperienceReward)
			}
		}
	}
	if !gotMaster {
		t.Error("score 0.85 did not award Challenge Master")
	}

	stored := ps.records["es"]
	if !stored.HasCompleted("daily-vocab") {
		t.Error("completion not persisted")
	}

	// A second excellent score must not award the title again.
	ch2 := ch
	ch2.ID = "daily-vocab-2"
	res, err = tracker.CompleteChallenge(testUser, ch2, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range res.Unlocked {
		if a.Title == "Challenge Master" {
			t.Error("Challenge Master awarded twice")
		}
	}
}

func TestCompleteChallenge_LowScoreNoMaster(t *testing.T) {
	tracker, _, _, _ := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}

	ch := models.Challenge{
		ID:               "grammar-1",
		LanguageCode:     "es",
		Category:         "grammar",
		ExperienceReward: 200,
		Questions:        make([]models.ChallengeQuestion, 10),
	}

	res, err := tracker.CompleteChallenge(testUser, ch, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.ExperiencePoints != 100 {
		t.Errorf("XP = %d, want 100", res.Progress.ExperiencePoints)
	}
	for _, a := range res.Unlocked {
		if a.Title == "Challenge Master" {
			t.Error("score 0.5 awarded Challenge Master")
		}
	}
	if res.Progress.VocabularyMastered != 0 {
		t.Errorf("grammar challenge changed VocabularyMastered to %d", res.Progress.VocabularyMastered)
	}
}

func TestReset_WipesEverything(t *testing.T) {
	tracker, ps, as, _ := newFixture(t)
	if _, _, err := tracker.AddLanguage(testUser, spanish()); err != nil {
		t.Fatal(err)
	}
	if _, err := tracker.RecordStudySession(testUser, "es", 500, time.Minute); err != nil {
		t.Fatal(err)
	}

	if err := tracker.Reset(testUser); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}

	if len(ps.records) != 0 {
		t.Errorf("%d progress records remain after reset", len(ps.records))
	}
	if got, _ := as.GetByUser(testUser); len(got) != 0 {
		t.Errorf("%d achievements remain after reset", len(got))
	}

	records, achievements, err := tracker.Overview(testUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 || len(achievements) != 0 {
		t.Error("Overview still reports data after reset")
	}
}
