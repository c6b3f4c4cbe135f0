package challenge_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/example/linguabot/internal/challenge"
	"github.com/example/linguabot/pkg/models"
)

func twoQuestionChallenge() models.Challenge {
	return models.Challenge{
		ID:           "c1",
		LanguageCode: "es",
		Questions: []models.ChallengeQuestion{
			{Prompt: "q1", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Prompt: "q2", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
}

func TestScore(t *testing.T) {
	ch := twoQuestionChallenge()

	tests := []struct {
		name     string
		selected []int
		want     float64
	}{
		{"all correct", []int{1, 0}, 1.0},
		{"half correct", []int{1, 1}, 0.5},
		{"none correct", []int{0, 1}, 0.0},
		{"unanswered counts wrong", []int{1}, 0.5},
		{"empty answers", nil, 0.0},
		{"out of range counts wrong", []int{5, -1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := challenge.Score(ch, tt.selected)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestScore_NoQuestions(t *testing.T) {
	_, err := challenge.Score(models.Challenge{ID: "empty"}, nil)
	if !errors.Is(err, challenge.ErrNoQuestions) {
		t.Errorf("error = %v, want ErrNoQuestions", err)
	}
}

func TestAvailableAt(t *testing.T) {
	open := models.Challenge{ID: "open"}
	gated := models.Challenge{ID: "gated", RequiredCity: "Miami"}

	if !challenge.AvailableAt(open, "") {
		t.Error("ungated challenge unavailable with unknown city")
	}
	if !challenge.AvailableAt(open, "Toronto") {
		t.Error("ungated challenge unavailable in Toronto")
	}
	if challenge.AvailableAt(gated, "") {
		t.Error("gated challenge available with unknown city")
	}
	if challenge.AvailableAt(gated, "Toronto") {
		t.Error("gated challenge available in the wrong city")
	}
	if !challenge.AvailableAt(gated, "Miami") {
		t.Error("gated challenge unavailable in its own city")
	}
}

func TestDailyChallenges_SpanishArchetypes(t *testing.T) {
	engine := challenge.NewEngine(challenge.NewStaticBank(), nil)

	set, err := engine.DailyChallenges("es")
	if err != nil {
		t.Fatalf("DailyChallenges returned error: %v", err)
	}
	if len(set) == 0 {
		t.Fatal("no challenges generated for es")
	}

	want := map[string]struct {
		difficulty models.ChallengeDifficulty
		reward     int
		timeLimit  time.Duration
	}{
		"vocabulary": {models.DifficultyEasy, 100, 10 * time.Minute},
		"grammar":    {models.DifficultyMedium, 200, 15 * time.Minute},
		"listening":  {models.DifficultyHard, 300, 20 * time.Minute},
	}

	seen := make(map[string]bool)
	for _, ch := range set {
		exp, ok := want[ch.Category]
		if !ok {
			t.Errorf("unexpected category %q", ch.Category)
			continue
		}
		seen[ch.Category] = true
		if ch.Difficulty != exp.difficulty {
			t.Errorf("%s difficulty = %v, want %v", ch.Category, ch.Difficulty, exp.difficulty)
		}
		if ch.ExperienceReward != exp.reward {
			t.Errorf("%s reward = %d, want %d", ch.Category, ch.ExperienceReward, exp.reward)
		}
		if ch.TimeLimit != exp.timeLimit {
			t.Errorf("%s time limit = %v, want %v", ch.Category, ch.TimeLimit, exp.timeLimit)
		}
		if ch.LanguageCode != "es" {
			t.Errorf("%s language = %q, want es", ch.Category, ch.LanguageCode)
		}
		if ch.ID == "" {
			t.Errorf("%s challenge has empty ID", ch.Category)
		}
		if len(ch.Questions) == 0 {
			t.Errorf("%s challenge has no questions", ch.Category)
		}
	}
	// The static bank carries all three Spanish categories.
	for cat := range want {
		if !seen[cat] {
			t.Errorf("missing %s challenge for es", cat)
		}
	}
}

// Languages the bank has no content for produce no challenges rather than
// empty quizzes.
func TestDailyChallenges_UnknownLanguage(t *testing.T) {
	engine := challenge.NewEngine(challenge.NewStaticBank(), nil)

	set, err := engine.DailyChallenges("fi")
	if err != nil {
		t.Fatalf("DailyChallenges returned error: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("generated %d challenges for a language without content", len(set))
	}
}

func TestStaticBank_Limit(t *testing.T) {
	bank := challenge.NewStaticBank()

	questions, err := bank.Questions("es", "vocabulary", 2)
	if err != nil {
		t.Fatalf("Questions returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("got %d questions, want 2", len(questions))
	}

	none, err := bank.Questions("es", "pronunciation", 5)
	if err != nil {
		t.Fatalf("Questions returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown category returned %d questions", len(none))
	}
}
