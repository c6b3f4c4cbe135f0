package models_test

import (
	"testing"

	"github.com/example/linguabot/pkg/models"
)

func TestParseProficiencyLevel(t *testing.T) {
	for _, l := range models.AllLevels {
		got, err := models.ParseProficiencyLevel(string(l))
		if err != nil {
			t.Errorf("ParseProficiencyLevel(%q) unexpected error: %v", l, err)
		}
		if got != l {
			t.Errorf("ParseProficiencyLevel(%q) = %q", l, got)
		}
	}

	for _, bad := range []string{"", "a1", "D1", "B3", " B1"} {
		if _, err := models.ParseProficiencyLevel(bad); err == nil {
			t.Errorf("ParseProficiencyLevel(%q) accepted invalid level", bad)
		}
	}
}

func TestNext_ChainEndsAtC2(t *testing.T) {
	level := models.LevelA1
	steps := 0
	for {
		next, ok := level.Next()
		if !ok {
			break
		}
		level = next
		steps++
	}
	if level != models.LevelC2 {
		t.Errorf("chain ended at %v, want C2", level)
	}
	if steps != 5 {
		t.Errorf("chain took %d steps, want 5", steps)
	}
}

// XP thresholds, study hours and impact multipliers must all increase
// strictly with the level.
func TestLevelScales_Monotonic(t *testing.T) {
	for i := 1; i < len(models.AllLevels); i++ {
		lo, hi := models.AllLevels[i-1], models.AllLevels[i]
		if lo.RequiredXP() >= hi.RequiredXP() {
			t.Errorf("RequiredXP not increasing between %v and %v", lo, hi)
		}
		if lo.StudyHours() >= hi.StudyHours() {
			t.Errorf("StudyHours not increasing between %v and %v", lo, hi)
		}
		if lo.ImpactMultiplier() >= hi.ImpactMultiplier() {
			t.Errorf("ImpactMultiplier not increasing between %v and %v", lo, hi)
		}
		if lo.Progress() >= hi.Progress() {
			t.Errorf("Progress not increasing between %v and %v", lo, hi)
		}
	}
}

func TestLevelScales_Anchors(t *testing.T) {
	if got := models.LevelA1.RequiredXP(); got != 1000 {
		t.Errorf("A1 RequiredXP = %d, want 1000", got)
	}
	if got := models.LevelC2.RequiredXP(); got != 20000 {
		t.Errorf("C2 RequiredXP = %d, want 20000", got)
	}
	if got := models.LevelB1.ImpactMultiplier(); got != 0.7 {
		t.Errorf("B1 ImpactMultiplier = %v, want 0.7", got)
	}
	if got := models.LevelC2.ImpactMultiplier(); got != 1.0 {
		t.Errorf("C2 ImpactMultiplier = %v, want 1.0", got)
	}
	if got := models.LevelC2.Progress(); got != 1.0 {
		t.Errorf("C2 Progress = %v, want 1.0", got)
	}
}
