package models

import "fmt"

// ProficiencyLevel is a CEFR tier of language mastery. Levels are totally
// ordered; each level except C2 has exactly one successor.
type ProficiencyLevel string

const (
	LevelA1 ProficiencyLevel = "A1"
	LevelA2 ProficiencyLevel = "A2"
	LevelB1 ProficiencyLevel = "B1"
	LevelB2 ProficiencyLevel = "B2"
	LevelC1 ProficiencyLevel = "C1"
	LevelC2 ProficiencyLevel = "C2"
)

// AllLevels lists every proficiency level in ascending order.
var AllLevels = []ProficiencyLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseProficiencyLevel converts a raw string to a ProficiencyLevel,
// returning an error for unknown values.
func ParseProficiencyLevel(s string) (ProficiencyLevel, error) {
	level := ProficiencyLevel(s)
	switch level {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return level, nil
	}
	return "", fmt.Errorf("unknown proficiency level %q", s)
}

// Next returns the successor level. The second return value is false for C2.
func (l ProficiencyLevel) Next() (ProficiencyLevel, bool) {
	switch l {
	case LevelA1:
		return LevelA2, true
	case LevelA2:
		return LevelB1, true
	case LevelB1:
		return LevelB2, true
	case LevelB2:
		return LevelC1, true
	case LevelC1:
		return LevelC2, true
	}
	return "", false
}

// Label returns the display name of the level.
func (l ProficiencyLevel) Label() string {
	switch l {
	case LevelA1:
		return "A1 - Beginner"
	case LevelA2:
		return "A2 - Elementary"
	case LevelB1:
		return "B1 - Intermediate"
	case LevelB2:
		return "B2 - Upper Intermediate"
	case LevelC1:
		return "C1 - Advanced"
	case LevelC2:
		return "C2 - Proficient"
	}
	return string(l)
}

// Progress returns the overall mastery fraction reached at this level.
// The scale is intentionally non-uniform.
func (l ProficiencyLevel) Progress() float64 {
	switch l {
	case LevelA1:
		return 0.16
	case LevelA2:
		return 0.33
	case LevelB1:
		return 0.50
	case LevelB2:
		return 0.66
	case LevelC1:
		return 0.83
	case LevelC2:
		return 1.0
	}
	return 0
}

// RequiredXP returns the cumulative experience needed to leave this level.
// The values are totals, not per-level deltas.
func (l ProficiencyLevel) RequiredXP() int {
	switch l {
	case LevelA1:
		return 1000
	case LevelA2:
		return 2500
	case LevelB1:
		return 5000
	case LevelB2:
		return 8000
	case LevelC1:
		return 12000
	case LevelC2:
		return 20000
	}
	return 0
}

// StudyHours estimates the cumulative study investment to reach this level.
func (l ProficiencyLevel) StudyHours() float64 {
	switch l {
	case LevelA1:
		return 100
	case LevelA2:
		return 200
	case LevelB1:
		return 350
	case LevelB2:
		return 500
	case LevelC1:
		return 700
	case LevelC2:
		return 1000
	}
	return 0
}

// ImpactMultiplier scales economic figures by how usable the language is
// at this level.
func (l ProficiencyLevel) ImpactMultiplier() float64 {
	switch l {
	case LevelA1:
		return 0.3
	case LevelA2:
		return 0.5
	case LevelB1:
		return 0.7
	case LevelB2:
		return 0.85
	case LevelC1:
		return 0.95
	case LevelC2:
		return 1.0
	}
	return 1.0
}
