package models

// MarketDemand classifies how sought-after a language is on the job market.
type MarketDemand string

const (
	DemandLow      MarketDemand = "Low"
	DemandMedium   MarketDemand = "Medium"
	DemandHigh     MarketDemand = "High"
	DemandVeryHigh MarketDemand = "Very High"
)

// Multiplier returns the economic adjustment associated with the demand tier.
func (d MarketDemand) Multiplier() float64 {
	switch d {
	case DemandLow:
		return 1.0
	case DemandMedium:
		return 1.2
	case DemandHigh:
		return 1.5
	case DemandVeryHigh:
		return 2.0
	}
	return 1.0
}

// LanguageDifficulty is a coarse learning-effort tier.
type LanguageDifficulty string

const (
	DifficultyBeginner     LanguageDifficulty = "Beginner"
	DifficultyIntermediate LanguageDifficulty = "Intermediate"
	DifficultyAdvanced     LanguageDifficulty = "Advanced"
	DifficultyExpert       LanguageDifficulty = "Expert"
)

// EconomicImpact holds the base economic figures for a language.
type EconomicImpact struct {
	AverageSalaryIncrease float64      `json:"average_salary_increase"`
	JobOpportunities      int          `json:"job_opportunities"`
	MarketDemand          MarketDemand `json:"market_demand"`
	Industries            []string     `json:"industries"`
}

// Language is an immutable reference record describing a learnable language.
// Loaded once at startup and never mutated.
type Language struct {
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	Flag           string             `json:"flag"`
	Difficulty     LanguageDifficulty `json:"difficulty"`
	EconomicImpact EconomicImpact     `json:"economic_impact"`
	Regions        []string           `json:"regions"`
	Speakers       int                `json:"speakers"`
}
