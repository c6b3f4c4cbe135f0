package models

// IndustryProfile is an immutable reference record describing how an industry
// rewards individual languages. A language absent from LanguageMultiplier is
// not specifically rewarded there, which callers treat as a neutral 1.0.
type IndustryProfile struct {
	Name               string             `json:"name"`
	LanguageMultiplier map[string]float64 `json:"language_multiplier"`
	AverageSalary      float64            `json:"average_salary"`
	GrowthRate         float64            `json:"growth_rate"`
	Demand             MarketDemand       `json:"demand"`
}

// MultiplierFor returns the salary multiplier for the language code,
// defaulting to a neutral 1.0 when the industry has no data for it.
func (p IndustryProfile) MultiplierFor(code string) float64 {
	if m, ok := p.LanguageMultiplier[code]; ok {
		return m
	}
	return 1.0
}
