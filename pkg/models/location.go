package models

// LocationProfile is an immutable reference record describing language demand
// in a city. Identity is the (Country, City) pair.
type LocationProfile struct {
	Country        string             `json:"country"`
	City           string             `json:"city"`
	CostOfLiving   float64            `json:"cost_of_living"`
	LanguageDemand map[string]float64 `json:"language_demand"`
	AverageIncome  float64            `json:"average_income"`
}

// DemandFor returns the local demand multiplier for the language code,
// defaulting to a neutral 1.0 when the location has no data for it.
func (p LocationProfile) DemandFor(code string) float64 {
	if m, ok := p.LanguageDemand[code]; ok {
		return m
	}
	return 1.0
}
