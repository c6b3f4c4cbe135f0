package models

import "time"

// FinancialCalculationRequest is the input to the financial impact
// calculator. It is never persisted.
type FinancialCalculationRequest struct {
	LanguageCode      string           `json:"language_code"`
	CurrentSalary     float64          `json:"current_salary"`
	YearsOfExperience int              `json:"years_of_experience"`
	Industry          string           `json:"industry"`
	City              string           `json:"city"`
	TargetLevel       ProficiencyLevel `json:"target_level"`
}

// MarketAdvantage describes the competitive position a language skill buys.
type MarketAdvantage struct {
	CompetitiveEdge     float64 `json:"competitive_edge"` // percentage points
	AccessiblePositions int     `json:"accessible_positions"`
	GlobalOpportunities int     `json:"global_opportunities"`
	IndustryDemand      string  `json:"industry_demand"`
}

// ReturnOnInvestment relates the study investment to the projected salary
// gain. Defined is false when the projected increase is zero, in which case
// the break-even and ROI figures are meaningless and left at zero.
type ReturnOnInvestment struct {
	StudyHours      float64 `json:"study_hours"`
	EstimatedCost   float64 `json:"estimated_cost"`
	BreakEvenMonths int     `json:"break_even_months"`
	FiveYearROI     float64 `json:"five_year_roi"` // percent
	TenYearROI      float64 `json:"ten_year_roi"`  // percent
	Defined         bool    `json:"defined"`
}

// CalculatedImpact bundles every projected outcome of a calculation.
type CalculatedImpact struct {
	ProjectedSalaryIncrease  float64            `json:"projected_salary_increase"`
	ProjectedAnnualSalary    float64            `json:"projected_annual_salary"`
	LifetimeEarningsIncrease float64            `json:"lifetime_earnings_increase"`
	JobOpportunityIncrease   float64            `json:"job_opportunity_increase"`
	MarketAdvantage          MarketAdvantage    `json:"market_advantage"`
	ROI                      ReturnOnInvestment `json:"roi"`
}

// FinancialCalculation echoes the request together with the computed impact.
// Produced fresh per calculation and never mutated afterwards.
type FinancialCalculation struct {
	Request   FinancialCalculationRequest `json:"request"`
	Impact    CalculatedImpact            `json:"impact"`
	Timestamp time.Time                   `json:"timestamp"`
}
