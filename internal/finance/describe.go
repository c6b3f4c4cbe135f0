package finance

import "github.com/example/linguabot/pkg/models"

// ImpactDescription summarizes a projected increase in a sentence.
func ImpactDescription(impact models.CalculatedImpact) string {
	increase := impact.ProjectedSalaryIncrease
	switch {
	case increase >= 30000:
		return "Exceptional financial impact! This language skill could significantly boost your career."
	case increase >= 20000:
		return "Strong financial benefits. This language is highly valued in your field."
	case increase >= 10000:
		return "Good financial potential. Learning this language will provide solid returns."
	default:
		return "Moderate financial impact. Consider other factors like personal interest and career goals."
	}
}

// BreakEvenDescription classifies a payback period in months.
func BreakEvenDescription(months int) string {
	switch {
	case months <= 6:
		return "Very quick payback period"
	case months <= 12:
		return "Fast return on investment"
	case months <= 24:
		return "Reasonable payback time"
	default:
		return "Long-term investment"
	}
}

// MarketDemandDescription classifies the competitive edge in percentage points.
func MarketDemandDescription(advantage models.MarketAdvantage) string {
	switch edge := advantage.CompetitiveEdge; {
	case edge >= 50:
		return "Extremely high demand - you'll have a significant competitive advantage"
	case edge >= 30:
		return "High demand - strong market position"
	case edge >= 15:
		return "Moderate demand - noticeable advantage"
	default:
		return "Basic demand - some advantage in specific roles"
	}
}
