package finance_test

import (
	"strings"
	"testing"

	"github.com/example/linguabot/internal/finance"
	"github.com/example/linguabot/pkg/models"
)

func TestImpactDescription_Bands(t *testing.T) {
	tests := []struct {
		increase float64
		want     string
	}{
		{35000, "Exceptional"},
		{30000, "Exceptional"},
		{25000, "Strong"},
		{20000, "Strong"},
		{15000, "Good"},
		{10000, "Good"},
		{5000, "Moderate"},
		{0, "Moderate"},
	}
	for _, tt := range tests {
		impact := models.CalculatedImpact{ProjectedSalaryIncrease: tt.increase}
		got := finance.ImpactDescription(impact)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("ImpactDescription(%v) = %q, want prefix %q", tt.increase, got, tt.want)
		}
	}
}

func TestBreakEvenDescription_Bands(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{3, "Very quick payback period"},
		{6, "Very quick payback period"},
		{7, "Fast return on investment"},
		{12, "Fast return on investment"},
		{18, "Reasonable payback time"},
		{24, "Reasonable payback time"},
		{25, "Long-term investment"},
	}
	for _, tt := range tests {
		if got := finance.BreakEvenDescription(tt.months); got != tt.want {
			t.Errorf("BreakEvenDescription(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestMarketDemandDescription_Bands(t *testing.T) {
	tests := []struct {
		edge float64
		want string
	}{
		{55, "Extremely high demand"},
		{50, "Extremely high demand"},
		{35, "High demand"},
		{30, "High demand"},
		{20, "Moderate demand"},
		{15, "Moderate demand"},
		{10, "Basic demand"},
	}
	for _, tt := range tests {
		adv := models.MarketAdvantage{CompetitiveEdge: tt.edge}
		got := finance.MarketDemandDescription(adv)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("MarketDemandDescription(%v) = %q, want prefix %q", tt.edge, got, tt.want)
		}
	}
}
