// Package finance implements the financial impact calculator: a deterministic
// projection of the salary effect of learning a language, given industry,
// location, target proficiency and experience.
package finance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/example/linguabot/internal/cache"
	"github.com/example/linguabot/internal/metrics"
	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/pkg/models"
)

// ErrInvalidInput is returned when a request fails validation.
var ErrInvalidInput = errors.New("invalid calculation input")

// Constants of the projection model.
const (
	careerYears      = 30 // fixed career-horizon assumption
	costPerStudyHour = 25 // study materials/courses, USD per hour

	edgePointsPerMultiplier = 25
	positionsPerMultiplier  = 1000
	globalPerMultiplier     = 500
)

const cacheTTL = 10 * time.Minute

// Calculator computes financial impact projections over the reference
// catalog. It is a pure function of its inputs; the optional cache only
// short-circuits identical requests.
type Calculator struct {
	catalog *refdata.Catalog
	cache   *cache.Cache
	log     *zap.Logger
	now     func() time.Time
}

// NewCalculator returns a calculator over the given catalog. The cache and
// logger may be nil.
func NewCalculator(catalog *refdata.Catalog, c *cache.Cache, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{
		catalog: catalog,
		cache:   c,
		log:     log,
		now:     time.Now,
	}
}

// Calculate projects the financial impact of reaching the target proficiency.
// Unknown languages, industries and locations are not errors: they degrade to
// documented fallback figures and neutral multipliers.
func (c *Calculator) Calculate(ctx context.Context, req models.FinancialCalculationRequest) (*models.FinancialCalculation, error) {
	if req.CurrentSalary <= 0 {
		return nil, fmt.Errorf("%w: current salary must be positive", ErrInvalidInput)
	}
	if req.YearsOfExperience < 0 {
		return nil, fmt.Errorf("%w: years of experience must not be negative", ErrInvalidInput)
	}
	if _, err := models.ParseProficiencyLevel(string(req.TargetLevel)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := cacheKey(req)
	var cached models.FinancialCalculation
	if err := c.cache.Get(ctx, key, &cached); err == nil {
		c.log.Debug("calculation_cache_hit", zap.String("key", key))
		return &cached, nil
	}

	baseIncrease := float64(refdata.FallbackSalaryIncrease)
	baseJobs := float64(refdata.FallbackJobOpportunities)
	if lang, ok := c.catalog.LanguageByCode(req.LanguageCode); ok {
		baseIncrease = lang.EconomicImpact.AverageSalaryIncrease
		baseJobs = float64(lang.EconomicImpact.JobOpportunities)
	}

	industryMult := c.catalog.IndustryMultiplier(req.Industry, req.LanguageCode)
	locationMult := c.catalog.LocationMultiplier(req.City, req.LanguageCode)
	proficiencyMult := req.TargetLevel.ImpactMultiplier()
	experienceMult := ExperienceMultiplier(req.YearsOfExperience)

	projectedIncrease := baseIncrease * industryMult * locationMult * proficiencyMult * experienceMult

	impact := models.CalculatedImpact{
		ProjectedSalaryIncrease:  projectedIncrease,
		ProjectedAnnualSalary:    req.CurrentSalary + projectedIncrease,
		LifetimeEarningsIncrease: projectedIncrease * careerYears,
		JobOpportunityIncrease:   baseJobs * industryMult,
		MarketAdvantage:          c.marketAdvantage(req.LanguageCode, req.Industry, req.City),
		ROI:                      computeROI(projectedIncrease, req.TargetLevel),
	}

	result := &models.FinancialCalculation{
		Request:   req,
		Impact:    impact,
		Timestamp: c.now(),
	}

	metrics.Calculations.Inc()
	if err := c.cache.Set(ctx, key, result, cacheTTL); err != nil {
		c.log.Warn("calculation_cache_set_failed", zap.Error(err))
	}
	return result, nil
}

// ExperienceMultiplier maps years of professional experience to a scalar
// adjustment using fixed bands.
func ExperienceMultiplier(years int) float64 {
	switch {
	case years <= 2:
		return 0.8
	case years <= 5:
		return 1.0
	case years <= 10:
		return 1.2
	case years <= 15:
		return 1.4
	default:
		return 1.5
	}
}

func (c *Calculator) marketAdvantage(code, industry, city string) models.MarketAdvantage {
	industryMult := c.catalog.IndustryMultiplier(industry, code)
	locationMult := c.catalog.LocationMultiplier(city, code)

	demand := string(models.DemandMedium)
	if p, ok := c.catalog.IndustryByName(industry); ok {
		demand = string(p.Demand)
	}

	return models.MarketAdvantage{
		CompetitiveEdge:     industryMult * edgePointsPerMultiplier,
		AccessiblePositions: int(industryMult * positionsPerMultiplier),
		GlobalOpportunities: int(locationMult * globalPerMultiplier),
		IndustryDemand:      demand,
	}
}

// computeROI relates the study investment for the target level to the
// projected increase. With a zero increase the payback figures are undefined;
// they stay at zero with Defined=false instead of dividing by zero.
func computeROI(salaryIncrease float64, level models.ProficiencyLevel) models.ReturnOnInvestment {
	studyHours := level.StudyHours()
	cost := studyHours * costPerStudyHour

	roi := models.ReturnOnInvestment{
		StudyHours:    studyHours,
		EstimatedCost: cost,
	}
	if salaryIncrease <= 0 {
		return roi
	}

	roi.Defined = true
	roi.BreakEvenMonths = int(cost / (salaryIncrease / 12))
	roi.FiveYearROI = (salaryIncrease*5 - cost) / cost * 100
	roi.TenYearROI = (salaryIncrease*10 - cost) / cost * 100
	return roi
}

// RankIndustries returns every industry that defines a multiplier for the
// language, sorted descending by that multiplier. Ties keep table order.
func (c *Calculator) RankIndustries(code string) []models.IndustryProfile {
	var out []models.IndustryProfile
	for _, p := range c.catalog.Industries() {
		if _, ok := p.LanguageMultiplier[code]; ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LanguageMultiplier[code] > out[j].LanguageMultiplier[code]
	})
	return out
}

// RankLocations returns every location that defines a demand multiplier for
// the language, sorted descending by that multiplier. Ties keep table order.
func (c *Calculator) RankLocations(code string) []models.LocationProfile {
	var out []models.LocationProfile
	for _, p := range c.catalog.Locations() {
		if _, ok := p.LanguageDemand[code]; ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LanguageDemand[code] > out[j].LanguageDemand[code]
	})
	return out
}

func cacheKey(req models.FinancialCalculationRequest) string {
	return fmt.Sprintf("impact:%s:%.2f:%d:%s:%s:%s",
		req.LanguageCode, req.CurrentSalary, req.YearsOfExperience,
		req.Industry, req.City, req.TargetLevel)
}
