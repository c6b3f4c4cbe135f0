package refdata

import "github.com/example/linguabot/pkg/models"

// DefaultLanguages returns the built-in language reference set used to seed
// the store on first run.
func DefaultLanguages() []models.Language {
	return []models.Language{
		{
			Code:       "es",
			Name:       "Spanish",
			Flag:       "🇪🇸",
			Difficulty: models.DifficultyBeginner,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 15000,
				JobOpportunities:      25000,
				MarketDemand:          models.DemandHigh,
				Industries:            []string{"Healthcare", "Education", "Business", "Tourism"},
			},
			Regions:  []string{"Spain", "Mexico", "Argentina", "Colombia"},
			Speakers: 500000000,
		},
		{
			Code:       "zh",
			Name:       "Mandarin Chinese",
			Flag:       "🇨🇳",
			Difficulty: models.DifficultyExpert,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 35000,
				JobOpportunities:      45000,
				MarketDemand:          models.DemandVeryHigh,
				Industries:            []string{"Technology", "Manufacturing", "Finance", "Trade"},
			},
			Regions:  []string{"China", "Taiwan", "Singapore"},
			Speakers: 918000000,
		},
		{
			Code:       "fr",
			Name:       "French",
			Flag:       "🇫🇷",
			Difficulty: models.DifficultyIntermediate,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 18000,
				JobOpportunities:      20000,
				MarketDemand:          models.DemandMedium,
				Industries:            []string{"Diplomacy", "Fashion", "Culinary", "Tourism"},
			},
			Regions:  []string{"France", "Canada", "Belgium", "Switzerland"},
			Speakers: 280000000,
		},
		{
			Code:       "de",
			Name:       "German",
			Flag:       "🇩🇪",
			Difficulty: models.DifficultyAdvanced,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 22000,
				JobOpportunities:      18000,
				MarketDemand:          models.DemandHigh,
				Industries:            []string{"Engineering", "Automotive", "Science", "Finance"},
			},
			Regions:  []string{"Germany", "Austria", "Switzerland"},
			Speakers: 132000000,
		},
		{
			Code:       "ja",
			Name:       "Japanese",
			Flag:       "🇯🇵",
			Difficulty: models.DifficultyExpert,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 28000,
				JobOpportunities:      15000,
				MarketDemand:          models.DemandHigh,
				Industries:            []string{"Technology", "Gaming", "Animation", "Manufacturing"},
			},
			Regions:  []string{"Japan"},
			Speakers: 125000000,
		},
		{
			Code:       "pt",
			Name:       "Portuguese",
			Flag:       "🇧🇷",
			Difficulty: models.DifficultyIntermediate,
			EconomicImpact: models.EconomicImpact{
				AverageSalaryIncrease: 16000,
				JobOpportunities:      12000,
				MarketDemand:          models.DemandMedium,
				Industries:            []string{"Business", "Mining", "Agriculture", "Tourism"},
			},
			Regions:  []string{"Brazil", "Portugal"},
			Speakers: 260000000,
		},
	}
}

// DefaultIndustries returns the built-in industry reference set.
func DefaultIndustries() []models.IndustryProfile {
	return []models.IndustryProfile{
		{
			Name: "Technology",
			LanguageMultiplier: map[string]float64{
				"zh": 1.8, "ja": 1.6, "de": 1.4, "es": 1.2, "fr": 1.1, "pt": 1.1,
			},
			AverageSalary: 95000,
			GrowthRate:    0.15,
			Demand:        models.DemandVeryHigh,
		},
		{
			Name: "Finance",
			LanguageMultiplier: map[string]float64{
				"zh": 2.0, "de": 1.7, "ja": 1.5, "fr": 1.3, "es": 1.2, "pt": 1.1,
			},
			AverageSalary: 85000,
			GrowthRate:    0.08,
			Demand:        models.DemandHigh,
		},
		{
			Name: "Healthcare",
			LanguageMultiplier: map[string]float64{
				"es": 1.8, "zh": 1.4, "fr": 1.3, "de": 1.2, "ja": 1.1, "pt": 1.2,
			},
			AverageSalary: 75000,
			GrowthRate:    0.12,
			Demand:        models.DemandHigh,
		},
		{
			Name: "Education",
			LanguageMultiplier: map[string]float64{
				"es": 1.5, "zh": 1.4, "fr": 1.3, "de": 1.2, "ja": 1.2, "pt": 1.1,
			},
			AverageSalary: 55000,
			GrowthRate:    0.06,
			Demand:        models.DemandMedium,
		},
		{
			Name: "Tourism",
			LanguageMultiplier: map[string]float64{
				"es": 1.6, "fr": 1.5, "de": 1.3, "zh": 1.4, "ja": 1.2, "pt": 1.3,
			},
			AverageSalary: 45000,
			GrowthRate:    0.10,
			Demand:        models.DemandMedium,
		},
		{
			Name: "International Business",
			LanguageMultiplier: map[string]float64{
				"zh": 2.2, "de": 1.8, "ja": 1.6, "es": 1.4, "fr": 1.3, "pt": 1.2,
			},
			AverageSalary: 80000,
			GrowthRate:    0.11,
			Demand:        models.DemandVeryHigh,
		},
	}
}

// DefaultLocations returns the built-in location reference set.
func DefaultLocations() []models.LocationProfile {
	return []models.LocationProfile{
		{
			Country:      "United States",
			City:         "New York",
			CostOfLiving: 1.8,
			LanguageDemand: map[string]float64{
				"es": 1.5, "zh": 1.8, "fr": 1.2, "de": 1.3, "ja": 1.4, "pt": 1.1,
			},
			AverageIncome: 85000,
		},
		{
			Country:      "United States",
			City:         "San Francisco",
			CostOfLiving: 2.1,
			LanguageDemand: map[string]float64{
				"zh": 2.0, "ja": 1.6, "es": 1.3, "de": 1.2, "fr": 1.1, "pt": 1.0,
			},
			AverageIncome: 120000,
		},
		{
			Country:      "United States",
			City:         "Miami",
			CostOfLiving: 1.3,
			LanguageDemand: map[string]float64{
				"es": 2.2, "pt": 1.8, "fr": 1.2, "zh": 1.1, "de": 1.0, "ja": 1.0,
			},
			AverageIncome: 65000,
		},
		{
			Country:      "Canada",
			City:         "Toronto",
			CostOfLiving: 1.4,
			LanguageDemand: map[string]float64{
				"fr": 1.8, "zh": 1.5, "es": 1.2, "de": 1.1, "ja": 1.2, "pt": 1.0,
			},
			AverageIncome: 70000,
		},
	}
}
