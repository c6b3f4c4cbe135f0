package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/linguabot/pkg/models"
)

// LanguageRepository handles database operations for the language reference
// table.
type LanguageRepository struct{}

// NewLanguageRepository creates a new repository instance
func NewLanguageRepository() *LanguageRepository {
	return &LanguageRepository{}
}

// Count returns the number of stored languages.
func (r *LanguageRepository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM languages"); err != nil {
		return 0, fmt.Errorf("failed to count languages: %v", err)
	}
	return count, nil
}

// GetAll returns all languages in insertion order.
func (r *LanguageRepository) GetAll() ([]models.Language, error) {
	// SQLite keeps insertion order via rowid; postgres falls back to code.
	order := "rowid"
	if Type() == "postgres" {
		order = "code"
	}
	rows, err := DB.Query(`
		SELECT code, name, flag, difficulty, salary_increase, job_opportunities,
		       market_demand, industries, regions, speakers
		FROM languages
		ORDER BY ` + order)
	if err != nil {
		return nil, fmt.Errorf("failed to get languages: %v", err)
	}
	defer rows.Close()

	var out []models.Language
	for rows.Next() {
		lang, err := scanLanguage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lang)
	}
	return out, rows.Err()
}

// GetByCode returns a single language.
func (r *LanguageRepository) GetByCode(code string) (*models.Language, error) {
	row := DB.QueryRow(`
		SELECT code, name, flag, difficulty, salary_increase, job_opportunities,
		       market_demand, industries, regions, speakers
		FROM languages WHERE code = $1
	`, code)
	lang, err := scanLanguage(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("language %q not found", code)
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}

// Upsert inserts or replaces a language record.
func (r *LanguageRepository) Upsert(lang *models.Language) error {
	industries, err := json.Marshal(lang.EconomicImpact.Industries)
	if err != nil {
		return fmt.Errorf("failed to marshal industries: %v", err)
	}
	regions, err := json.Marshal(lang.Regions)
	if err != nil {
		return fmt.Errorf("failed to marshal regions: %v", err)
	}

	_, err = DB.Exec(`
		INSERT INTO languages (
			code, name, flag, difficulty, salary_increase, job_opportunities,
			market_demand, industries, regions, speakers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			flag = EXCLUDED.flag,
			difficulty = EXCLUDED.difficulty,
			salary_increase = EXCLUDED.salary_increase,
			job_opportunities = EXCLUDED.job_opportunities,
			market_demand = EXCLUDED.market_demand,
			industries = EXCLUDED.industries,
			regions = EXCLUDED.regions,
			speakers = EXCLUDED.speakers
	`,
		lang.Code,
		lang.Name,
		lang.Flag,
		string(lang.Difficulty),
		lang.EconomicImpact.AverageSalaryIncrease,
		lang.EconomicImpact.JobOpportunities,
		string(lang.EconomicImpact.MarketDemand),
		string(industries),
		string(regions),
		lang.Speakers,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert language: %v", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLanguage(row rowScanner) (models.Language, error) {
	var (
		lang                models.Language
		difficulty, demand  string
		industries, regions string
	)
	err := row.Scan(
		&lang.Code,
		&lang.Name,
		&lang.Flag,
		&difficulty,
		&lang.EconomicImpact.AverageSalaryIncrease,
		&lang.EconomicImpact.JobOpportunities,
		&demand,
		&industries,
		&regions,
		&lang.Speakers,
	)
	if err != nil {
		return models.Language{}, err
	}

	lang.Difficulty = models.LanguageDifficulty(difficulty)
	lang.EconomicImpact.MarketDemand = models.MarketDemand(demand)
	if industries != "" {
		if err := json.Unmarshal([]byte(industries), &lang.EconomicImpact.Industries); err != nil {
			return models.Language{}, fmt.Errorf("failed to unmarshal industries: %v", err)
		}
	}
	if regions != "" {
		if err := json.Unmarshal([]byte(regions), &lang.Regions); err != nil {
			return models.Language{}, fmt.Errorf("failed to unmarshal regions: %v", err)
		}
	}
	return lang, nil
}
