package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/linguabot/internal/database"
	"github.com/example/linguabot/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	CodeColumn       string // Column with the language code
	NameColumn       string // Column with the language name
	FlagColumn       string // Column with the flag emoji
	DifficultyColumn string // Column with the difficulty tier
	SalaryColumn     string // Column with the base salary increase
	JobsColumn       string // Column with the job opportunity count
	DemandColumn     string // Column with the market demand tier
	IndustriesColumn string // Column with the rewarding industries (semicolon separated)
	RegionsColumn    string // Column with the regions (semicolon separated)
	SpeakersColumn   string // Column with the speaker count
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		CodeColumn:       "A",
		NameColumn:       "B",
		FlagColumn:       "C",
		DifficultyColumn: "D",
		SalaryColumn:     "E",
		JobsColumn:       "F",
		DemandColumn:     "G",
		IndustriesColumn: "H",
		RegionsColumn:    "I",
		SpeakersColumn:   "J",
		SheetName:        "Languages",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportLanguages imports language reference data from an Excel or CSV file
func ImportLanguages(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(config)
	}

	return importFromExcel(config)
}

// importFromExcel imports languages from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{
		Errors: make([]string, 0),
	}
	repo := database.NewLanguageRepository()

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports languages from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{
		Errors: make([]string, 0),
	}
	repo := database.NewLanguageRepository()

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow converts a single row into a language record and upserts it
func processRow(row []string, config ImportConfig, repo *database.LanguageRepository, result *ImportResult) error {
	cell := func(column string) string {
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	code := strings.ToLower(cell(config.CodeColumn))
	name := cell(config.NameColumn)

	if code == "" || name == "" {
		result.Skipped++
		return nil
	}

	salary, err := strconv.ParseFloat(cell(config.SalaryColumn), 64)
	if err != nil {
		return fmt.Errorf("invalid salary increase: %v", err)
	}
	jobs, err := strconv.Atoi(cell(config.JobsColumn))
	if err != nil {
		return fmt.Errorf("invalid job opportunities: %v", err)
	}
	speakers := 0
	if s := cell(config.SpeakersColumn); s != "" {
		speakers, err = strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid speaker count: %v", err)
		}
	}

	lang := models.Language{
		Code:       code,
		Name:       name,
		Flag:       cell(config.FlagColumn),
		Difficulty: parseDifficulty(cell(config.DifficultyColumn)),
		EconomicImpact: models.EconomicImpact{
			AverageSalaryIncrease: salary,
			JobOpportunities:      jobs,
			MarketDemand:          parseDemand(cell(config.DemandColumn)),
			Industries:            splitList(cell(config.IndustriesColumn)),
		},
		Regions:  splitList(cell(config.RegionsColumn)),
		Speakers: speakers,
	}

	existing, err := repo.GetByCode(code)
	if err == nil && existing != nil {
		if err := repo.Upsert(&lang); err != nil {
			return err
		}
		result.Updated++
		return nil
	}

	if err := repo.Upsert(&lang); err != nil {
		return err
	}
	result.Created++
	return nil
}

// parseDemand maps a demand cell to a known tier, defaulting to Medium
func parseDemand(s string) models.MarketDemand {
	switch strings.ToLower(s) {
	case "low":
		return models.DemandLow
	case "high":
		return models.DemandHigh
	case "very high", "veryhigh":
		return models.DemandVeryHigh
	default:
		return models.DemandMedium
	}
}

// parseDifficulty maps a difficulty cell to a known tier, defaulting to Intermediate
func parseDifficulty(s string) models.LanguageDifficulty {
	switch strings.ToLower(s) {
	case "beginner":
		return models.DifficultyBeginner
	case "advanced":
		return models.DifficultyAdvanced
	case "expert":
		return models.DifficultyExpert
	default:
		return models.DifficultyIntermediate
	}
}

// splitList splits a semicolon separated cell into trimmed values
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// columnToIndex converts an Excel column letter (A, B, ... AA) to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1
}
