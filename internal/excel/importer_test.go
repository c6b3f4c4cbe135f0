package excel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/linguabot/internal/database"
	"github.com/example/linguabot/internal/excel"
	"github.com/example/linguabot/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", ":memory:")
	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "languages.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportLanguages_CSV(t *testing.T) {
	setupDB(t)

	csv := `code,name,flag,difficulty,salary,jobs,demand,industries,regions,speakers
it,Italian,🇮🇹,Intermediate,14000,9000,Medium,Tourism;Education,Italy;Switzerland,65000000
ko,Korean,🇰🇷,Expert,26000,14000,High,Technology,South Korea,77000000
`
	config := excel.DefaultImportConfig()
	config.FilePath = writeCSV(t, csv)

	result, err := excel.ImportLanguages(config)
	if err != nil {
		t.Fatalf("ImportLanguages failed: %v", err)
	}
	if result.TotalProcessed != 2 {
		t.Errorf("TotalProcessed = %d, want 2", result.TotalProcessed)
	}
	if result.Created != 2 {
		t.Errorf("Created = %d, want 2", result.Created)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}

	repo := database.NewLanguageRepository()
	it, err := repo.GetByCode("it")
	if err != nil {
		t.Fatalf("GetByCode failed: %v", err)
	}
	if it.Name != "Italian" {
		t.Errorf("name = %q, want Italian", it.Name)
	}
	if it.EconomicImpact.AverageSalaryIncrease != 14000 {
		t.Errorf("salary = %v, want 14000", it.EconomicImpact.AverageSalaryIncrease)
	}
	if it.EconomicImpact.MarketDemand != models.DemandMedium {
		t.Errorf("demand = %v, want Medium", it.EconomicImpact.MarketDemand)
	}
	if len(it.EconomicImpact.Industries) != 2 {
		t.Errorf("industries = %v, want 2 entries", it.EconomicImpact.Industries)
	}
}

func TestImportLanguages_UpdatesExisting(t *testing.T) {
	setupDB(t)

	first := excel.DefaultImportConfig()
	first.FilePath = writeCSV(t, "code,name,flag,difficulty,salary,jobs,demand\nit,Italian,🇮🇹,Intermediate,14000,9000,Medium\n")
	if _, err := excel.ImportLanguages(first); err != nil {
		t.Fatal(err)
	}

	second := excel.DefaultImportConfig()
	second.FilePath = writeCSV(t, "code,name,flag,difficulty,salary,jobs,demand\nit,Italian,🇮🇹,Intermediate,16000,9500,High\n")
	result, err := excel.ImportLanguages(second)
	if err != nil {
		t.Fatal(err)
	}
	if result.Updated != 1 || result.Created != 0 {
		t.Errorf("Updated/Created = %d/%d, want 1/0", result.Updated, result.Created)
	}

	it, err := database.NewLanguageRepository().GetByCode("it")
	if err != nil {
		t.Fatal(err)
	}
	if it.EconomicImpact.AverageSalaryIncrease != 16000 {
		t.Errorf("salary after reimport = %v, want 16000", it.EconomicImpact.AverageSalaryIncrease)
	}
}

func TestImportLanguages_SkipsBlankRows(t *testing.T) {
	setupDB(t)

	config := excel.DefaultImportConfig()
	config.FilePath = writeCSV(t, "code,name,flag,difficulty,salary,jobs,demand\n,,,,,,\nit,Italian,🇮🇹,Intermediate,14000,9000,Medium\n")

	result, err := excel.ImportLanguages(config)
	if err != nil {
		t.Fatal(err)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if result.Created != 1 {
		t.Errorf("Created = %d, want 1", result.Created)
	}
}
