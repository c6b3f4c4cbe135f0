package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Type returns the configured database driver, defaulting to sqlite.
func Type() string {
	if t := os.Getenv("DB_TYPE"); t != "" {
		return t
	}
	return "sqlite"
}

// Connect establishes a connection to the database and initializes the schema.
// With DB_TYPE=postgres the DATABASE_URL environment variable holds the DSN;
// otherwise a local sqlite file under DATA_DIR (default "data") is used.
// DATABASE_PATH overrides the sqlite file location, which tests use to point
// at ":memory:".
func Connect() error {
	var (
		db  *sqlx.DB
		err error
	)

	if Type() == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dataDir := os.Getenv("DATA_DIR")
			if dataDir == "" {
				dataDir = "data"
			}
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "linguabot.db")
		}

		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if Type() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			city TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS languages (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			flag TEXT,
			difficulty TEXT,
			salary_increase REAL NOT NULL,
			job_opportunities INTEGER NOT NULL,
			market_demand TEXT NOT NULL,
			industries TEXT,
			regions TEXT,
			speakers INTEGER DEFAULT 0
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS user_progress (
			id %s,
			user_id INTEGER NOT NULL,
			language_code TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT 'A1',
			experience_points INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			last_study_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			total_study_seconds INTEGER NOT NULL DEFAULT 0,
			vocabulary_mastered INTEGER NOT NULL DEFAULT 0,
			completed_challenges TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, language_code)
		)`, idColumn),
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			icon TEXT,
			category TEXT,
			experience_reward INTEGER NOT NULL DEFAULT 0,
			unlocked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, title)
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
