package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/linguabot/internal/progress"
	"github.com/example/linguabot/pkg/models"
)

// UserProgressRepository handles database operations for user progress
type UserProgressRepository struct{}

// NewUserProgressRepository creates a new repository instance
func NewUserProgressRepository() *UserProgressRepository {
	return &UserProgressRepository{}
}

const progressColumns = `id, user_id, language_code, level, experience_points, streak,
	last_study_date, total_study_seconds, vocabulary_mastered, completed_challenges,
	created_at, updated_at`

// GetByUserAndLanguage returns the progress record for a (user, language)
// pair, or progress.ErrNotFound when none exists.
func (r *UserProgressRepository) GetByUserAndLanguage(userID int64, languageCode string) (*models.UserProgress, error) {
	row := DB.QueryRow(
		"SELECT "+progressColumns+" FROM user_progress WHERE user_id = $1 AND language_code = $2",
		userID, languageCode,
	)
	p, err := scanProgress(row)
	if err == sql.ErrNoRows {
		return nil, progress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %v", err)
	}
	return p, nil
}

// GetByUser returns all progress records for a user, oldest first.
func (r *UserProgressRepository) GetByUser(userID int64) ([]models.UserProgress, error) {
	rows, err := DB.Query(
		"SELECT "+progressColumns+" FROM user_progress WHERE user_id = $1 ORDER BY created_at ASC, id ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %v", err)
	}
	defer rows.Close()

	var out []models.UserProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user progress: %v", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Create inserts a new progress record.
func (r *UserProgressRepository) Create(p *models.UserProgress) error {
	completed, err := json.Marshal(p.CompletedChallenges)
	if err != nil {
		return fmt.Errorf("failed to marshal completed challenges: %v", err)
	}

	result, err := DB.Exec(`
		INSERT INTO user_progress (
			user_id, language_code, level, experience_points, streak,
			last_study_date, total_study_seconds, vocabulary_mastered, completed_challenges
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		p.UserID,
		p.LanguageCode,
		string(p.Level),
		p.ExperiencePoints,
		p.Streak,
		p.LastStudyDate,
		p.TotalStudySeconds,
		p.VocabularyMastered,
		string(completed),
	)
	if err != nil {
		return fmt.Errorf("failed to create user progress: %v", err)
	}

	if Type() != "postgres" {
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		p.ID = id
		return nil
	}

	return DB.QueryRow(
		"SELECT id FROM user_progress WHERE user_id = $1 AND language_code = $2",
		p.UserID, p.LanguageCode,
	).Scan(&p.ID)
}

// Update modifies an existing progress record
func (r *UserProgressRepository) Update(p *models.UserProgress) error {
	completed, err := json.Marshal(p.CompletedChallenges)
	if err != nil {
		return fmt.Errorf("failed to marshal completed challenges: %v", err)
	}

	_, err = DB.Exec(`
		UPDATE user_progress SET
			level = $1,
			experience_points = $2,
			streak = $3,
			last_study_date = $4,
			total_study_seconds = $5,
			vocabulary_mastered = $6,
			completed_challenges = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`,
		string(p.Level),
		p.ExperiencePoints,
		p.Streak,
		p.LastStudyDate,
		p.TotalStudySeconds,
		p.VocabularyMastered,
		string(completed),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user progress: %v", err)
	}
	return nil
}

// ResetUser removes every progress record for the user.
func (r *UserProgressRepository) ResetUser(userID int64) error {
	if _, err := DB.Exec("DELETE FROM user_progress WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to reset user progress: %v", err)
	}
	return nil
}

// GetStreaksAtRisk returns records whose streak would break unless the user
// studies today: a positive streak with the last session on the previous
// calendar day. The calendar comparison happens in Go to stay portable
// across drivers.
func (r *UserProgressRepository) GetStreaksAtRisk(asOf time.Time) ([]models.UserProgress, error) {
	rows, err := DB.Query(
		"SELECT "+progressColumns+" FROM user_progress WHERE streak > 0 AND last_study_date >= $1",
		asOf.Add(-48*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get streaks at risk: %v", err)
	}
	defer rows.Close()

	yesterday := asOf.AddDate(0, 0, -1)
	var out []models.UserProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user progress: %v", err)
		}
		y1, m1, d1 := p.LastStudyDate.Date()
		y2, m2, d2 := yesterday.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, *p)
		}
	}
	return out, rows.Err()
}

func scanProgress(row rowScanner) (*models.UserProgress, error) {
	var (
		p         models.UserProgress
		level     string
		completed string
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.LanguageCode,
		&level,
		&p.ExperiencePoints,
		&p.Streak,
		&p.LastStudyDate,
		&p.TotalStudySeconds,
		&p.VocabularyMastered,
		&completed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Level = models.ProficiencyLevel(level)
	if completed != "" {
		if err := json.Unmarshal([]byte(completed), &p.CompletedChallenges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal completed challenges: %v", err)
		}
	}
	if p.CompletedChallenges == nil {
		p.CompletedChallenges = []string{}
	}
	return &p, nil
}
