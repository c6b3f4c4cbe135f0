package database

import (
	"fmt"

	"github.com/example/linguabot/pkg/models"
)

// AchievementRepository handles database operations for achievements
type AchievementRepository struct{}

// NewAchievementRepository creates a new repository instance
func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{}
}

// GetByUser returns all achievements for a user, oldest first.
func (r *AchievementRepository) GetByUser(userID int64) ([]models.Achievement, error) {
	rows, err := DB.Query(`
		SELECT id, user_id, title, description, icon, category, experience_reward, unlocked_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %v", err)
	}
	defer rows.Close()

	var out []models.Achievement
	for rows.Next() {
		var (
			a        models.Achievement
			category string
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Description, &a.Icon,
			&category, &a.ExperienceReward, &a.UnlockedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %v", err)
		}
		a.Category = models.AchievementCategory(category)
		out = append(out, a)
	}
	return out, rows.Err()
}

// HasTitle reports whether the user already earned an achievement with the
// given title. Titles are unique per user.
func (r *AchievementRepository) HasTitle(userID int64, title string) (bool, error) {
	var count int
	err := DB.Get(&count,
		"SELECT COUNT(*) FROM achievements WHERE user_id = $1 AND title = $2",
		userID, title,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check achievement title: %v", err)
	}
	return count > 0, nil
}

// Create inserts a new achievement.
func (r *AchievementRepository) Create(a *models.Achievement) error {
	_, err := DB.Exec(`
		INSERT INTO achievements (
			id, user_id, title, description, icon, category, experience_reward, unlocked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		a.ID,
		a.UserID,
		a.Title,
		a.Description,
		a.Icon,
		string(a.Category),
		a.ExperienceReward,
		a.UnlockedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create achievement: %v", err)
	}
	return nil
}

// ResetUser removes every achievement for the user.
func (r *AchievementRepository) ResetUser(userID int64) error {
	if _, err := DB.Exec("DELETE FROM achievements WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to reset achievements: %v", err)
	}
	return nil
}
