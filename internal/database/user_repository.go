package database

import (
	"database/sql"
	"fmt"
)

// User represents a registered bot user.
type User struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	FirstName string `db:"first_name"`
	City      string `db:"city"`
}

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure creates the user on first contact and returns the stored record.
func (r *UserRepository) Ensure(id int64, username, firstName string) (*User, error) {
	var u User
	err := DB.QueryRow(
		"SELECT id, username, first_name, city FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.City)
	if err == nil {
		return &u, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	_, err = DB.Exec(
		"INSERT INTO users (id, username, first_name) VALUES ($1, $2, $3)",
		id, username, firstName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return &User{ID: id, Username: username, FirstName: firstName}, nil
}

// SetCity records the user's current city, used for location-gated challenges.
func (r *UserRepository) SetCity(id int64, city string) error {
	if _, err := DB.Exec("UPDATE users SET city = $1 WHERE id = $2", city, id); err != nil {
		return fmt.Errorf("failed to update user city: %v", err)
	}
	return nil
}

// GetCity returns the user's recorded city, empty when unknown.
func (r *UserRepository) GetCity(id int64) (string, error) {
	var city string
	err := DB.Get(&city, "SELECT city FROM users WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user city: %v", err)
	}
	return city, nil
}
