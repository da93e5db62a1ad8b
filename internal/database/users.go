package database

import (
	"database/sql"
	"fmt"
	"time"
)

// User represents a registered MindEase user
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateUser inserts a new user with an already-hashed password
func (d *DB) CreateUser(name, email, passwordHash string) (*User, error) {
	now := time.Now()

	result, err := d.Exec(`
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, email, passwordHash, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetUserByEmail returns the user with the given email, or nil when none exists
func (d *DB) GetUserByEmail(email string) (*User, error) {
	var u User
	err := d.QueryRow(`
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID retrieves a user by their ID
func (d *DB) GetUserByID(userID int64) (*User, error) {
	var u User
	err := d.QueryRow(`
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = ?
	`, userID).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
