package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestUser represents a user created for testing
type TestUser struct {
	ID    int64
	Name  string
	Email string
}

// CreateTestUser creates a test user in the database for testing purposes.
// Each call creates a unique user with an auto-generated email.
var testUserCounter int64 = 0

func CreateTestUser(t *testing.T, db *DB) *TestUser {
	t.Helper()
	testUserCounter++

	name := fmt.Sprintf("Test User %d", testUserCounter)
	email := fmt.Sprintf("testuser%d@example.com", testUserCounter)

	result, err := db.Exec(`
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)
	`, name, email, "test-password-hash")
	require.NoError(t, err, "failed to create test user")

	id, err := result.LastInsertId()
	require.NoError(t, err, "failed to get test user ID")

	return &TestUser{
		ID:    id,
		Name:  name,
		Email: email,
	}
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}
