package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/database"
	"github.com/ozgurkara/todo-backend/internal/models"
)

// newTestDB opens a throwaway SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestTokens(t *testing.T) *auth.TokenManager {
	t.Helper()

	tm, err := auth.NewTokenManager("test_secret_key_12345", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return tm
}

// seedUser inserts a user with a bcrypt-hashed password and returns it.
func seedUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Email:          username + "@example.com",
		Username:       username,
		FirstName:      "Eric",
		LastName:       "Roby",
		HashedPassword: string(hash),
		Role:           role,
		PhoneNumber:    "(111)-111-1111",
		IsActive:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
