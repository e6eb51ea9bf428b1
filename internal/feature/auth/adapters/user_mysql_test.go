package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		Username: username,
		Email:    email,
		Password: "hashed_password",
	}
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("moviefan", "test@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email maps to sentinel", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("first", "duplicate@example.com")))

		err := repo.Create(context.Background(), newTestUser("second", "duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("duplicate username maps to sentinel", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("moviefan", "first@example.com")))

		err := repo.Create(context.Background(), newTestUser("moviefan", "second@example.com"))

		assert.ErrorIs(t, err, usecase.ErrUsernameAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := newTestUser("moviefan", "test@example.com")
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "test@example.com")

		assert.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "moviefan", found.Username)
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
