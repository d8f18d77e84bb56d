package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard-api/internal/database"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

const testJWTSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pool with more than one connection would hand each its own
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(db, testJWTSecret), db
}

// registerUser creates an account through the real signup path and returns
// the stored row.
func registerUser(t *testing.T, users *UserService, email string, role models.Role) *models.User {
	t.Helper()
	_, appErr := users.Register(&dtos.SignupRequest{
		Name:            "Test User",
		Email:           email,
		Password:        "pw123",
		UserType:        string(role),
		ProfileHeadline: "Engineer",
		Address:         "NY",
	})
	require.Nil(t, appErr)

	user, err := users.LookupByEmail(email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}
