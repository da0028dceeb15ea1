package repository

import (
	"testing"
	"time"

	"oneiro/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with the full schema, used
// for tests that exercise transactions and real constraints.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Credit{},
		&models.UserSettings{},
		&models.Dream{},
		&models.DreamLike{},
		&models.DreamComment{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

// setupMockDB wires gorm to sqlmock for tests that assert the generated SQL.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestDream(t *testing.T, db *gorm.DB, userID uint, title string, public bool) *models.Dream {
	t.Helper()
	dream := &models.Dream{
		Title:       title,
		Description: "a dream about " + title,
		Date:        models.NormalizeDreamDate(time.Now()),
		IsPublic:    public,
		UserID:      userID,
	}
	require.NoError(t, db.Create(dream).Error)
	return dream
}
