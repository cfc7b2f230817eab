// internal/services/setup_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/annuaire-ia/backend/internal/models"
)

// setupTestDB opens a fresh in-memory database per test with the full
// schema and one default category (ID 1, the approval fallback).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would get its own database;
	// pin the pool to one so the schema is shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.TargetAudience{},
		&models.Tool{},
		&models.Feature{},
		&models.UseCase{},
		&models.Review{},
		&models.ToolTag{},
		&models.ToolAudience{},
		&models.ToolSubmission{},
		&models.SiteSetting{},
		&models.Contact{},
	)
	require.NoError(t, err)

	category := models.Category{
		Name:          "Assistants IA",
		Slug:          "assistants-ia",
		OrderPosition: 1,
		IsVisible:     true,
	}
	require.NoError(t, db.Create(&category).Error)

	return db
}

func createTestTool(t *testing.T, svc *ToolService, slug string, mutate func(*CreateToolRequest)) *models.Tool {
	t.Helper()

	req := &CreateToolRequest{
		Name:             "Test Tool " + slug,
		Slug:             slug,
		ShortDescription: "A short description",
		CategoryID:       1,
	}
	if mutate != nil {
		mutate(req)
	}

	tool, err := svc.CreateTool(req)
	require.NoError(t, err)
	return tool
}
