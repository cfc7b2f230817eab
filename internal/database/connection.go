// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/annuaire-ia/backend/internal/config"
	"github.com/annuaire-ia/backend/internal/models"
)

// Initialize opens the shared connection handle. It is constructed once
// in main and injected everywhere; no package-level global.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	switch cfg.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "info":
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Map unique-constraint violations to gorm.ErrDuplicatedKey so the
		// services can classify them as conflicts.
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
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
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_tools_category_visible ON tools(category_id, is_visible)",
		"CREATE INDEX IF NOT EXISTS idx_tools_rating ON tools(rating DESC)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_tool_visible ON reviews(tool_id, is_visible)",
		"CREATE INDEX IF NOT EXISTS idx_submissions_status_created ON tool_submissions(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories(parent_id, order_position)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData makes sure the catalog has the default category every
// approved submission without one falls back to, plus the base settings.
func SeedInitialData(db *gorm.DB) error {
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)

	if categoryCount == 0 {
		defaults := []models.Category{
			{Name: "Assistants IA", Slug: "assistants-ia", Description: "Assistants conversationnels et agents", OrderPosition: 1, IsVisible: true},
			{Name: "Génération d'images", Slug: "generation-images", Description: "Outils de création visuelle", OrderPosition: 2, IsVisible: true},
			{Name: "Rédaction", Slug: "redaction", Description: "Aide à l'écriture et au contenu", OrderPosition: 3, IsVisible: true},
		}
		for _, category := range defaults {
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", category.Slug, err)
			}
		}
		logrus.Info("Default categories created")
	}

	defaultSettings := map[string]string{
		"site_name":        "Annuaire IA",
		"site_description": "Le répertoire des meilleurs outils d'intelligence artificielle",
		"tools_per_page":   "10",
	}
	for key, value := range defaultSettings {
		var count int64
		db.Model(&models.SiteSetting{}).Where("key = ?", key).Count(&count)
		if count == 0 {
			setting := models.SiteSetting{Key: key, Value: value}
			if err := db.Create(&setting).Error; err != nil {
				logrus.WithError(err).Warnf("Failed to create setting %s", key)
			}
		}
	}

	return nil
}
