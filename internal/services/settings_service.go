// internal/services/settings_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/annuaire-ia/backend/internal/models"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings flattens every SiteSetting row into a key-value map.
func (s *SettingsService) GetSettings() (map[string]string, error) {
	var settings []models.SiteSetting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// UpdateSettings upserts every pair keyed on the unique setting key.
func (s *SettingsService) UpdateSettings(values map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			setting := models.SiteSetting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error
			if err != nil {
				return fmt.Errorf("failed to upsert setting %s: %w", key, err)
			}
		}
		return nil
	})
}
