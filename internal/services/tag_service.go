// internal/services/tag_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/annuaire-ia/backend/internal/models"
	"github.com/annuaire-ia/backend/internal/utils"
)

type TagService struct {
	db *gorm.DB
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug,omitempty"`
}

type UpdateTagRequest struct {
	Name string `json:"name,omitempty"`
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	return tags, nil
}

func (s *TagService) CreateTag(req *CreateTagRequest) (*models.Tag, error) {
	if req.Name == "" {
		return nil, newValidationError("missing required fields")
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.TagSlug(req.Name)
	}

	tag := &models.Tag{Name: req.Name, Slug: slug}
	if err := s.db.Create(tag).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, conflict("tag")
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// GetTagBySlug returns the tag together with the tools carrying it.
func (s *TagService) GetTagBySlug(slug string) (*models.Tag, []models.Tool, error) {
	var tag models.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFound("tag")
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	var toolTags []models.ToolTag
	if err := s.db.Where("tag_id = ?", tag.ID).Find(&toolTags).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch tool tags: %w", err)
	}

	toolIDs := make([]uint, 0, len(toolTags))
	for _, tt := range toolTags {
		toolIDs = append(toolIDs, tt.ToolID)
	}

	var tools []models.Tool
	if len(toolIDs) > 0 {
		err := s.db.Where("id IN ?", toolIDs).
			Preload("Category").
			Preload("ToolTags.Tag").
			Order("rating DESC").
			Find(&tools).Error
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch tools: %w", err)
		}
	}

	return &tag, tools, nil
}

func (s *TagService) UpdateTag(slug string, req *UpdateTagRequest) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tag")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != "" {
		tag.Name = req.Name
	}

	if err := s.db.Save(&tag).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, conflict("tag")
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &tag, nil
}

// DeleteTag removes the tag; its join rows go with it via the store-level
// cascade constraint.
func (s *TagService) DeleteTag(slug string) error {
	var tag models.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("tag")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Select(clause.Associations).Delete(&tag).Error; err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// UpsertTag finds or creates a tag by its unique name. The insert uses
// ON CONFLICT DO NOTHING so concurrent submissions sharing a tag name
// never race into duplicate rows.
func UpsertTag(tx *gorm.DB, name string) (*models.Tag, error) {
	tag := models.Tag{Name: name, Slug: utils.TagSlug(name)}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tag: %w", err)
	}

	// The conflict path leaves the struct without an ID; fetch the winner.
	if tag.ID == 0 {
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch tag after upsert: %w", err)
		}
	}
	return &tag, nil
}

// UpsertAudience is the TargetAudience counterpart of UpsertTag.
func UpsertAudience(tx *gorm.DB, name string) (*models.TargetAudience, error) {
	audience := models.TargetAudience{Name: name, Slug: utils.TagSlug(name)}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&audience).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert audience: %w", err)
	}

	if audience.ID == 0 {
		if err := tx.Where("name = ?", name).First(&audience).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch audience after upsert: %w", err)
		}
	}
	return &audience, nil
}
