// internal/services/category_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

type CategoryFilter struct {
	// Featured keeps only categories that file at least one featured tool;
	// categories carry no featured flag of their own.
	Featured   bool
	ParentOnly bool
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
	ParentID    *uint  `json:"parentId,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string       `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Order       *int         `json:"order,omitempty"`
	Visible     *bool        `json:"visible,omitempty"`
	ParentID    NullableUint `json:"parentId,omitempty"`
}

// NullableUint distinguishes a field that was absent from the body from
// one explicitly set to null, so an update can clear the parent
// reference instead of only replacing it.
type NullableUint struct {
	Set   bool
	Valid bool
	Value uint
}

func (n *NullableUint) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories(filter CategoryFilter) ([]models.Category, error) {
	query := s.db.Model(&models.Category{}).
		Where("is_visible = ?", true).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_visible = ?", true).Order("order_position ASC")
		}).
		Preload("Parent").
		Order("order_position ASC")

	if filter.ParentOnly {
		query = query.Where("parent_id IS NULL")
	}

	if filter.Featured {
		query = query.Where("id IN (?)",
			s.db.Model(&models.Tool{}).
				Select("category_id").
				Where("is_featured = ? AND is_visible = ?", true, true))
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, newValidationError("missing required fields")
	}

	category := &models.Category{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		OrderPosition: req.Order,
		IsVisible:     true,
		ParentID:      req.ParentID,
	}
	if req.Visible != nil {
		category.IsVisible = *req.Visible
	}

	if err := s.db.Create(category).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, conflict("category")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// GetCategoryBySlug returns the category with its visible subcategories
// and the visible tools filed under it, best rated first.
func (s *CategoryService) GetCategoryBySlug(slug string) (*models.Category, []models.Tool, error) {
	var category models.Category
	err := s.db.Where("slug = ?", slug).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_visible = ?", true).Order("order_position ASC")
		}).
		Preload("Parent").
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFound("category")
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	var tools []models.Tool
	err = s.db.Where("category_id = ? AND is_visible = ?", category.ID, true).
		Preload("ToolTags.Tag").
		Order("rating DESC").
		Find(&tools).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch category tools: %w", err)
	}

	return &category, tools, nil
}

func (s *CategoryService) UpdateCategory(slug string, req *UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("category")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Order != nil {
		updates["order_position"] = *req.Order
	}
	if req.Visible != nil {
		updates["is_visible"] = *req.Visible
	}
	if req.ParentID.Set {
		if req.ParentID.Valid {
			updates["parent_id"] = req.ParentID.Value
		} else {
			updates["parent_id"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}
	return &category, nil
}

// DeleteCategory refuses to remove a category that still files tools.
func (s *CategoryService) DeleteCategory(slug string) error {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("category")
		}
		return fmt.Errorf("database error: %w", err)
	}

	var toolCount int64
	if err := s.db.Model(&models.Tool{}).Where("category_id = ?", category.ID).Count(&toolCount).Error; err != nil {
		return fmt.Errorf("failed to count category tools: %w", err)
	}
	if toolCount > 0 {
		return newValidationError("cannot delete category with tools")
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
