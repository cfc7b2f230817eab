// internal/services/tool_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/models"
	"github.com/annuaire-ia/backend/internal/utils"
)

// MaxListLimit is the hard cap on page size; larger values are rejected,
// not clamped.
const MaxListLimit = 100

type ToolService struct {
	db *gorm.DB
}

// ToolFilter enumerates the recognized list options. Search matches
// name and both descriptions by substring; case sensitivity follows the
// store collation.
type ToolFilter struct {
	CategorySlug string
	TagSlug      string
	FeaturedOnly bool
	Search       string
	Page         int
	Limit        int
}

type FeatureInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description,omitempty"`
	OrderPosition *int   `json:"orderPosition,omitempty"`
}

type UseCaseInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	OrderPosition *int   `json:"orderPosition,omitempty"`
}

type AudienceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type CreateToolRequest struct {
	Name             string             `json:"name" validate:"required,max=255"`
	Slug             string             `json:"slug" validate:"required,max=255"`
	ShortDescription string             `json:"shortDescription" validate:"required,max=500"`
	LongDescription  string             `json:"longDescription,omitempty"`
	LogoURL          string             `json:"logoUrl,omitempty"`
	ImageURL         string             `json:"imageUrl,omitempty"`
	WebsiteURL       string             `json:"websiteUrl,omitempty"`
	Rating           float64            `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewCount      int                `json:"reviewCount,omitempty"`
	CategoryID       uint               `json:"categoryId" validate:"required"`
	PricingType      models.PricingType `json:"pricingType,omitempty"`
	PriceDetails     string             `json:"priceDetails,omitempty"`
	LastUpdated      *time.Time         `json:"lastUpdated,omitempty"`
	IsFeatured       bool               `json:"isFeatured,omitempty"`
	TwitterURL       string             `json:"twitterUrl,omitempty"`
	LinkedinURL      string             `json:"linkedinUrl,omitempty"`
	InstagramURL     string             `json:"instagramUrl,omitempty"`
	IsVisible        *bool              `json:"isVisible,omitempty"`
	MetaTitle        string             `json:"metaTitle,omitempty"`
	MetaDescription  string             `json:"metaDescription,omitempty"`
	Features         []FeatureInput     `json:"features,omitempty"`
	UseCases         []UseCaseInput     `json:"useCases,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
	Audiences        []AudienceInput    `json:"audiences,omitempty"`
}

type UpdateToolRequest struct {
	Name             string             `json:"name,omitempty"`
	ShortDescription string             `json:"shortDescription,omitempty"`
	LongDescription  *string            `json:"longDescription,omitempty"`
	LogoURL          *string            `json:"logoUrl,omitempty"`
	ImageURL         *string            `json:"imageUrl,omitempty"`
	WebsiteURL       *string            `json:"websiteUrl,omitempty"`
	Rating           *float64           `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewCount      *int               `json:"reviewCount,omitempty"`
	CategoryID       *uint              `json:"categoryId,omitempty"`
	PricingType      models.PricingType `json:"pricingType,omitempty"`
	PriceDetails     *string            `json:"priceDetails,omitempty"`
	IsFeatured       *bool              `json:"isFeatured,omitempty"`
	TwitterURL       *string            `json:"twitterUrl,omitempty"`
	LinkedinURL      *string            `json:"linkedinUrl,omitempty"`
	InstagramURL     *string            `json:"instagramUrl,omitempty"`
	IsVisible        *bool              `json:"isVisible,omitempty"`
	MetaTitle        *string            `json:"metaTitle,omitempty"`
	MetaDescription  *string            `json:"metaDescription,omitempty"`
	Features         []FeatureInput     `json:"features,omitempty"`
	UseCases         []UseCaseInput     `json:"useCases,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
	Audiences        []AudienceInput    `json:"audiences,omitempty"`
}

func NewToolService(db *gorm.DB) *ToolService {
	return &ToolService{db: db}
}

// GetToolBySlug fetches a tool with every relation the detail page needs.
func (s *ToolService) GetToolBySlug(slug string) (*models.Tool, error) {
	var tool models.Tool
	err := s.db.Where("slug = ?", slug).
		Preload("Category.Parent").
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_position ASC, id ASC")
		}).
		Preload("UseCases", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_position ASC, id ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_visible = ?", true).Order("review_date DESC")
		}).
		Preload("ToolTags.Tag").
		Preload("ToolAudiences.Audience").
		First(&tool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tool")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &tool, nil
}

// ListTools applies the filter and returns one page of visible tools plus
// the total count computed against the same filter, so the pagination
// metadata can never drift from the items.
func (s *ToolService) ListTools(filter ToolFilter) ([]models.Tool, int64, error) {
	if filter.Limit > MaxListLimit {
		return nil, 0, newValidationError("limit cannot exceed %d", MaxListLimit)
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	query := s.db.Model(&models.Tool{}).Where("tools.is_visible = ?", true)

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = tools.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.TagSlug != "" {
		query = query.Where("tools.id IN (?)",
			s.db.Model(&models.ToolTag{}).
				Select("tool_tags.tool_id").
				Joins("JOIN tags ON tags.id = tool_tags.tag_id").
				Where("tags.slug = ?", filter.TagSlug))
	}

	if filter.FeaturedOnly {
		query = query.Where("tools.is_featured = ?", true)
	}

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where(
			"tools.name LIKE ? OR tools.short_description LIKE ? OR tools.long_description LIKE ?",
			term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tools: %w", err)
	}

	params := utils.PaginationParams{Page: filter.Page, Limit: filter.Limit}
	var tools []models.Tool
	err := utils.ApplyPagination(query, params).
		Preload("Category").
		Preload("ToolTags.Tag").
		Order("tools.rating DESC").
		Find(&tools).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tools: %w", err)
	}

	return tools, total, nil
}

func (s *ToolService) CreateTool(req *CreateToolRequest) (*models.Tool, error) {
	if req.Name == "" || req.Slug == "" || req.ShortDescription == "" || req.CategoryID == 0 {
		return nil, newValidationError("missing required fields")
	}

	var existing models.Tool
	if err := s.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return nil, conflict("a tool with this slug")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	pricing := req.PricingType
	if pricing == "" {
		pricing = models.PricingTypeGratuit
	}
	lastUpdated := req.LastUpdated
	if lastUpdated == nil {
		now := time.Now()
		lastUpdated = &now
	}

	tool := &models.Tool{
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		LogoURL:          req.LogoURL,
		ImageURL:         req.ImageURL,
		WebsiteURL:       req.WebsiteURL,
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		CategoryID:       req.CategoryID,
		PricingType:      pricing,
		PriceDetails:     req.PriceDetails,
		LastUpdated:      lastUpdated,
		IsFeatured:       req.IsFeatured,
		TwitterURL:       req.TwitterURL,
		LinkedinURL:      req.LinkedinURL,
		InstagramURL:     req.InstagramURL,
		IsVisible:        true,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	}
	if req.IsVisible != nil {
		tool.IsVisible = *req.IsVisible
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tool).Error; err != nil {
			if isDuplicateKey(err) {
				return conflict("a tool with this slug")
			}
			return fmt.Errorf("failed to create tool: %w", err)
		}
		if err := createFeatures(tx, tool.ID, req.Features); err != nil {
			return err
		}
		if err := createUseCases(tx, tool.ID, req.UseCases); err != nil {
			return err
		}
		if err := attachTags(tx, tool.ID, req.Tags); err != nil {
			return err
		}
		return attachAudiences(tx, tool.ID, req.Audiences)
	})
	if err != nil {
		return nil, err
	}

	return s.GetToolBySlug(tool.Slug)
}

func (s *ToolService) UpdateTool(slug string, req *UpdateToolRequest) (*models.Tool, error) {
	var tool models.Tool
	if err := s.db.Where("slug = ?", slug).First(&tool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tool")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"last_updated": time.Now(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ShortDescription != "" {
		updates["short_description"] = req.ShortDescription
	}
	if req.LongDescription != nil {
		updates["long_description"] = *req.LongDescription
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.WebsiteURL != nil {
		updates["website_url"] = *req.WebsiteURL
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.ReviewCount != nil {
		updates["review_count"] = *req.ReviewCount
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.PricingType != "" {
		updates["pricing_type"] = req.PricingType
	}
	if req.PriceDetails != nil {
		updates["price_details"] = *req.PriceDetails
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.TwitterURL != nil {
		updates["twitter_url"] = *req.TwitterURL
	}
	if req.LinkedinURL != nil {
		updates["linkedin_url"] = *req.LinkedinURL
	}
	if req.InstagramURL != nil {
		updates["instagram_url"] = *req.InstagramURL
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if req.MetaTitle != nil {
		updates["meta_title"] = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updates["meta_description"] = *req.MetaDescription
	}

	// Scalar updates and every provided association replace run in one
	// transaction so a concurrent read never sees a tool stripped of its
	// collections mid-update.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tool).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update tool: %w", err)
		}
		if req.Features != nil {
			if err := tx.Where("tool_id = ?", tool.ID).Delete(&models.Feature{}).Error; err != nil {
				return fmt.Errorf("failed to clear features: %w", err)
			}
			if err := createFeatures(tx, tool.ID, req.Features); err != nil {
				return err
			}
		}
		if req.UseCases != nil {
			if err := tx.Where("tool_id = ?", tool.ID).Delete(&models.UseCase{}).Error; err != nil {
				return fmt.Errorf("failed to clear use cases: %w", err)
			}
			if err := createUseCases(tx, tool.ID, req.UseCases); err != nil {
				return err
			}
		}
		if req.Tags != nil {
			if err := tx.Where("tool_id = ?", tool.ID).Delete(&models.ToolTag{}).Error; err != nil {
				return fmt.Errorf("failed to clear tags: %w", err)
			}
			if err := attachTags(tx, tool.ID, req.Tags); err != nil {
				return err
			}
		}
		if req.Audiences != nil {
			if err := tx.Where("tool_id = ?", tool.ID).Delete(&models.ToolAudience{}).Error; err != nil {
				return fmt.Errorf("failed to clear audiences: %w", err)
			}
			if err := attachAudiences(tx, tool.ID, req.Audiences); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetToolBySlug(slug)
}

func (s *ToolService) DeleteTool(slug string) error {
	var tool models.Tool
	if err := s.db.Where("slug = ?", slug).First(&tool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("tool")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Owned rows (features, use cases, reviews, join rows) are removed in
	// the same transaction; the store-level cascade covers engines that
	// honor the constraint, this keeps sqlite-backed tests honest too.
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, owned := range []interface{}{
			&models.Feature{}, &models.UseCase{}, &models.Review{},
			&models.ToolTag{}, &models.ToolAudience{},
		} {
			if err := tx.Where("tool_id = ?", tool.ID).Delete(owned).Error; err != nil {
				return fmt.Errorf("failed to delete tool associations: %w", err)
			}
		}
		if err := tx.Delete(&tool).Error; err != nil {
			return fmt.Errorf("failed to delete tool: %w", err)
		}
		return nil
	})
}

func createFeatures(tx *gorm.DB, toolID uint, features []FeatureInput) error {
	for i, f := range features {
		position := i
		if f.OrderPosition != nil {
			position = *f.OrderPosition
		}
		feature := models.Feature{
			ToolID:        toolID,
			Title:         f.Title,
			Description:   f.Description,
			OrderPosition: position,
		}
		if err := tx.Create(&feature).Error; err != nil {
			return fmt.Errorf("failed to create feature: %w", err)
		}
	}
	return nil
}

func createUseCases(tx *gorm.DB, toolID uint, useCases []UseCaseInput) error {
	for i, u := range useCases {
		position := i
		if u.OrderPosition != nil {
			position = *u.OrderPosition
		}
		useCase := models.UseCase{
			ToolID:        toolID,
			Title:         u.Title,
			Description:   u.Description,
			ImageURL:      u.ImageURL,
			OrderPosition: position,
		}
		if err := tx.Create(&useCase).Error; err != nil {
			return fmt.Errorf("failed to create use case: %w", err)
		}
	}
	return nil
}

func attachTags(tx *gorm.DB, toolID uint, names []string) error {
	for _, name := range names {
		tag, err := UpsertTag(tx, name)
		if err != nil {
			return err
		}
		toolTag := models.ToolTag{ToolID: toolID, TagID: tag.ID}
		if err := tx.Create(&toolTag).Error; err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}
	return nil
}

func attachAudiences(tx *gorm.DB, toolID uint, audiences []AudienceInput) error {
	for _, a := range audiences {
		audience, err := UpsertAudience(tx, a.Name)
		if err != nil {
			return err
		}
		toolAudience := models.ToolAudience{
			ToolID:      toolID,
			AudienceID:  audience.ID,
			Description: a.Description,
		}
		if err := tx.Create(&toolAudience).Error; err != nil {
			return fmt.Errorf("failed to attach audience: %w", err)
		}
	}
	return nil
}
