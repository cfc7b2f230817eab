// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/models"
)

// Naive content filter carried over from the public site: reviews with
// markup-ish characters or anything link-shaped are turned away before
// moderation. This is a nuisance filter, not a security boundary.
var (
	forbiddenCharsRe = regexp.MustCompile("[<>{}\\[\\]\\\\^~`|]")
	linkPatternRe    = regexp.MustCompile(`(?i)(http|https|www\.)`)
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	UserName string `json:"userName" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListVisibleReviews returns the moderated reviews of a tool, newest first.
func (s *ReviewService) ListVisibleReviews(toolSlug string) ([]models.Review, error) {
	tool, err := s.findTool(toolSlug)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	err = s.db.Where("tool_id = ? AND is_visible = ?", tool.ID, true).
		Order("review_date DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview stores a submitted review as unverified and invisible; it
// stays off the public endpoints until a moderator flips IsVisible.
func (s *ReviewService) CreateReview(toolSlug string, req *CreateReviewRequest) (*models.Review, error) {
	if req.UserName == "" || req.Rating == 0 || req.Comment == "" {
		return nil, newValidationError("missing required fields")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, newValidationError("rating must be between 1 and 5")
	}
	if forbiddenCharsRe.MatchString(req.Comment) || linkPatternRe.MatchString(req.Comment) {
		return nil, newValidationError("special characters and links are not allowed in comments")
	}

	tool, err := s.findTool(toolSlug)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ToolID:     tool.ID,
		UserName:   req.UserName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Now(),
		IsVerified: false,
		IsVisible:  false,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) findTool(slug string) (*models.Tool, error) {
	var tool models.Tool
	if err := s.db.Where("slug = ?", slug).First(&tool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tool")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &tool, nil
}
