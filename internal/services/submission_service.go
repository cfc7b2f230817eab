// internal/services/submission_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/models"
	"github.com/annuaire-ia/backend/internal/utils"
)

// DefaultCategoryID is used when an approved submission never named a
// category; the seeder guarantees the row exists.
const DefaultCategoryID = 1

type SubmissionService struct {
	db *gorm.DB
}

type CreateSubmissionRequest struct {
	Name           string             `json:"name" validate:"required,max=255"`
	Slug           string             `json:"slug,omitempty"`
	Website        string             `json:"website" validate:"required,max=500"`
	Description    string             `json:"description" validate:"required"`
	LogoURL        string             `json:"logoUrl,omitempty"`
	PricingType    models.PricingType `json:"pricingType,omitempty"`
	CategoryID     *uint              `json:"categoryId" validate:"required"`
	Tags           []string           `json:"tags,omitempty"`
	SubmitterName  string             `json:"submitterName" validate:"required,max=100"`
	SubmitterEmail string             `json:"submitterEmail" validate:"required,email"`
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// CreateSubmission stages a publicly submitted tool for moderation. The
// slug is reserved up front: a submission whose slug already belongs to a
// published tool is rejected immediately instead of failing at approval.
func (s *SubmissionService) CreateSubmission(req *CreateSubmissionRequest) (*models.ToolSubmission, error) {
	if req.Name == "" || req.Website == "" || req.Description == "" ||
		req.CategoryID == nil || req.SubmitterName == "" || req.SubmitterEmail == "" {
		return nil, newValidationError("missing required fields")
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.TagSlug(req.Name)
	}

	var existing models.Tool
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, newValidationError("a tool with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	tagsJSON := datatypes.JSON("[]")
	if len(req.Tags) > 0 {
		encoded, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		tagsJSON = datatypes.JSON(encoded)
	}

	submission := &models.ToolSubmission{
		Name:           req.Name,
		Slug:           slug,
		Description:    req.Description,
		WebsiteURL:     req.Website,
		LogoURL:        req.LogoURL,
		PricingType:    req.PricingType,
		CategoryID:     req.CategoryID,
		Tags:           tagsJSON,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
		Status:         models.SubmissionStatusPending,
	}
	if err := s.db.Create(submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

// ListPendingSubmissions returns the moderation queue, newest first.
func (s *SubmissionService) ListPendingSubmissions() ([]models.ToolSubmission, error) {
	var submissions []models.ToolSubmission
	err := s.db.Where("status = ?", models.SubmissionStatusPending).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	return submissions, nil
}

// ApproveSubmission promotes a pending submission to a published tool:
// it derives the slug when the submission lacks one, copies the public
// fields over, upserts each tag name and attaches it, and marks the
// submission approved. Everything runs in a single transaction so a
// mid-way failure leaves neither a half-tagged tool nor a consumed
// submission behind.
func (s *SubmissionService) ApproveSubmission(id uint) (*models.Tool, error) {
	var submission models.ToolSubmission
	err := s.db.Where("status = ?", models.SubmissionStatusPending).
		First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("pending submission")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	slug := submission.Slug
	if slug == "" {
		slug = utils.Slugify(submission.Name)
	}

	pricing := submission.PricingType
	if pricing == "" {
		pricing = models.PricingTypeGratuit
	}
	categoryID := uint(DefaultCategoryID)
	if submission.CategoryID != nil {
		categoryID = *submission.CategoryID
	}

	var tagNames []string
	if len(submission.Tags) > 0 {
		if err := json.Unmarshal(submission.Tags, &tagNames); err != nil {
			logrus.WithError(err).WithField("submission_id", id).
				Warn("Submission carries unparseable tags, approving without them")
			tagNames = nil
		}
	}

	tool := &models.Tool{
		Name:             submission.Name,
		Slug:             slug,
		ShortDescription: submission.Description,
		LongDescription:  "",
		LogoURL:          submission.LogoURL,
		WebsiteURL:       submission.WebsiteURL,
		PricingType:      pricing,
		CategoryID:       categoryID,
		IsVisible:        true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tool).Error; err != nil {
			if isDuplicateKey(err) {
				return conflict("a tool with this slug")
			}
			return fmt.Errorf("failed to create tool: %w", err)
		}
		if err := attachTags(tx, tool.ID, tagNames); err != nil {
			return err
		}
		return tx.Model(&submission).
			Update("status", models.SubmissionStatusApproved).Error
	})
	if err != nil {
		return nil, err
	}

	return tool, nil
}

// RejectSubmission is terminal and touches nothing in the catalog.
func (s *SubmissionService) RejectSubmission(id uint) error {
	var submission models.ToolSubmission
	err := s.db.Where("status = ?", models.SubmissionStatusPending).
		First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("pending submission")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&submission).
		Update("status", models.SubmissionStatusRejected).Error; err != nil {
		return fmt.Errorf("failed to reject submission: %w", err)
	}
	return nil
}
