// internal/services/review_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annuaire-ia/backend/internal/models"
)

func TestCreateReviewPendingModeration(t *testing.T) {
	db := setupTestDB(t)
	toolSvc := NewToolService(db)
	svc := NewReviewService(db)

	createTestTool(t, toolSvc, "reviewed", nil)

	review, err := svc.CreateReview("reviewed", &CreateReviewRequest{
		UserName: "Alice",
		Rating:   5,
		Comment:  "Great tool, 10/10",
	})
	require.NoError(t, err)
	assert.False(t, review.IsVerified)
	assert.False(t, review.IsVisible)

	// Hidden until moderated.
	visible, err := svc.ListVisibleReviews("reviewed")
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, db.Model(&models.Review{}).
		Where("id = ?", review.ID).
		Update("is_visible", true).Error)

	visible, err = svc.ListVisibleReviews("reviewed")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Alice", visible[0].UserName)
}

func TestCreateReviewRejectsLinks(t *testing.T) {
	db := setupTestDB(t)
	toolSvc := NewToolService(db)
	svc := NewReviewService(db)

	createTestTool(t, toolSvc, "filtered", nil)

	cases := []string{
		"check http://x.com",
		"see HTTPS://example.org",
		"visit www.spam.fr",
		"injection <script>",
		"weird {braces}",
		"pipe | char",
	}
	for _, comment := range cases {
		_, err := svc.CreateReview("filtered", &CreateReviewRequest{
			UserName: "Bob",
			Rating:   4,
			Comment:  comment,
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "comment %q should be rejected", comment)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	toolSvc := NewToolService(db)
	svc := NewReviewService(db)

	createTestTool(t, toolSvc, "validated", nil)

	var validationErr *ValidationError

	_, err := svc.CreateReview("validated", &CreateReviewRequest{Rating: 3, Comment: "ok"})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateReview("validated", &CreateReviewRequest{UserName: "Eve", Rating: 6, Comment: "ok"})
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateReviewUnknownTool(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	_, err := svc.CreateReview("ghost", &CreateReviewRequest{
		UserName: "Alice",
		Rating:   5,
		Comment:  "fine",
	})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.ListVisibleReviews("ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}
