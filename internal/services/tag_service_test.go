// internal/services/tag_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annuaire-ia/backend/internal/models"
)

func TestCreateTagDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	tag, err := svc.CreateTag(&CreateTagRequest{Name: "Open Source"})
	require.NoError(t, err)
	assert.Equal(t, "open-source", tag.Slug)
}

func TestCreateTagDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	_, err := svc.CreateTag(&CreateTagRequest{Name: "Gratuit"})
	require.NoError(t, err)

	_, err = svc.CreateTag(&CreateTagRequest{Name: "Gratuit"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestListTagsSorted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	for _, name := range []string{"Zèbre", "Audio", "Montage"} {
		_, err := svc.CreateTag(&CreateTagRequest{Name: name})
		require.NoError(t, err)
	}

	tags, err := svc.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Audio", tags[0].Name)
}

func TestGetTagBySlugWithTools(t *testing.T) {
	db := setupTestDB(t)
	tagSvc := NewTagService(db)
	toolSvc := NewToolService(db)

	createTestTool(t, toolSvc, "tagged", func(req *CreateToolRequest) {
		req.Tags = []string{"Audio"}
	})
	createTestTool(t, toolSvc, "untagged", nil)

	tag, tools, err := tagSvc.GetTagBySlug("audio")
	require.NoError(t, err)
	assert.Equal(t, "Audio", tag.Name)
	require.Len(t, tools, 1)
	assert.Equal(t, "tagged", tools[0].Slug)
}

func TestGetTagBySlugNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	_, _, err := svc.GetTagBySlug("absent")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteTagRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	tagSvc := NewTagService(db)
	toolSvc := NewToolService(db)

	tool := createTestTool(t, toolSvc, "keeper", func(req *CreateToolRequest) {
		req.Tags = []string{"Éphémère"}
	})

	require.NoError(t, tagSvc.DeleteTag("éphémère"))

	var joinCount int64
	require.NoError(t, db.Model(&models.ToolTag{}).Where("tool_id = ?", tool.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	// The tool itself survives.
	_, err := toolSvc.GetToolBySlug("keeper")
	assert.NoError(t, err)
}

func TestUpsertTagIdempotent(t *testing.T) {
	db := setupTestDB(t)

	first, err := UpsertTag(db, "Traduction")
	require.NoError(t, err)
	second, err := UpsertTag(db, "Traduction")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertAudienceIdempotent(t *testing.T) {
	db := setupTestDB(t)

	first, err := UpsertAudience(db, "Développeurs")
	require.NoError(t, err)
	second, err := UpsertAudience(db, "Développeurs")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
