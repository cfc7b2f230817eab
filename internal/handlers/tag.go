// internal/handlers/tag.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// GET /tags
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, tags)
}

// POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req services.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Name == "" {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	tag, err := h.tagService.CreateTag(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, tag)
}

// GET /tags/:slug
func (h *TagHandler) GetTag(c *gin.Context) {
	tag, tools, err := h.tagService.GetTagBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":    tag.ID,
		"name":  tag.Name,
		"slug":  tag.Slug,
		"tools": formatToolCards(tools),
	})
}

// PUT /tags/:slug
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req services.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	tag, err := h.tagService.UpdateTag(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, tag)
}

// DELETE /tags/:slug
func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.DeleteTag(c.Param("slug")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
