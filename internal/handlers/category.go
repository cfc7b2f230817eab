// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	filter := services.CategoryFilter{
		Featured:   c.Query("featured") == "true",
		ParentOnly: c.Query("parentOnly") == "true",
	}

	categories, err := h.categoryService.ListCategories(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Name == "" || req.Slug == "" {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// GET /categories/:slug
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, tools, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":            category.ID,
		"name":          category.Name,
		"slug":          category.Slug,
		"description":   category.Description,
		"parentId":      category.ParentID,
		"orderPosition": category.OrderPosition,
		"isVisible":     category.IsVisible,
		"parent":        category.Parent,
		"subcategories": category.Subcategories,
		"tools":         formatToolCards(tools),
	})
}

// PUT /categories/:slug
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// DELETE /categories/:slug
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("slug")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
