// internal/handlers/tool.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

type ToolHandler struct {
	toolService   *services.ToolService
	reviewService *services.ReviewService
}

func NewToolHandler(toolService *services.ToolService, reviewService *services.ReviewService) *ToolHandler {
	return &ToolHandler{
		toolService:   toolService,
		reviewService: reviewService,
	}
}

// GET /tools
func (h *ToolHandler) GetTools(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := services.ToolFilter{
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		FeaturedOnly: c.Query("featured") == "true",
		Search:       c.Query("search"),
		Page:         params.Page,
		Limit:        params.Limit,
	}

	tools, total, err := h.toolService.ListTools(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tools":      formatToolCards(tools),
		"pagination": utils.NewPagination(total, params),
	})
}

// POST /tools
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req services.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Name == "" || req.Slug == "" || req.ShortDescription == "" || req.CategoryID == 0 {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.BadRequestResponse(c, validationErrors[0].Message)
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	tool, err := h.toolService.CreateTool(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, tool)
}

// GET /tools/:slug
func (h *ToolHandler) GetTool(c *gin.Context) {
	tool, err := h.toolService.GetToolBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, formatToolDetail(tool))
}

// PUT /tools/:slug
func (h *ToolHandler) UpdateTool(c *gin.Context) {
	var req services.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	tool, err := h.toolService.UpdateTool(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, formatToolDetail(tool))
}

// DELETE /tools/:slug
func (h *ToolHandler) DeleteTool(c *gin.Context) {
	if err := h.toolService.DeleteTool(c.Param("slug")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}

// GET /tools/:slug/reviews
func (h *ToolHandler) GetToolReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListVisibleReviews(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, reviews)
}

// POST /tools/:slug/reviews
func (h *ToolHandler) CreateToolReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(c.Param("slug"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, review)
}
