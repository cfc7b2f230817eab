// internal/handlers/admin.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

// AdminHandler carries the moderation queue and site settings. Access
// control is enforced upstream (reverse proxy); no credential check
// happens here.
type AdminHandler struct {
	submissionService *services.SubmissionService
	settingsService   *services.SettingsService
}

func NewAdminHandler(submissionService *services.SubmissionService, settingsService *services.SettingsService) *AdminHandler {
	return &AdminHandler{
		submissionService: submissionService,
		settingsService:   settingsService,
	}
}

// GET /admin/submissions
func (h *AdminHandler) GetSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.ListPendingSubmissions()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, submissions)
}

// POST /admin/submissions/:id/approve
func (h *AdminHandler) ApproveSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID")
		return
	}

	tool, err := h.submissionService.ApproveSubmission(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"success": true,
		"tool":    tool,
	})
}

// POST /admin/submissions/:id/reject
func (h *AdminHandler) RejectSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID")
		return
	}

	if err := h.submissionService.RejectSubmission(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}

// GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, settings)
}

// POST /admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if err := h.settingsService.UpdateSettings(values); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
