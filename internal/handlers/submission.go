// internal/handlers/submission.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// POST /submit
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Name == "" || req.Website == "" || req.Description == "" ||
		req.CategoryID == nil || req.SubmitterName == "" || req.SubmitterEmail == "" {
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

	submission, err := h.submissionService.CreateSubmission(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, submission)
}
