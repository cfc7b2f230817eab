// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /contact
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
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

	contact, err := h.contactService.CreateContact(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, contact)
}
