// internal/services/contact_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/models"
)

type ContactService struct {
	db *gorm.DB
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) CreateContact(req *CreateContactRequest) (*models.Contact, error) {
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return nil, newValidationError("missing required fields")
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.db.Create(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return contact, nil
}
