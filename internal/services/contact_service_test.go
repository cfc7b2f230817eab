// internal/services/contact_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annuaire-ia/backend/internal/models"
)

func TestCreateContact(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db)

	contact, err := svc.CreateContact(&CreateContactRequest{
		Name:    "Jean",
		Email:   "jean@example.com",
		Subject: "Question",
		Message: "Comment soumettre un outil ?",
	})
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)

	var stored models.Contact
	require.NoError(t, db.First(&stored, contact.ID).Error)
	assert.Equal(t, "Question", stored.Subject)
}

func TestCreateContactMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db)

	cases := []CreateContactRequest{
		{Email: "jean@example.com", Subject: "s", Message: "m"},
		{Name: "Jean", Subject: "s", Message: "m"},
		{Name: "Jean", Email: "jean@example.com", Message: "m"},
		{Name: "Jean", Email: "jean@example.com", Subject: "s"},
	}
	for i := range cases {
		_, err := svc.CreateContact(&cases[i])
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "case %d", i)
	}

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}
