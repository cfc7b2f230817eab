// internal/models/contact.go
package models

// Contact is a message left through the public contact form. The API only
// writes these; they are read straight from the store.
type Contact struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Subject string `json:"subject" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}
