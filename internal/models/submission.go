// internal/models/submission.go
package models

import (
	"gorm.io/datatypes"
)

// ToolSubmission is a staging record. Approving one creates a new Tool,
// but no foreign key ties the submission to the tool it produced.
type ToolSubmission struct {
	BaseModel
	Name           string           `json:"name" gorm:"size:255;not null"`
	Slug           string           `json:"slug" gorm:"size:255"`
	Description    string           `json:"description" gorm:"type:text;not null"`
	WebsiteURL     string           `json:"websiteUrl" gorm:"size:500;not null"`
	LogoURL        string           `json:"logoUrl" gorm:"size:500"`
	PricingType    PricingType      `json:"pricingType" gorm:"type:varchar(20)"`
	CategoryID     *uint            `json:"categoryId"`
	Tags           datatypes.JSON   `json:"tags" gorm:"type:json"`
	SubmitterName  string           `json:"submitterName" gorm:"size:100;not null"`
	SubmitterEmail string           `json:"submitterEmail" gorm:"size:255;not null"`
	Status         SubmissionStatus `json:"status" gorm:"type:varchar(20);default:'Pending';index"`
}
