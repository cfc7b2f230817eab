// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Enums
type PricingType string

const (
	PricingTypeGratuit      PricingType = "Gratuit"
	PricingTypeFreemium     PricingType = "Freemium"
	PricingTypePayant       PricingType = "Payant"
	PricingTypeEssaiGratuit PricingType = "Essai Gratuit"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "Pending"
	SubmissionStatusApproved SubmissionStatus = "Approved"
	SubmissionStatusRejected SubmissionStatus = "Rejected"
)
