// internal/models/review.go
package models

import (
	"time"
)

// Review is created unverified and invisible; it only shows up on the
// public endpoints once a moderator flips IsVisible.
type Review struct {
	BaseModel
	ToolID     uint      `json:"toolId" gorm:"not null;index"`
	UserName   string    `json:"userName" gorm:"size:100;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`
	ReviewDate time.Time `json:"reviewDate"`
	IsVerified bool      `json:"isVerified" gorm:"default:false"`
	IsVisible  bool      `json:"isVisible" gorm:"default:false;index"`
}
