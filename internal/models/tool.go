// internal/models/tool.go
package models

import (
	"time"
)

type Tool struct {
	BaseModel
	Name             string      `json:"name" gorm:"size:255;not null"`
	Slug             string      `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	ShortDescription string      `json:"shortDescription" gorm:"size:500;not null"`
	LongDescription  string      `json:"longDescription" gorm:"type:text"`
	LogoURL          string      `json:"logoUrl" gorm:"size:500"`
	ImageURL         string      `json:"imageUrl" gorm:"size:500"`
	WebsiteURL       string      `json:"websiteUrl" gorm:"size:500"`
	Rating           float64     `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount      int         `json:"reviewCount" gorm:"default:0"`
	CategoryID       uint        `json:"categoryId" gorm:"not null;index"`
	PricingType      PricingType `json:"pricingType" gorm:"type:varchar(20);default:'Gratuit'"`
	PriceDetails     string      `json:"priceDetails" gorm:"size:500"`
	LastUpdated      *time.Time  `json:"lastUpdated"`
	IsFeatured       bool        `json:"isFeatured" gorm:"default:false;index"`
	IsVisible        bool        `json:"isVisible" gorm:"default:true;index"`
	TwitterURL       string      `json:"twitterUrl" gorm:"size:500"`
	LinkedinURL      string      `json:"linkedinUrl" gorm:"size:500"`
	InstagramURL     string      `json:"instagramUrl" gorm:"size:500"`
	MetaTitle        string      `json:"metaTitle,omitempty" gorm:"size:255"`
	MetaDescription  string      `json:"metaDescription,omitempty" gorm:"size:500"`

	// Relationships
	Category      Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Features      []Feature      `json:"features,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
	UseCases      []UseCase      `json:"useCases,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
	ToolTags      []ToolTag      `json:"toolTags,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
	ToolAudiences []ToolAudience `json:"toolAudiences,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
}

type Feature struct {
	BaseModel
	ToolID        uint   `json:"toolId" gorm:"not null;index"`
	Title         string `json:"title" gorm:"size:255;not null"`
	Description   string `json:"description" gorm:"type:text"`
	OrderPosition int    `json:"orderPosition" gorm:"default:0"`
}

type UseCase struct {
	BaseModel
	ToolID        uint   `json:"toolId" gorm:"not null;index"`
	Title         string `json:"title" gorm:"size:255;not null"`
	Description   string `json:"description" gorm:"type:text"`
	ImageURL      string `json:"imageUrl" gorm:"size:500"`
	OrderPosition int    `json:"orderPosition" gorm:"default:0"`
}

// Join row between Tool and Tag.
type ToolTag struct {
	ID     uint `json:"id" gorm:"primaryKey;autoIncrement"`
	ToolID uint `json:"toolId" gorm:"not null;uniqueIndex:idx_tool_tag"`
	TagID  uint `json:"tagId" gorm:"not null;uniqueIndex:idx_tool_tag"`

	Tag Tag `json:"tag,omitempty" gorm:"foreignKey:TagID"`
}

// Join row between Tool and TargetAudience, carrying a per-association
// description shown on the tool page.
type ToolAudience struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ToolID      uint   `json:"toolId" gorm:"not null;uniqueIndex:idx_tool_audience"`
	AudienceID  uint   `json:"audienceId" gorm:"not null;uniqueIndex:idx_tool_audience"`
	Description string `json:"description" gorm:"type:text"`

	Audience TargetAudience `json:"audience,omitempty" gorm:"foreignKey:AudienceID"`
}
