// internal/models/tag.go
package models

type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug string `json:"slug" gorm:"size:100;not null;uniqueIndex"`

	ToolTags []ToolTag `json:"toolTags,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

type TargetAudience struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug string `json:"slug" gorm:"size:100;not null;uniqueIndex"`

	ToolAudiences []ToolAudience `json:"toolAudiences,omitempty" gorm:"foreignKey:AudienceID;constraint:OnDelete:CASCADE"`
}
